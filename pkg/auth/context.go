package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const principalKey contextKey = "principal"

// ErrPrincipalNotFound is returned when no authenticated principal exists in
// the request context. Handlers should return 401 when this error occurs.
var ErrPrincipalNotFound = errors.New("principal not found in context")

// PrincipalFromCtx extracts the authenticated principal from the request context.
// The principal is opaque text; callers must not parse or verify it.
// Returns "" and ErrPrincipalNotFound for unauthenticated requests.
func PrincipalFromCtx(ctx context.Context) (string, error) {
	principal, ok := ctx.Value(principalKey).(string)
	if !ok || principal == "" {
		return "", ErrPrincipalNotFound
	}
	return principal, nil
}

// WithPrincipal returns a new context with the given principal attached.
// Used by authentication middleware after validating the session.
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}
