package auth

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/promptregistry/pkg/httpx"
	"github.com/ghuser/promptregistry/pkg/logger"
)

const sessionName = "promptregistry_session"
const sessionPrincipalKey = "principal"

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the principal, and injects it into the
// request context (and into context log attributes).
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a principal.
//
// After this middleware, handlers can safely call auth.PrincipalFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := principalFromSession(w, r, store, log)
			if !ok {
				return
			}

			ctx := WithPrincipal(r.Context(), principal)
			ctx = logger.AppendCtx(ctx, slog.String("principal", principal))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func principalFromSession(w http.ResponseWriter, r *http.Request, store sessions.Store, log logger.Logger) (string, bool) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		log.WarnContext(r.Context(), "invalid session cookie", "error", err)
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}

	principal, ok := session.Values[sessionPrincipalKey].(string)
	if !ok || principal == "" {
		log.WarnContext(r.Context(), "session missing principal")
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return principal, true
}
