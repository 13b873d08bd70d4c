package auth

import (
	"context"
	"errors"
	"testing"
)

func TestWithPrincipal_PrincipalFromCtx(t *testing.T) {
	ctx := WithPrincipal(context.Background(), "2vxsx-fae")

	got, err := PrincipalFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2vxsx-fae" {
		t.Fatalf("expected %q, got %q", "2vxsx-fae", got)
	}
}

func TestPrincipalFromCtx_EmptyContext(t *testing.T) {
	_, err := PrincipalFromCtx(context.Background())
	if !errors.Is(err, ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}

func TestPrincipalFromCtx_EmptyPrincipal(t *testing.T) {
	ctx := WithPrincipal(context.Background(), "")
	_, err := PrincipalFromCtx(ctx)
	if !errors.Is(err, ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound for empty principal, got %v", err)
	}
}

func TestPrincipalFromCtx_Isolation(t *testing.T) {
	ctx1 := WithPrincipal(context.Background(), "alice")
	ctx2 := WithPrincipal(context.Background(), "bob")

	got1, _ := PrincipalFromCtx(ctx1)
	got2, _ := PrincipalFromCtx(ctx2)

	if got1 != "alice" || got2 != "bob" {
		t.Fatalf("expected alice/bob, got %q/%q", got1, got2)
	}
}
