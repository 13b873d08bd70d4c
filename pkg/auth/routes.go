package auth

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/ghuser/promptregistry/pkg/logger"
)

// SessionRoutes registers /session on r. GET and DELETE are always mounted;
// POST, which trusts the principal in the request body, only when
// allowDevLogin is set.
func SessionRoutes(r chi.Router, store sessions.Store, log logger.Logger, allowDevLogin bool) {
	h := NewSessionHandler(store, log)
	r.Route("/session", func(r chi.Router) {
		r.With(RequireAuth(store, log)).Get("/", h.Me)
		r.Delete("/", h.Logout)
		if allowDevLogin {
			r.Post("/", h.Login)
		}
	})
}
