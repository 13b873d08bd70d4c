package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/promptregistry/pkg/httpx"
	"github.com/ghuser/promptregistry/pkg/logger"
	pkgvalidator "github.com/ghuser/promptregistry/pkg/validator"
)

// LoginRequest is the request body for POST /session.
type LoginRequest struct {
	Principal string `json:"principal" validate:"required,max=256" example:"2vxsx-fae"`
} // @name LoginRequest

// SessionResponse describes the principal bound to the current session.
type SessionResponse struct {
	Principal string `json:"principal" example:"2vxsx-fae"`
} // @name SessionResponse

// SessionHandler issues and clears session cookies for a caller-asserted
// principal. It stands in for an external identity provider during
// development and must never be mounted in production.
type SessionHandler struct {
	store sessions.Store
	log   logger.Logger
}

// NewSessionHandler returns a SessionHandler writing to store.
func NewSessionHandler(store sessions.Store, log logger.Logger) *SessionHandler {
	return &SessionHandler{store: store, log: log}
}

// Login binds the requested principal to a new session.
//
//	@Summary		Start development session
//	@Description	Binds the given principal to the session cookie. Development only.
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Principal to impersonate"
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/session [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	session, err := h.store.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie still yields a usable fresh session.
		h.log.WarnContext(r.Context(), "replacing unreadable session", "error", err)
	}
	if session == nil {
		httpx.JSONError(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	session.Values[sessionPrincipalKey] = req.Principal
	if err := session.Save(r, w); err != nil {
		h.log.ErrorContext(r.Context(), "failed to save session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	h.log.InfoContext(r.Context(), "development session started", "principal", req.Principal)
	httpx.JSON(w, http.StatusOK, SessionResponse{Principal: req.Principal})
}

// Logout expires the session cookie.
//
//	@Summary	End session
//	@Tags		session
//	@Success	204
//	@Router		/session [delete]
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, sessionName)
	if err != nil || session == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		h.log.ErrorContext(r.Context(), "failed to clear session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me reports the principal bound to the current session. Mount behind RequireAuth.
//
//	@Summary	Current principal
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	SessionResponse
//	@Failure	401	{object}	httpx.ErrorResponse
//	@Router		/session [get]
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	httpx.JSON(w, http.StatusOK, SessionResponse{Principal: principal})
}
