// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/promptregistry/pkg/auth"
	"github.com/ghuser/promptregistry/pkg/httpx"
	"github.com/ghuser/promptregistry/pkg/telemetry"
	recorddomain "github.com/ghuser/promptregistry/services/record/domain"
)

const internalErrorMessage = "internal server error"

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 Internal Server Error: they are reported to
// Sentry and their text is replaced with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		telemetry.CaptureError(r.Context(), err)
		httpx.JSONError(w, status, internalErrorMessage)
		return
	}
	httpx.JSONError(w, status, err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrPrincipalNotFound):
		return http.StatusUnauthorized // 401
	case errors.Is(err, recorddomain.ErrPublisherNotFound):
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}
