package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/promptregistry/pkg/errhttp"
	"github.com/ghuser/promptregistry/pkg/httpx"
	appsvcs "github.com/ghuser/promptregistry/services/record/application/services"
)

// PublisherStatsResponse is returned by GET /publishers/{owner}/stats.
type PublisherStatsResponse struct {
	Owner            string    `json:"owner"              example:"2vxsx-fae"`
	Records          int64     `json:"records"            example:"3"`
	LastRecordID     uint64    `json:"last_record_id"     example:"12"`
	FirstSubmittedAt time.Time `json:"first_submitted_at" example:"2024-01-15T10:30:00Z"`
	LastSubmittedAt  time.Time `json:"last_submitted_at"  example:"2024-01-16T08:00:00Z"`
} // @name PublisherStatsResponse

// GetPublisherStatsHandler handles GET /publishers/{owner}/stats requests.
type GetPublisherStatsHandler struct {
	svc *appsvcs.Services
}

// NewGetPublisherStatsHandler returns a GetPublisherStatsHandler backed by the given services.
func NewGetPublisherStatsHandler(svc *appsvcs.Services) *GetPublisherStatsHandler {
	return &GetPublisherStatsHandler{svc: svc}
}

// Execute returns submission stats for one owner. The stats are eventually
// consistent with the record store.
//
//	@Summary		Publisher stats
//	@Description	Returns how many records an owner has submitted, from the asynchronously maintained read model
//	@Tags			publishers
//	@Produce		json
//	@Param			owner	path		string	true	"Owner principal"
//	@Success		200		{object}	PublisherStatsResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/publishers/{owner}/stats [get]
func (h *GetPublisherStatsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, err := url.PathUnescape(chi.URLParam(r, "owner"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid owner")
		return
	}

	stats, err := h.svc.Record.PublisherStats(r.Context(), owner)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, PublisherStatsResponse{
		Owner:            stats.Owner,
		Records:          stats.Records,
		LastRecordID:     stats.LastRecordID,
		FirstSubmittedAt: stats.FirstSubmittedAt,
		LastSubmittedAt:  stats.LastSubmittedAt,
	})
}
