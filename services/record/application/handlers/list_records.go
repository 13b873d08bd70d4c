package handlers

import (
	"net/http"

	"github.com/ghuser/promptregistry/pkg/httpx"
	appsvcs "github.com/ghuser/promptregistry/services/record/application/services"
)

// ListRecordsResponse is returned by GET /records.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total" example:"1"`
} // @name ListRecordsResponse

// ListRecordsHandler handles GET /records requests.
type ListRecordsHandler struct {
	svc *appsvcs.Services
}

// NewListRecordsHandler returns a ListRecordsHandler backed by the given services.
func NewListRecordsHandler(svc *appsvcs.Services) *ListRecordsHandler {
	return &ListRecordsHandler{svc: svc}
}

// Execute lists every stored record.
//
//	@Summary		List records
//	@Description	Returns every stored record ordered by ascending id
//	@Tags			records
//	@Produce		json
//	@Success		200	{object}	ListRecordsResponse
//	@Router			/records [get]
func (h *ListRecordsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	records := h.svc.Record.List(r.Context())

	resp := ListRecordsResponse{
		Records: make([]RecordResponse, len(records)),
		Total:   len(records),
	}
	for i, rec := range records {
		resp.Records[i] = toRecordResponse(rec)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
