package handlers

import (
	"net/http"

	"github.com/ghuser/promptregistry/pkg/auth"
	"github.com/ghuser/promptregistry/pkg/errhttp"
	"github.com/ghuser/promptregistry/pkg/httpx"
	pkgvalidator "github.com/ghuser/promptregistry/pkg/validator"
	appsvcs "github.com/ghuser/promptregistry/services/record/application/services"
	"github.com/ghuser/promptregistry/services/record/domain/models"
)

// SubmitRecordRequest is the request body for POST /records.
// Every field is optional and stored as given.
type SubmitRecordRequest struct {
	Title       string `json:"title"       example:"Haiku generator"`
	Description string `json:"description" example:"Writes a haiku about any topic"`
	Content     string `json:"content"     example:"You are a poet. Reply with a single haiku about {topic}."`
	Price       uint64 `json:"price"       example:"100"`
} // @name SubmitRecordRequest

// RecordResponse is the wire form of a stored record.
type RecordResponse struct {
	ID          uint64 `json:"id"          example:"0"`
	Title       string `json:"title"       example:"Haiku generator"`
	Description string `json:"description" example:"Writes a haiku about any topic"`
	Content     string `json:"content"     example:"You are a poet. Reply with a single haiku about {topic}."`
	Owner       string `json:"owner"       example:"2vxsx-fae"`
	Price       uint64 `json:"price"       example:"100"`
} // @name RecordResponse

func toRecordResponse(rec models.Record) RecordResponse {
	return RecordResponse{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Content:     rec.Content,
		Owner:       rec.Owner,
		Price:       rec.Price,
	}
}

// PostRecordHandler handles POST /records requests.
type PostRecordHandler struct {
	svc *appsvcs.Services
}

// NewPostRecordHandler returns a PostRecordHandler backed by the given services.
func NewPostRecordHandler(svc *appsvcs.Services) *PostRecordHandler {
	return &PostRecordHandler{svc: svc}
}

// Execute submits a new record owned by the authenticated principal.
//
//	@Summary		Submit record
//	@Description	Stores a new record owned by the caller and returns it with its assigned id
//	@Tags			records
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SubmitRecordRequest	true	"Record submission"
//	@Success		201		{object}	RecordResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		401		{object}	httpx.ErrorResponse
//	@Failure		413		{object}	httpx.ErrorResponse
//	@Router			/records [post]
func (h *PostRecordHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SubmitRecordRequest](w, r)
	if !ok {
		return
	}

	rec := h.svc.Record.Submit(r.Context(), models.Draft{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Price:       req.Price,
	}, owner)

	httpx.JSON(w, http.StatusCreated, toRecordResponse(rec))
}
