package handlers

import (
	"net/http"

	"github.com/matiscalella/lms/pkg/errhttp"
	"github.com/matiscalella/lms/pkg/httpx"
	pkgvalidator "github.com/matiscalella/lms/pkg/validator"
	appsvcs "github.com/matiscalella/lms/services/catalog/application/services"
	"github.com/matiscalella/lms/services/catalog/domain/models"
)

// RecordRequest is the request body for POST and PUT /records.
// The book link is never settable through this body: records are created
// unlinked and reassigned only via the catalog move endpoint.
type RecordRequest struct {
	ISBN          *string `json:"isbn,omitempty"           validate:"omitempty,max=17" example:"978-0-13-419044-0"`
	DeweyClass    *string `json:"dewey_class,omitempty"    validate:"omitempty,max=20" example:"005.133"`
	ShelfLocation *string `json:"shelf_location,omitempty" validate:"omitempty,max=50" example:"A3-12"`
	Language      *string `json:"language,omitempty"       validate:"omitempty,max=30" example:"English"`
} // @name RecordRequest

func (req *RecordRequest) toModel() *models.BibliographicRecord {
	return &models.BibliographicRecord{
		ISBN:          req.ISBN,
		DeweyClass:    req.DeweyClass,
		ShelfLocation: req.ShelfLocation,
		Language:      req.Language,
	}
}

// RecordsHandler handles the /records endpoints.
type RecordsHandler struct {
	svc *appsvcs.Services
}

// NewRecordsHandler returns a RecordsHandler backed by the given services.
func NewRecordsHandler(svc *appsvcs.Services) *RecordsHandler {
	return &RecordsHandler{svc: svc}
}

// Create creates a new unlinked bibliographic record.
//
//	@Summary		Create record
//	@Description	Creates a new bibliographic record with no book link
//	@Tags			records
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RecordRequest	true	"Record creation request"
//	@Success		201		{object}	RecordResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/records [post]
func (h *RecordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RecordRequest](w, r)
	if !ok {
		return
	}

	record, err := h.svc.Records.Create(r.Context(), req.toModel())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toRecordResponse(record))
}

// Get fetches a record by id.
//
//	@Summary		Get record
//	@Description	Fetches a bibliographic record by ID
//	@Tags			records
//	@Produce		json
//	@Param			id	path		int	true	"Record ID"
//	@Success		200	{object}	RecordResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/records/{id} [get]
func (h *RecordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	record, err := h.svc.Records.FindByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRecordResponse(record))
}

// List returns all live records.
//
//	@Summary		List records
//	@Description	Lists all bibliographic records that have not been deleted
//	@Tags			records
//	@Produce		json
//	@Success		200	{array}	RecordResponse
//	@Router			/records [get]
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.Records.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRecordResponses(records))
}

// Update replaces a record's descriptive fields. The book link is preserved.
//
//	@Summary		Update record
//	@Description	Updates a record's ISBN, Dewey class, shelf location, and language
//	@Tags			records
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Record ID"
//	@Param			request	body		RecordRequest	true	"Record update request"
//	@Success		200		{object}	RecordResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/records/{id} [put]
func (h *RecordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[RecordRequest](w, r)
	if !ok {
		return
	}

	// Carry the stored link forward so the update never touches it.
	current, err := h.svc.Records.FindByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	record := req.toModel()
	record.ID = id
	record.BookID = current.BookID
	record, err = h.svc.Records.Update(r.Context(), record)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRecordResponse(record))
}

// Delete soft-deletes a record.
//
//	@Summary		Delete record
//	@Description	Soft-deletes a bibliographic record; the row is retained but excluded from all reads
//	@Tags			records
//	@Param			id	path	int	true	"Record ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/records/{id} [delete]
func (h *RecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Records.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
