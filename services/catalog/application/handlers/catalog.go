package handlers

import (
	"net/http"

	"github.com/matiscalella/lms/pkg/errhttp"
	"github.com/matiscalella/lms/pkg/httpx"
	pkgvalidator "github.com/matiscalella/lms/pkg/validator"
	appsvcs "github.com/matiscalella/lms/services/catalog/application/services"
)

// CreateBookWithRecordRequest is the request body for POST /catalog/books.
type CreateBookWithRecordRequest struct {
	Book   BookRequest   `json:"book"   validate:"required"`
	Record RecordRequest `json:"record" validate:"required"`
} // @name CreateBookWithRecordRequest

// MoveRecordRequest is the request body for POST /records/{id}/move.
type MoveRecordRequest struct {
	BookID int64 `json:"book_id" validate:"required,gt=0" example:"42"`
} // @name MoveRecordRequest

// CatalogHandler handles the multi-entity catalog workflows.
type CatalogHandler struct {
	svc *appsvcs.Services
}

// NewCatalogHandler returns a CatalogHandler backed by the given services.
func NewCatalogHandler(svc *appsvcs.Services) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// CreateBookWithRecord atomically creates a book and its linked record.
//
//	@Summary		Create book with record
//	@Description	Atomically creates a book and a bibliographic record linked to it; neither persists if either step fails
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateBookWithRecordRequest	true	"Paired creation request"
//	@Success		201		{object}	BookResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/catalog/books [post]
func (h *CatalogHandler) CreateBookWithRecord(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateBookWithRecordRequest](w, r)
	if !ok {
		return
	}

	book := req.Book.toModel()
	record := req.Record.toModel()
	if err := h.svc.Catalog.CreateBookWithRecord(r.Context(), book, record); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := toBookResponse(book)
	rec := toRecordResponse(record)
	resp.Record = &rec
	httpx.JSON(w, http.StatusCreated, resp)
}

// DeleteBookCascade soft-deletes a book together with its linked record.
//
//	@Summary		Delete book with linked record
//	@Description	Atomically soft-deletes a book and any live bibliographic record linked to it
//	@Tags			catalog
//	@Param			id	path	int	true	"Book ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/catalog/books/{id} [delete]
func (h *CatalogHandler) DeleteBookCascade(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Catalog.DeleteBookCascade(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveRecord assigns or moves a record to a book.
//
//	@Summary		Move record to book
//	@Description	Assigns an unlinked record to a book, or moves a linked record to a different book. Moving a record to the book it already belongs to is rejected.
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Record ID"
//	@Param			request	body		MoveRecordRequest	true	"Move request"
//	@Success		200		{object}	RecordResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/records/{id}/move [post]
func (h *CatalogHandler) MoveRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[MoveRecordRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Catalog.MoveRecord(r.Context(), id, req.BookID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	record, err := h.svc.Records.FindByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toRecordResponse(record))
}
