package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matiscalella/lms/pkg/errhttp"
	"github.com/matiscalella/lms/pkg/httpx"
	pkgvalidator "github.com/matiscalella/lms/pkg/validator"
	appsvcs "github.com/matiscalella/lms/services/catalog/application/services"
	"github.com/matiscalella/lms/services/catalog/domain/models"
)

// BookRequest is the request body for POST and PUT /books.
type BookRequest struct {
	Title           string  `json:"title"  validate:"required,max=150" example:"The Go Programming Language"`
	Author          string  `json:"author" validate:"required,max=120" example:"Donovan, Alan A. A."`
	Publisher       *string `json:"publisher,omitempty"        validate:"omitempty,max=100" example:"Addison-Wesley"`
	PublicationYear *int    `json:"publication_year,omitempty" validate:"omitempty,gte=0"   example:"2015"`
} // @name BookRequest

func (req *BookRequest) toModel() *models.Book {
	return &models.Book{
		Title:           req.Title,
		Author:          req.Author,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
	}
}

// BooksHandler handles the /books endpoints.
type BooksHandler struct {
	svc *appsvcs.Services
}

// NewBooksHandler returns a BooksHandler backed by the given services.
func NewBooksHandler(svc *appsvcs.Services) *BooksHandler {
	return &BooksHandler{svc: svc}
}

// Create creates a new book.
//
//	@Summary		Create book
//	@Description	Creates a new catalog book with a storage-assigned ID
//	@Tags			books
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BookRequest	true	"Book creation request"
//	@Success		201		{object}	BookResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/books [post]
func (h *BooksHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[BookRequest](w, r)
	if !ok {
		return
	}

	book, err := h.svc.Books.Create(r.Context(), req.toModel())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toBookResponse(book))
}

// Get fetches a book by id.
//
//	@Summary		Get book
//	@Description	Fetches a book by ID, with its live bibliographic record when one is linked
//	@Tags			books
//	@Produce		json
//	@Param			id	path		int	true	"Book ID"
//	@Success		200	{object}	BookResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/books/{id} [get]
func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	book, err := h.svc.Books.FindByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBookResponse(book))
}

// List returns all live books.
//
//	@Summary		List books
//	@Description	Lists all books that have not been deleted
//	@Tags			books
//	@Produce		json
//	@Success		200	{array}	BookResponse
//	@Router			/books [get]
func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.Books.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBookResponses(books))
}

// Update replaces a book's descriptive fields.
//
//	@Summary		Update book
//	@Description	Updates a book's title, author, publisher, and publication year
//	@Tags			books
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int			true	"Book ID"
//	@Param			request	body		BookRequest	true	"Book update request"
//	@Success		200		{object}	BookResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/books/{id} [put]
func (h *BooksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[BookRequest](w, r)
	if !ok {
		return
	}

	book := req.toModel()
	book.ID = id
	book, err := h.svc.Books.Update(r.Context(), book)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBookResponse(book))
}

// Delete soft-deletes a book.
//
//	@Summary		Delete book
//	@Description	Soft-deletes a book; the row is retained but excluded from all reads
//	@Tags			books
//	@Param			id	path	int	true	"Book ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/books/{id} [delete]
func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Books.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} URL parameter as a positive int64, writing a 400
// response on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}
