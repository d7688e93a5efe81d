package handlers

import (
	"github.com/matiscalella/lms/services/catalog/domain/models"
)

// BookResponse is the wire representation of a catalog book.
type BookResponse struct {
	ID              int64           `json:"id"              example:"42"`
	Title           string          `json:"title"           example:"The Go Programming Language"`
	Author          string          `json:"author"          example:"Donovan, Alan A. A."`
	Publisher       *string         `json:"publisher,omitempty"        example:"Addison-Wesley"`
	PublicationYear *int            `json:"publication_year,omitempty" example:"2015"`
	Record          *RecordResponse `json:"record,omitempty"`
} // @name BookResponse

// RecordResponse is the wire representation of a bibliographic record.
type RecordResponse struct {
	ID            int64   `json:"id"                       example:"7"`
	ISBN          *string `json:"isbn,omitempty"           example:"978-0-13-419044-0"`
	DeweyClass    *string `json:"dewey_class,omitempty"    example:"005.133"`
	ShelfLocation *string `json:"shelf_location,omitempty" example:"A3-12"`
	Language      *string `json:"language,omitempty"       example:"English"`
	BookID        *int64  `json:"book_id,omitempty"        example:"42"`
} // @name RecordResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"book not found"`
} // @name ErrorResponse

func toBookResponse(b *models.Book) BookResponse {
	resp := BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
	}
	if b.Record != nil {
		r := toRecordResponse(b.Record)
		resp.Record = &r
	}
	return resp
}

func toBookResponses(books []*models.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out
}

func toRecordResponse(r *models.BibliographicRecord) RecordResponse {
	return RecordResponse{
		ID:            r.ID,
		ISBN:          r.ISBN,
		DeweyClass:    r.DeweyClass,
		ShelfLocation: r.ShelfLocation,
		Language:      r.Language,
		BookID:        r.BookID,
	}
}

func toRecordResponses(records []*models.BibliographicRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordResponse(r))
	}
	return out
}
