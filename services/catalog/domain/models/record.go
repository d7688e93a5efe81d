package models

// BibliographicRecord field length maxima.
const (
	MaxISBNLength          = 17
	MaxDeweyClassLength    = 20
	MaxShelfLocationLength = 50
	MaxLanguageLength      = 30
)

// BibliographicRecord stores the cataloguing metadata attached to a Book.
// BookID is the nullable foreign reference: nil means the record is unlinked.
// Once set, BookID changes only through the catalog move workflow.
type BibliographicRecord struct {
	Base
	ISBN          *string `json:"isbn,omitempty"`
	DeweyClass    *string `json:"dewey_class,omitempty"`
	ShelfLocation *string `json:"shelf_location,omitempty"`
	Language      *string `json:"language,omitempty"`
	BookID        *int64  `json:"book_id,omitempty"`
}

// Linked reports whether the record is assigned to a book.
func (r *BibliographicRecord) Linked() bool { return r.BookID != nil }

// LinkedTo reports whether the record is assigned to the given book id.
func (r *BibliographicRecord) LinkedTo(bookID int64) bool {
	return r.BookID != nil && *r.BookID == bookID
}
