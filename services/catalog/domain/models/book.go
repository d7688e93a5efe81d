package models

// Book field length maxima, mirrored by the column definitions in
// migrations/catalog.
const (
	MaxTitleLength     = 150
	MaxAuthorLength    = 120
	MaxPublisherLength = 100
)

// Book is the primary catalog entity. At most one live BibliographicRecord
// references it; reads hydrate that record into Record when present.
type Book struct {
	Base
	Title           string               `json:"title"`
	Author          string               `json:"author"`
	Publisher       *string              `json:"publisher,omitempty"`
	PublicationYear *int                 `json:"publication_year,omitempty"`
	Record          *BibliographicRecord `json:"record,omitempty"`
}
