// Package repositories declares the persistence interfaces for the catalog
// entities. The domain layer owns these interfaces; infrastructure implements
// them. Every method takes the unit-of-work Querier it must execute against,
// so the same repository serves autocommit calls and transactional workflows.
package repositories

import (
	"context"

	"github.com/matiscalella/lms/pkg/database"
	"github.com/matiscalella/lms/services/catalog/domain/models"
)

// BookRepository is the persistence gateway for Book.
// Find and List exclude soft-deleted rows; SoftDelete flips the deleted flag
// and never removes the row.
type BookRepository interface {
	// Insert persists a new book and populates book.ID with the
	// storage-assigned surrogate key.
	Insert(ctx context.Context, q database.Querier, book *models.Book) error

	// FindByID returns the live book with the given id, with its live
	// bibliographic record hydrated when one is linked.
	// Returns domain.ErrBookNotFound when absent or soft-deleted.
	FindByID(ctx context.Context, q database.Querier, id int64) (*models.Book, error)

	// List returns all live books with their live records hydrated.
	List(ctx context.Context, q database.Querier) ([]*models.Book, error)

	// Update persists field changes to an existing book.
	Update(ctx context.Context, q database.Querier, book *models.Book) error

	// SoftDelete marks the book deleted.
	SoftDelete(ctx context.Context, q database.Querier, id int64) error
}

// RecordRepository is the persistence gateway for BibliographicRecord.
type RecordRepository interface {
	// Insert persists a new record and populates record.ID.
	// Returns domain.ErrRecordLinked when the target book already has a live
	// record (unique book_id index).
	Insert(ctx context.Context, q database.Querier, record *models.BibliographicRecord) error

	// FindByID returns the live record with the given id.
	// Returns domain.ErrRecordNotFound when absent or soft-deleted.
	FindByID(ctx context.Context, q database.Querier, id int64) (*models.BibliographicRecord, error)

	// List returns all live records.
	List(ctx context.Context, q database.Querier) ([]*models.BibliographicRecord, error)

	// Update persists field changes to an existing record. book_id is
	// deliberately not part of the statement; relinking goes through
	// UpdateBookID only.
	Update(ctx context.Context, q database.Querier, record *models.BibliographicRecord) error

	// SoftDelete marks the record deleted.
	SoftDelete(ctx context.Context, q database.Querier, id int64) error

	// UpdateBookID reassigns the record's foreign reference. The sanctioned
	// relinking path used by the catalog move workflow.
	// Returns domain.ErrRecordLinked when the target book already has a live record.
	UpdateBookID(ctx context.Context, q database.Querier, recordID, bookID int64) error
}
