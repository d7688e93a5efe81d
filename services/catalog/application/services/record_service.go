package services

import (
	"context"
	"fmt"

	"github.com/matiscalella/lms/pkg/database"
	"github.com/matiscalella/lms/services/catalog/domain"
	"github.com/matiscalella/lms/services/catalog/domain/models"
	"github.com/matiscalella/lms/services/catalog/domain/repositories"
	domainsvcs "github.com/matiscalella/lms/services/catalog/domain/services"
)

// RecordService manages BibliographicRecord entities independently. It
// enforces the strict one-to-one rules on the book_id reference: never set on
// create, never changed on update. Linking goes through CatalogService.
type RecordService struct {
	db   database.TxProvider
	repo repositories.RecordRepository
}

// NewRecordService returns a RecordService backed by the given provider and repository.
func NewRecordService(db database.TxProvider, repo repositories.RecordRepository) *RecordService {
	return &RecordService{db: db, repo: repo}
}

// Create validates and persists a new unlinked record.
func (s *RecordService) Create(ctx context.Context, record *models.BibliographicRecord) (*models.BibliographicRecord, error) {
	if err := domainsvcs.ValidateRecord(record); err != nil {
		return nil, err
	}
	if record.ID != 0 {
		return nil, domain.NewService("new records cannot have a predefined id", domain.ErrPredefinedID)
	}
	if record.BookID != nil {
		return nil, domain.NewService("book_id must not be assigned when creating a record", domain.ErrPreassignedLink)
	}
	record.Deleted = false

	if err := s.repo.Insert(ctx, s.db.Querier(), record); err != nil {
		return nil, domain.NewService("error creating record", err)
	}
	if !record.HasID() {
		return nil, domain.NewService("failed to obtain generated id for record", nil)
	}
	return record, nil
}

// Update validates and persists changes to a live record. Any change to the
// book_id reference is rejected; the move workflow is the only relinking path.
func (s *RecordService) Update(ctx context.Context, record *models.BibliographicRecord) (*models.BibliographicRecord, error) {
	if err := domainsvcs.ValidateRecord(record); err != nil {
		return nil, err
	}
	if record.ID <= 0 {
		return nil, domain.NewService("record id is required for update", domain.ErrInvalidID)
	}

	existing, err := s.repo.FindByID(ctx, s.db.Querier(), record.ID)
	if err != nil {
		return nil, domain.NewService(fmt.Sprintf("cannot update record %d", record.ID), err)
	}

	if !sameBookID(record.BookID, existing.BookID) {
		return nil, domain.NewService(
			fmt.Sprintf("cannot update record %d", record.ID), domain.ErrRelinkNotAllowed)
	}

	if err := s.repo.Update(ctx, s.db.Querier(), record); err != nil {
		return nil, domain.NewService(fmt.Sprintf("error updating record %d", record.ID), err)
	}
	return record, nil
}

// Delete soft-deletes a live record. Repeat deletion is an error, not a no-op.
func (s *RecordService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewService("record id is required for delete", domain.ErrInvalidID)
	}
	if _, err := s.repo.FindByID(ctx, s.db.Querier(), id); err != nil {
		return domain.NewService(fmt.Sprintf("cannot delete record %d", id), err)
	}
	if err := s.repo.SoftDelete(ctx, s.db.Querier(), id); err != nil {
		return domain.NewService(fmt.Sprintf("error deleting record %d", id), err)
	}
	return nil
}

// FindByID returns the live record with the given id.
func (s *RecordService) FindByID(ctx context.Context, id int64) (*models.BibliographicRecord, error) {
	if id <= 0 {
		return nil, domain.NewService("record id is required", domain.ErrInvalidID)
	}
	record, err := s.repo.FindByID(ctx, s.db.Querier(), id)
	if err != nil {
		return nil, domain.NewService(fmt.Sprintf("error retrieving record %d", id), err)
	}
	return record, nil
}

// List returns all live records.
func (s *RecordService) List(ctx context.Context) ([]*models.BibliographicRecord, error) {
	records, err := s.repo.List(ctx, s.db.Querier())
	if err != nil {
		return nil, domain.NewService("error retrieving record list", err)
	}
	return records, nil
}

func sameBookID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
