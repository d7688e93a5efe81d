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

// BookService manages Book entities independently: validation, precondition
// checks, soft-delete semantics. Multi-entity workflows live in CatalogService.
type BookService struct {
	db   database.TxProvider
	repo repositories.BookRepository
}

// NewBookService returns a BookService backed by the given provider and repository.
func NewBookService(db database.TxProvider, repo repositories.BookRepository) *BookService {
	return &BookService{db: db, repo: repo}
}

// Create validates and persists a new book. The storage-assigned id is
// populated into the returned entity and deleted is forced to false.
func (s *BookService) Create(ctx context.Context, book *models.Book) (*models.Book, error) {
	if err := domainsvcs.ValidateBook(book); err != nil {
		return nil, err
	}
	if book.ID != 0 {
		return nil, domain.NewService("new books cannot have a predefined id", domain.ErrPredefinedID)
	}
	book.Deleted = false

	if err := s.repo.Insert(ctx, s.db.Querier(), book); err != nil {
		return nil, domain.NewService("error creating book", err)
	}
	if !book.HasID() {
		return nil, domain.NewService("failed to obtain generated id for book", nil)
	}
	return book, nil
}

// Update validates and persists changes to a live book. Soft-deleted books
// are immutable; they surface as not found.
func (s *BookService) Update(ctx context.Context, book *models.Book) (*models.Book, error) {
	if err := domainsvcs.ValidateBook(book); err != nil {
		return nil, err
	}
	if book.ID <= 0 {
		return nil, domain.NewService("book id is required for update", domain.ErrInvalidID)
	}

	if _, err := s.repo.FindByID(ctx, s.db.Querier(), book.ID); err != nil {
		return nil, domain.NewService(fmt.Sprintf("cannot update book %d", book.ID), err)
	}

	if err := s.repo.Update(ctx, s.db.Querier(), book); err != nil {
		return nil, domain.NewService(fmt.Sprintf("error updating book %d", book.ID), err)
	}
	return book, nil
}

// Delete soft-deletes a live book. Deleting an absent or already-deleted book
// fails; repeat deletion is an error, not a no-op.
func (s *BookService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewService("book id is required for delete", domain.ErrInvalidID)
	}
	if _, err := s.repo.FindByID(ctx, s.db.Querier(), id); err != nil {
		return domain.NewService(fmt.Sprintf("cannot delete book %d", id), err)
	}
	if err := s.repo.SoftDelete(ctx, s.db.Querier(), id); err != nil {
		return domain.NewService(fmt.Sprintf("error deleting book %d", id), err)
	}
	return nil
}

// FindByID returns the live book with the given id, record hydrated.
func (s *BookService) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	if id <= 0 {
		return nil, domain.NewService("book id is required", domain.ErrInvalidID)
	}
	book, err := s.repo.FindByID(ctx, s.db.Querier(), id)
	if err != nil {
		return nil, domain.NewService(fmt.Sprintf("error retrieving book %d", id), err)
	}
	return book, nil
}

// List returns all live books.
func (s *BookService) List(ctx context.Context) ([]*models.Book, error) {
	books, err := s.repo.List(ctx, s.db.Querier())
	if err != nil {
		return nil, domain.NewService("error retrieving book list", err)
	}
	return books, nil
}
