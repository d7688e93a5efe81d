// Package postgres implements the catalog repository interfaces against
// PostgreSQL. Statements run on whatever Querier the caller supplies, so the
// same repository serves autocommit single-entity operations and the
// transactional catalog workflows.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/matiscalella/lms/pkg/database"
	"github.com/matiscalella/lms/services/catalog/domain"
	"github.com/matiscalella/lms/services/catalog/domain/models"
	"github.com/matiscalella/lms/services/catalog/domain/repositories"
)

const (
	insertBookSQL = `
		INSERT INTO books (deleted, title, author, publisher, publication_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	// Live record hydrated via LEFT JOIN; soft-deleted rows are invisible on
	// both sides.
	selectBookSQL = `
		SELECT b.id, b.deleted, b.title, b.author, b.publisher, b.publication_year,
		       br.id, br.deleted, br.isbn, br.dewey_class, br.shelf_location, br.language, br.book_id
		FROM books b
		LEFT JOIN bibliographic_records br
		       ON br.book_id = b.id AND br.deleted = FALSE
		WHERE b.deleted = FALSE`

	selectBookByIDSQL = selectBookSQL + ` AND b.id = $1`

	selectBooksSQL = selectBookSQL + ` ORDER BY b.id`

	updateBookSQL = `
		UPDATE books
		SET title = $1, author = $2, publisher = $3, publication_year = $4
		WHERE id = $5 AND deleted = FALSE`

	softDeleteBookSQL = `UPDATE books SET deleted = TRUE WHERE id = $1 AND deleted = FALSE`
)

// BookRepository implements repositories.BookRepository against PostgreSQL.
type BookRepository struct{}

var _ repositories.BookRepository = (*BookRepository)(nil)

// NewBookRepository returns a stateless PostgreSQL book repository.
func NewBookRepository() *BookRepository {
	return &BookRepository{}
}

// Insert persists a new book and populates book.ID from RETURNING.
func (r *BookRepository) Insert(ctx context.Context, q database.Querier, book *models.Book) error {
	err := q.QueryRowContext(ctx, insertBookSQL,
		book.Deleted,
		book.Title,
		book.Author,
		book.Publisher,
		book.PublicationYear,
	).Scan(&book.ID)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// FindByID returns the live book with the given id, record hydrated.
func (r *BookRepository) FindByID(ctx context.Context, q database.Querier, id int64) (*models.Book, error) {
	row := q.QueryRowContext(ctx, selectBookByIDSQL, id)
	book, err := scanBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("query book: %w", err)
	}
	return book, nil
}

// List returns all live books ordered by id.
func (r *BookRepository) List(ctx context.Context, q database.Querier) ([]*models.Book, error) {
	rows, err := q.QueryContext(ctx, selectBooksSQL)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var books []*models.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}

// Update persists field changes to a live book.
func (r *BookRepository) Update(ctx context.Context, q database.Querier, book *models.Book) error {
	res, err := q.ExecContext(ctx, updateBookSQL,
		book.Title,
		book.Author,
		book.Publisher,
		book.PublicationYear,
		book.ID,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return requireRow(res, domain.ErrBookNotFound)
}

// SoftDelete marks the book deleted. The row remains in storage.
func (r *BookRepository) SoftDelete(ctx context.Context, q database.Querier, id int64) error {
	res, err := q.ExecContext(ctx, softDeleteBookSQL, id)
	if err != nil {
		return fmt.Errorf("soft delete book: %w", err)
	}
	return requireRow(res, domain.ErrBookNotFound)
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanBook(s scanner) (*models.Book, error) {
	var (
		book models.Book

		recID      sql.NullInt64
		recDeleted sql.NullBool
		isbn       sql.NullString
		dewey      sql.NullString
		shelf      sql.NullString
		language   sql.NullString
		bookID     sql.NullInt64
	)

	err := s.Scan(
		&book.ID, &book.Deleted, &book.Title, &book.Author, &book.Publisher, &book.PublicationYear,
		&recID, &recDeleted, &isbn, &dewey, &shelf, &language, &bookID,
	)
	if err != nil {
		return nil, err
	}

	if recID.Valid {
		rec := &models.BibliographicRecord{
			Base:          models.Base{ID: recID.Int64, Deleted: recDeleted.Bool},
			ISBN:          nullableString(isbn),
			DeweyClass:    nullableString(dewey),
			ShelfLocation: nullableString(shelf),
			Language:      nullableString(language),
		}
		if bookID.Valid {
			rec.BookID = &bookID.Int64
		}
		book.Record = rec
	}
	return &book, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// requireRow converts a zero-row write into notFound: a live row with that id
// did not exist.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
