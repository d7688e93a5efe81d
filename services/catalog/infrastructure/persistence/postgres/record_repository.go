package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/matiscalella/lms/pkg/database"
	"github.com/matiscalella/lms/services/catalog/domain"
	"github.com/matiscalella/lms/services/catalog/domain/models"
	"github.com/matiscalella/lms/services/catalog/domain/repositories"
)

const (
	insertRecordSQL = `
		INSERT INTO bibliographic_records (deleted, isbn, dewey_class, shelf_location, language, book_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	selectRecordSQL = `
		SELECT id, deleted, isbn, dewey_class, shelf_location, language, book_id
		FROM bibliographic_records
		WHERE deleted = FALSE`

	selectRecordByIDSQL = selectRecordSQL + ` AND id = $1`

	selectRecordsSQL = selectRecordSQL + ` ORDER BY id`

	// book_id deliberately absent: relinking goes through UpdateBookID only.
	updateRecordSQL = `
		UPDATE bibliographic_records
		SET isbn = $1, dewey_class = $2, shelf_location = $3, language = $4
		WHERE id = $5 AND deleted = FALSE`

	softDeleteRecordSQL = `UPDATE bibliographic_records SET deleted = TRUE WHERE id = $1 AND deleted = FALSE`

	updateRecordBookIDSQL = `UPDATE bibliographic_records SET book_id = $1 WHERE id = $2 AND deleted = FALSE`
)

// pgUniqueViolation is the PostgreSQL error code raised by the partial unique
// index on bibliographic_records.book_id.
const pgUniqueViolation = "23505"

// RecordRepository implements repositories.RecordRepository against PostgreSQL.
type RecordRepository struct{}

var _ repositories.RecordRepository = (*RecordRepository)(nil)

// NewRecordRepository returns a stateless PostgreSQL record repository.
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{}
}

// Insert persists a new record and populates record.ID from RETURNING.
// Returns domain.ErrRecordLinked when book_id is set and the book already has
// a live record.
func (r *RecordRepository) Insert(ctx context.Context, q database.Querier, record *models.BibliographicRecord) error {
	err := q.QueryRowContext(ctx, insertRecordSQL,
		record.Deleted,
		record.ISBN,
		record.DeweyClass,
		record.ShelfLocation,
		record.Language,
		record.BookID,
	).Scan(&record.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRecordLinked
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// FindByID returns the live record with the given id.
func (r *RecordRepository) FindByID(ctx context.Context, q database.Querier, id int64) (*models.BibliographicRecord, error) {
	record, err := scanRecord(q.QueryRowContext(ctx, selectRecordByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("query record: %w", err)
	}
	return record, nil
}

// List returns all live records ordered by id.
func (r *RecordRepository) List(ctx context.Context, q database.Querier) ([]*models.BibliographicRecord, error) {
	rows, err := q.QueryContext(ctx, selectRecordsSQL)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var records []*models.BibliographicRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Update persists field changes to a live record. book_id is untouched.
func (r *RecordRepository) Update(ctx context.Context, q database.Querier, record *models.BibliographicRecord) error {
	res, err := q.ExecContext(ctx, updateRecordSQL,
		record.ISBN,
		record.DeweyClass,
		record.ShelfLocation,
		record.Language,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return requireRow(res, domain.ErrRecordNotFound)
}

// SoftDelete marks the record deleted.
func (r *RecordRepository) SoftDelete(ctx context.Context, q database.Querier, id int64) error {
	res, err := q.ExecContext(ctx, softDeleteRecordSQL, id)
	if err != nil {
		return fmt.Errorf("soft delete record: %w", err)
	}
	return requireRow(res, domain.ErrRecordNotFound)
}

// UpdateBookID reassigns the record's foreign reference.
func (r *RecordRepository) UpdateBookID(ctx context.Context, q database.Querier, recordID, bookID int64) error {
	res, err := q.ExecContext(ctx, updateRecordBookIDSQL, bookID, recordID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRecordLinked
		}
		return fmt.Errorf("update record book_id: %w", err)
	}
	return requireRow(res, domain.ErrRecordNotFound)
}

func scanRecord(s scanner) (*models.BibliographicRecord, error) {
	var (
		record models.BibliographicRecord
		bookID sql.NullInt64
	)
	err := s.Scan(
		&record.ID, &record.Deleted,
		&record.ISBN, &record.DeweyClass, &record.ShelfLocation, &record.Language,
		&bookID,
	)
	if err != nil {
		return nil, err
	}
	if bookID.Valid {
		record.BookID = &bookID.Int64
	}
	return &record, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
