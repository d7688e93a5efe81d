package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/matiscalella/lms/pkg/database"
	pkgevents "github.com/matiscalella/lms/pkg/events"
	"github.com/matiscalella/lms/pkg/logger"
	"github.com/matiscalella/lms/services/catalog/domain"
	domainevents "github.com/matiscalella/lms/services/catalog/domain/events"
	"github.com/matiscalella/lms/services/catalog/domain/models"
	"github.com/matiscalella/lms/services/catalog/domain/repositories"
	domainsvcs "github.com/matiscalella/lms/services/catalog/domain/services"
)

// CatalogService owns the one-to-one invariant between books and
// bibliographic records. Each workflow acquires one unit-of-work, performs
// every step against it, commits on full success and rolls back on any
// failure. Events are published through a transaction-bound publisher so a
// rolled-back workflow never emits one.
type CatalogService struct {
	db      database.TxProvider
	books   repositories.BookRepository
	records repositories.RecordRepository
	bus     *pkgevents.EventBus // optional; nil disables publishing
	log     logger.Logger
}

// NewCatalogService returns a CatalogService over the given repositories.
// bus may be nil when transactional event publishing is not wanted.
func NewCatalogService(
	db database.TxProvider,
	books repositories.BookRepository,
	records repositories.RecordRepository,
	bus *pkgevents.EventBus,
	log logger.Logger,
) *CatalogService {
	return &CatalogService{db: db, books: books, records: records, bus: bus, log: log}
}

// CreateBookWithRecord creates a book and its bibliographic record in a
// single atomic transaction. Preconditions: both entities new (no id), record
// unlinked. Either insert failing rolls back both.
func (s *CatalogService) CreateBookWithRecord(ctx context.Context, book *models.Book, record *models.BibliographicRecord) error {
	if book == nil {
		return domain.NewService("book cannot be nil", nil)
	}
	if record == nil {
		return domain.NewService("bibliographic record cannot be nil", nil)
	}
	if book.ID != 0 {
		return domain.NewService("new book cannot have a predefined id", domain.ErrPredefinedID)
	}
	if record.ID != 0 {
		return domain.NewService("new record cannot have a predefined id", domain.ErrPredefinedID)
	}
	if record.BookID != nil {
		return domain.NewService("record book_id must be null when creating book and record", domain.ErrPreassignedLink)
	}
	// Validate both entities before acquiring the boundary; no work to undo.
	if err := domainsvcs.ValidateBook(book); err != nil {
		return err
	}
	if err := domainsvcs.ValidateRecord(record); err != nil {
		return err
	}

	err := database.WithTx(ctx, s.db, func(uow database.UnitOfWork) error {
		book.Deleted = false
		record.Deleted = false

		if err := s.books.Insert(ctx, uow.Querier(), book); err != nil {
			return domain.NewTransaction("create book", err)
		}
		if !book.HasID() {
			return domain.NewTransaction("failed to obtain generated id for book", nil)
		}

		record.BookID = &book.ID
		if err := s.records.Insert(ctx, uow.Querier(), record); err != nil {
			record.BookID = nil
			return domain.NewTransaction("create record", err)
		}
		if !record.HasID() {
			return domain.NewTransaction("failed to obtain generated id for record", nil)
		}

		return s.publish(ctx, uow, domainevents.TopicBookCreated, domainevents.BookCreatedEvent{
			EventID:    uuid.New(),
			Version:    1,
			BookID:     book.ID,
			RecordID:   record.ID,
			Title:      book.Title,
			Author:     book.Author,
			OccurredAt: time.Now().UTC(),
		})
	})
	return workflowError("create book with record", err)
}

// DeleteBookCascade soft-deletes a book and, when one is linked, its live
// bibliographic record, inside one transaction. The cascade is deliberate:
// a record must never stay linked to a deleted book.
func (s *CatalogService) DeleteBookCascade(ctx context.Context, bookID int64) error {
	if bookID <= 0 {
		return domain.NewService("book id must be a positive value", domain.ErrInvalidID)
	}

	err := database.WithTx(ctx, s.db, func(uow database.UnitOfWork) error {
		book, err := s.books.FindByID(ctx, uow.Querier(), bookID)
		if err != nil {
			return domain.NewService(fmt.Sprintf("cannot delete book %d", bookID), err)
		}

		if err := s.books.SoftDelete(ctx, uow.Querier(), bookID); err != nil {
			return domain.NewTransaction("delete book", err)
		}

		var recordID *int64
		if book.Record != nil {
			if err := s.records.SoftDelete(ctx, uow.Querier(), book.Record.ID); err != nil {
				return domain.NewTransaction("delete linked record", err)
			}
			recordID = &book.Record.ID
		}

		return s.publish(ctx, uow, domainevents.TopicBookDeleted, domainevents.BookDeletedEvent{
			EventID:    uuid.New(),
			Version:    1,
			BookID:     bookID,
			RecordID:   recordID,
			OccurredAt: time.Now().UTC(),
		})
	})
	return workflowError("delete book with record", err)
}

// MoveRecord assigns or moves a bibliographic record to the given book in one
// transaction. An unlinked record is assigned; a record already linked to the
// target fails explicitly; a record linked elsewhere is moved. This is the
// only sanctioned relinking path.
func (s *CatalogService) MoveRecord(ctx context.Context, recordID, bookID int64) error {
	if recordID <= 0 || bookID <= 0 {
		return domain.NewService("record id and book id must be positive values", domain.ErrInvalidID)
	}

	err := database.WithTx(ctx, s.db, func(uow database.UnitOfWork) error {
		record, err := s.records.FindByID(ctx, uow.Querier(), recordID)
		if err != nil {
			return domain.NewService(fmt.Sprintf("cannot move record %d", recordID), err)
		}
		if _, err := s.books.FindByID(ctx, uow.Querier(), bookID); err != nil {
			return domain.NewService(fmt.Sprintf("target book %d", bookID), err)
		}

		if record.LinkedTo(bookID) {
			return domain.NewService(
				fmt.Sprintf("record %d is already assigned to book %d", recordID, bookID),
				domain.ErrRecordAlreadyAssigned)
		}

		fromBookID := record.BookID
		if err := s.records.UpdateBookID(ctx, uow.Querier(), recordID, bookID); err != nil {
			return domain.NewTransaction("move record", err)
		}

		return s.publish(ctx, uow, domainevents.TopicRecordMoved, domainevents.RecordMovedEvent{
			EventID:    uuid.New(),
			Version:    1,
			RecordID:   recordID,
			FromBookID: fromBookID,
			ToBookID:   bookID,
			OccurredAt: time.Now().UTC(),
		})
	})
	return workflowError("move record", err)
}

// publish emits event on topic through a publisher bound to the workflow's
// transaction. No-op when no bus is wired or the unit-of-work has no SQL
// transaction (test doubles).
func (s *CatalogService) publish(ctx context.Context, uow database.UnitOfWork, topic string, event any) error {
	if s.bus == nil || uow.Tx() == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return domain.NewTransaction("marshal event", err)
	}
	pub, err := s.bus.NewTxPublisher(uow.Tx())
	if err != nil {
		return domain.NewTransaction("create tx publisher", err)
	}
	if err := pub.Publish(topic, message.NewMessage(uuid.NewString(), payload)); err != nil {
		return domain.NewTransaction("publish "+topic, err)
	}
	return nil
}

// workflowError wraps non-domain failures (begin/commit) as transaction
// errors; failures already carrying a kind pass through unchanged.
func workflowError(msg string, err error) error {
	if err == nil {
		return nil
	}
	var derr *domain.Error
	if errors.As(err, &derr) {
		return err
	}
	return domain.NewTransaction(msg, err)
}
