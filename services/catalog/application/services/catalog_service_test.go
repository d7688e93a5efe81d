package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matiscalella/lms/services/catalog/domain"
	"github.com/matiscalella/lms/services/catalog/domain/models"
)

func TestCatalogService_CreateBookWithRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("commits both entities linked one-to-one", func(t *testing.T) {
		f := newFixture()
		svc := f.catalogService()

		book := &models.Book{Title: "Dune", Author: "Herbert", PublicationYear: intptr(1965)}
		record := &models.BibliographicRecord{ISBN: strptr("9780441013593")}

		if err := svc.CreateBookWithRecord(ctx, book, record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !book.HasID() || !record.HasID() {
			t.Fatal("expected storage-assigned ids on both entities")
		}
		if !record.LinkedTo(book.ID) {
			t.Fatalf("expected record linked to book %d, got %v", book.ID, record.BookID)
		}
		if f.provider.commits != 1 {
			t.Fatalf("expected exactly one commit, got %d", f.provider.commits)
		}

		// Both retrievable by their new ids, with the book hydrating the record.
		got, err := f.bookService().FindByID(ctx, book.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Record == nil || got.Record.ID != record.ID {
			t.Fatal("expected linked record hydrated on the book")
		}
		if _, err := f.recordService().FindByID(ctx, record.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("second insert failure rolls back the book", func(t *testing.T) {
		f := newFixture()
		f.records.insertErr = errors.New("disk full")
		svc := f.catalogService()

		book := &models.Book{Title: "Dune", Author: "Herbert"}
		record := &models.BibliographicRecord{}

		err := svc.CreateBookWithRecord(ctx, book, record)
		if !domain.IsTransaction(err) {
			t.Fatalf("expected transaction error, got %v", err)
		}
		if f.provider.rollbacks != 1 {
			t.Fatalf("expected one rollback, got %d", f.provider.rollbacks)
		}
		// Nothing visible after rollback.
		if _, err := f.bookService().FindByID(ctx, 1); !errors.Is(err, domain.ErrBookNotFound) {
			t.Fatalf("expected the inserted book to be rolled back, got %v", err)
		}
	})

	t.Run("validation failure happens before any write", func(t *testing.T) {
		f := newFixture()
		svc := f.catalogService()

		book := &models.Book{Title: "Dune", Author: "Herbert", PublicationYear: intptr(time.Now().Year() + 1)}
		err := svc.CreateBookWithRecord(ctx, book, &models.BibliographicRecord{})
		if !domain.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if f.provider.commits+f.provider.rollbacks != 0 {
			t.Fatal("expected no transaction to be opened")
		}
	})

	t.Run("rejects nil entities", func(t *testing.T) {
		svc := newFixture().catalogService()
		if err := svc.CreateBookWithRecord(ctx, nil, &models.BibliographicRecord{}); !domain.IsService(err) {
			t.Fatalf("expected service error, got %v", err)
		}
		if err := svc.CreateBookWithRecord(ctx, &models.Book{Title: "t", Author: "a"}, nil); !domain.IsService(err) {
			t.Fatalf("expected service error, got %v", err)
		}
	})

	t.Run("rejects predefined ids and preassigned link", func(t *testing.T) {
		svc := newFixture().catalogService()

		book := &models.Book{Title: "Dune", Author: "Herbert"}
		book.ID = 4
		if err := svc.CreateBookWithRecord(ctx, book, &models.BibliographicRecord{}); !errors.Is(err, domain.ErrPredefinedID) {
			t.Fatalf("expected ErrPredefinedID, got %v", err)
		}

		rec := &models.BibliographicRecord{}
		rec.ID = 2
		if err := svc.CreateBookWithRecord(ctx, &models.Book{Title: "Dune", Author: "Herbert"}, rec); !errors.Is(err, domain.ErrPredefinedID) {
			t.Fatalf("expected ErrPredefinedID, got %v", err)
		}

		bookID := int64(8)
		linked := &models.BibliographicRecord{BookID: &bookID}
		if err := svc.CreateBookWithRecord(ctx, &models.Book{Title: "Dune", Author: "Herbert"}, linked); !errors.Is(err, domain.ErrPreassignedLink) {
			t.Fatalf("expected ErrPreassignedLink, got %v", err)
		}
	})
}

func TestCatalogService_DeleteBookCascade(t *testing.T) {
	ctx := context.Background()

	t.Run("soft-deletes the book and its linked record together", func(t *testing.T) {
		f := newFixture()
		svc := f.catalogService()

		book := &models.Book{Title: "Dune", Author: "Herbert"}
		record := &models.BibliographicRecord{ISBN: strptr("9780441013593")}
		if err := svc.CreateBookWithRecord(ctx, book, record); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		if err := svc.DeleteBookCascade(ctx, book.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.bookService().FindByID(ctx, book.ID); !errors.Is(err, domain.ErrBookNotFound) {
			t.Fatalf("expected book gone, got %v", err)
		}
		if _, err := f.recordService().FindByID(ctx, record.ID); !errors.Is(err, domain.ErrRecordNotFound) {
			t.Fatalf("expected cascaded record gone, got %v", err)
		}
	})

	t.Run("deletes a book without a record", func(t *testing.T) {
		f := newFixture()
		book, _ := f.bookService().Create(ctx, &models.Book{Title: "Dune", Author: "Herbert"})
		if err := f.catalogService().DeleteBookCascade(ctx, book.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown book fails and repeat delete fails", func(t *testing.T) {
		f := newFixture()
		svc := f.catalogService()
		if err := svc.DeleteBookCascade(ctx, 99); !errors.Is(err, domain.ErrBookNotFound) {
			t.Fatalf("expected ErrBookNotFound, got %v", err)
		}

		book, _ := f.bookService().Create(ctx, &models.Book{Title: "Dune", Author: "Herbert"})
		if err := svc.DeleteBookCascade(ctx, book.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.DeleteBookCascade(ctx, book.ID); !errors.Is(err, domain.ErrBookNotFound) {
			t.Fatalf("expected failure on repeat cascade delete, got %v", err)
		}
	})

	t.Run("rejects non-positive id without opening a transaction", func(t *testing.T) {
		f := newFixture()
		if err := f.catalogService().DeleteBookCascade(ctx, 0); !errors.Is(err, domain.ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
		if f.provider.commits+f.provider.rollbacks != 0 {
			t.Fatal("expected no transaction to be opened")
		}
	})
}

func TestCatalogService_MoveRecord(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, *models.Book, *models.BibliographicRecord) {
		t.Helper()
		f := newFixture()
		book, err := f.bookService().Create(ctx, &models.Book{Title: "Dune", Author: "Herbert"})
		if err != nil {
			t.Fatalf("setup book: %v", err)
		}
		rec, err := f.recordService().Create(ctx, &models.BibliographicRecord{ISBN: strptr("9780441013593")})
		if err != nil {
			t.Fatalf("setup record: %v", err)
		}
		return f, book, rec
	}

	t.Run("assigns an unlinked record", func(t *testing.T) {
		f, book, rec := setup(t)
		if err := f.catalogService().MoveRecord(ctx, rec.ID, book.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := f.recordService().FindByID(ctx, rec.ID)
		if !got.LinkedTo(book.ID) {
			t.Fatalf("expected record linked to %d, got %v", book.ID, got.BookID)
		}
	})

	t.Run("repeating the same assignment fails with no write", func(t *testing.T) {
		f, book, rec := setup(t)
		if err := f.catalogService().MoveRecord(ctx, rec.ID, book.ID); err != nil {
			t.Fatalf("assign failed: %v", err)
		}
		commits := f.provider.commits

		err := f.catalogService().MoveRecord(ctx, rec.ID, book.ID)
		if !errors.Is(err, domain.ErrRecordAlreadyAssigned) {
			t.Fatalf("expected ErrRecordAlreadyAssigned, got %v", err)
		}
		if !domain.IsService(err) {
			t.Fatalf("expected service error, got %v", err)
		}
		if f.provider.commits != commits {
			t.Fatal("expected no additional commit for the rejected no-op")
		}
	})

	t.Run("moves a record between books", func(t *testing.T) {
		f, book, rec := setup(t)
		second, err := f.bookService().Create(ctx, &models.Book{Title: "Messiah", Author: "Herbert"})
		if err != nil {
			t.Fatalf("setup second book: %v", err)
		}

		svc := f.catalogService()
		if err := svc.MoveRecord(ctx, rec.ID, book.ID); err != nil {
			t.Fatalf("assign failed: %v", err)
		}
		if err := svc.MoveRecord(ctx, rec.ID, second.ID); err != nil {
			t.Fatalf("move failed: %v", err)
		}

		got, _ := f.recordService().FindByID(ctx, rec.ID)
		if !got.LinkedTo(second.ID) {
			t.Fatalf("expected record on book %d, got %v", second.ID, got.BookID)
		}
		// The first book no longer hydrates a record.
		first, _ := f.bookService().FindByID(ctx, book.ID)
		if first.Record != nil {
			t.Fatal("expected old book to be unlinked")
		}
	})

	t.Run("a book never holds two live records", func(t *testing.T) {
		f, book, rec := setup(t)
		svc := f.catalogService()
		if err := svc.MoveRecord(ctx, rec.ID, book.ID); err != nil {
			t.Fatalf("assign failed: %v", err)
		}

		other, err := f.recordService().Create(ctx, &models.BibliographicRecord{Language: strptr("French")})
		if err != nil {
			t.Fatalf("setup second record: %v", err)
		}
		if err := svc.MoveRecord(ctx, other.ID, book.ID); !errors.Is(err, domain.ErrRecordLinked) {
			t.Fatalf("expected ErrRecordLinked, got %v", err)
		}
		got, _ := f.recordService().FindByID(ctx, other.ID)
		if got.Linked() {
			t.Fatal("expected second record to stay unlinked after rollback")
		}
	})

	t.Run("unknown record or target book fails", func(t *testing.T) {
		f, book, rec := setup(t)
		svc := f.catalogService()
		if err := svc.MoveRecord(ctx, 77, book.ID); !errors.Is(err, domain.ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
		if err := svc.MoveRecord(ctx, rec.ID, 77); !errors.Is(err, domain.ErrBookNotFound) {
			t.Fatalf("expected ErrBookNotFound, got %v", err)
		}
	})

	t.Run("rejects non-positive ids", func(t *testing.T) {
		svc := newFixture().catalogService()
		if err := svc.MoveRecord(ctx, 0, 1); !errors.Is(err, domain.ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
		if err := svc.MoveRecord(ctx, 1, -2); !errors.Is(err, domain.ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})
}
