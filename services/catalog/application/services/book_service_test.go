package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matiscalella/lms/services/catalog/domain"
	"github.com/matiscalella/lms/services/catalog/domain/models"
)

func newBook() *models.Book {
	return &models.Book{
		Title:           "Moby Dick",
		Author:          "Melville",
		PublicationYear: intptr(1851),
	}
}

func TestBookService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and forces deleted false", func(t *testing.T) {
		svc := newFixture().bookService()
		book := newBook()
		book.Deleted = true

		created, err := svc.Create(ctx, book)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created.HasID() {
			t.Fatal("expected a storage-assigned id")
		}
		if created.Deleted {
			t.Fatal("expected deleted to be forced false")
		}
	})

	t.Run("populates id into the caller's entity", func(t *testing.T) {
		svc := newFixture().bookService()
		book := newBook()
		if _, err := svc.Create(ctx, book); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if book.ID == 0 {
			t.Fatal("expected id on the original entity")
		}
	})

	t.Run("rejects predefined id", func(t *testing.T) {
		svc := newFixture().bookService()
		book := newBook()
		book.ID = 7

		_, err := svc.Create(ctx, book)
		if !errors.Is(err, domain.ErrPredefinedID) {
			t.Fatalf("expected ErrPredefinedID, got %v", err)
		}
		if !domain.IsService(err) {
			t.Fatalf("expected service error, got %v", err)
		}
	})

	t.Run("validation failure assigns no id and touches no storage", func(t *testing.T) {
		f := newFixture()
		svc := f.bookService()
		book := newBook()
		book.Title = strings.Repeat("x", 151)

		_, err := svc.Create(ctx, book)
		if !domain.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if book.HasID() {
			t.Fatal("expected no id assignment on validation failure")
		}
		if len(f.store.books) != 0 {
			t.Fatal("expected no stored books")
		}
	})

	t.Run("wraps storage failure as service error", func(t *testing.T) {
		f := newFixture()
		f.books.insertErr = errors.New("connection refused")
		_, err := f.bookService().Create(ctx, newBook())
		if !domain.IsService(err) {
			t.Fatalf("expected service error, got %v", err)
		}
	})
}

func TestBookService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates a live book", func(t *testing.T) {
		f := newFixture()
		svc := f.bookService()
		book, _ := svc.Create(ctx, newBook())

		book.Title = "Moby-Dick; or, The Whale"
		if _, err := svc.Update(ctx, book); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := svc.FindByID(ctx, book.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "Moby-Dick; or, The Whale" {
			t.Fatalf("update not persisted, got title %q", got.Title)
		}
	})

	t.Run("rejects missing id", func(t *testing.T) {
		_, err := newFixture().bookService().Update(ctx, newBook())
		if !errors.Is(err, domain.ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("rejects unknown id", func(t *testing.T) {
		book := newBook()
		book.ID = 42
		_, err := newFixture().bookService().Update(ctx, book)
		if !errors.Is(err, domain.ErrBookNotFound) {
			t.Fatalf("expected ErrBookNotFound, got %v", err)
		}
	})

	t.Run("soft-deleted book is immutable", func(t *testing.T) {
		f := newFixture()
		svc := f.bookService()
		book, _ := svc.Create(ctx, newBook())
		if err := svc.Delete(ctx, book.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		book.Title = "changed"
		if _, err := svc.Update(ctx, book); !errors.Is(err, domain.ErrBookNotFound) {
			t.Fatalf("expected ErrBookNotFound, got %v", err)
		}
	})
}

func TestBookService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("soft delete is terminal", func(t *testing.T) {
		f := newFixture()
		svc := f.bookService()
		book, _ := svc.Create(ctx, newBook())

		if err := svc.Delete(ctx, book.ID); err != nil {
			t.Fatalf("first delete failed: %v", err)
		}

		err := svc.Delete(ctx, book.ID)
		if !domain.IsService(err) || !errors.Is(err, domain.ErrBookNotFound) {
			t.Fatalf("expected service error on repeat delete, got %v", err)
		}

		if _, err := svc.FindByID(ctx, book.ID); !errors.Is(err, domain.ErrBookNotFound) {
			t.Fatalf("expected deleted book to be invisible, got %v", err)
		}

		// Row is retained in storage, only flagged.
		if stored, ok := f.store.books[book.ID]; !ok || !stored.Deleted {
			t.Fatal("expected the row to remain with deleted=true")
		}
	})

	t.Run("rejects non-positive id", func(t *testing.T) {
		if err := newFixture().bookService().Delete(ctx, 0); !errors.Is(err, domain.ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})
}

func TestBookService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	svc := f.bookService()

	first, _ := svc.Create(ctx, newBook())
	second, _ := svc.Create(ctx, &models.Book{Title: "Dune", Author: "Herbert", PublicationYear: intptr(1965)})
	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	books, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected 1 live book, got %d", len(books))
	}
	if books[0].ID != second.ID {
		t.Fatalf("expected book %d, got %d", second.ID, books[0].ID)
	}
}
