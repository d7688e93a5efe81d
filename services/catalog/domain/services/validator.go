// Package services contains stateless domain services for the catalog bounded
// context. They operate purely on domain types, have no side effects, and
// never touch storage.
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/matiscalella/lms/services/catalog/domain"
	"github.com/matiscalella/lms/services/catalog/domain/models"
)

// ValidateBook enforces the field and business rules a Book must satisfy
// before any persistence call.
//
// Rules:
//   - Title required, non-blank, at most 150 characters
//   - Author required, non-blank, at most 120 characters
//   - Publisher optional, at most 100 characters
//   - PublicationYear optional, 0 ≤ year ≤ current calendar year
func ValidateBook(book *models.Book) error {
	if book == nil {
		return domain.NewValidation("book cannot be nil")
	}

	if strings.TrimSpace(book.Title) == "" {
		return domain.NewValidation("title is required")
	}
	if len(book.Title) > models.MaxTitleLength {
		return domain.NewValidation(fmt.Sprintf("title exceeds maximum length (%d)", models.MaxTitleLength))
	}

	if strings.TrimSpace(book.Author) == "" {
		return domain.NewValidation("author is required")
	}
	if len(book.Author) > models.MaxAuthorLength {
		return domain.NewValidation(fmt.Sprintf("author exceeds maximum length (%d)", models.MaxAuthorLength))
	}

	if book.Publisher != nil && len(*book.Publisher) > models.MaxPublisherLength {
		return domain.NewValidation(fmt.Sprintf("publisher exceeds maximum length (%d)", models.MaxPublisherLength))
	}

	if book.PublicationYear != nil {
		currentYear := time.Now().Year()
		if *book.PublicationYear < 0 {
			return domain.NewValidation("publication year must not be negative")
		}
		if *book.PublicationYear > currentYear {
			return domain.NewValidation(fmt.Sprintf("publication year cannot exceed %d", currentYear))
		}
	}

	return nil
}

// ValidateRecord enforces the field rules a BibliographicRecord must satisfy
// before any persistence call. All fields are optional, but an ISBN that is
// present must not be blank.
func ValidateRecord(record *models.BibliographicRecord) error {
	if record == nil {
		return domain.NewValidation("bibliographic record cannot be nil")
	}

	if record.ISBN != nil {
		if strings.TrimSpace(*record.ISBN) == "" {
			return domain.NewValidation("isbn cannot be blank")
		}
		if len(*record.ISBN) > models.MaxISBNLength {
			return domain.NewValidation(fmt.Sprintf("isbn exceeds maximum length (%d)", models.MaxISBNLength))
		}
	}

	if record.DeweyClass != nil && len(*record.DeweyClass) > models.MaxDeweyClassLength {
		return domain.NewValidation(fmt.Sprintf("dewey class exceeds maximum length (%d)", models.MaxDeweyClassLength))
	}

	if record.ShelfLocation != nil && len(*record.ShelfLocation) > models.MaxShelfLocationLength {
		return domain.NewValidation(fmt.Sprintf("shelf location exceeds maximum length (%d)", models.MaxShelfLocationLength))
	}

	if record.Language != nil && len(*record.Language) > models.MaxLanguageLength {
		return domain.NewValidation(fmt.Sprintf("language exceeds maximum length (%d)", models.MaxLanguageLength))
	}

	return nil
}
