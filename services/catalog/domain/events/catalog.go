package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the catalog transactional workflows.
// Events for multi-entity workflows are published inside the same database
// transaction as the writes they describe, so a committed workflow always
// has its event and a rolled-back one never does.
const (
	TopicBookCreated = "catalog.book.created"
	TopicBookDeleted = "catalog.book.deleted"
	TopicRecordMoved = "catalog.record.moved"
)

// BookCreatedEvent is published when the create-book-with-record workflow commits.
type BookCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	BookID     int64     `json:"book_id"`
	RecordID   int64     `json:"record_id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookDeletedEvent is published when the cascade delete workflow commits.
// RecordID is nil when the book had no live record at deletion time.
type BookDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	BookID     int64     `json:"book_id"`
	RecordID   *int64    `json:"record_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RecordMovedEvent is published when the assign-or-move workflow commits.
// FromBookID is nil on first-time assignment.
type RecordMovedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	RecordID   int64     `json:"record_id"`
	FromBookID *int64    `json:"from_book_id,omitempty"`
	ToBookID   int64     `json:"to_book_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
