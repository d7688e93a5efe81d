// Package domain holds the error model shared by the catalog bounded context.
// Failures carry a Kind discriminating the three channels every public
// operation exposes: validation, service precondition/storage, transaction.
package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these;
// they survive wrapping in *Error.
var (
	// ErrBookNotFound indicates the requested book does not exist or is soft-deleted.
	ErrBookNotFound = errors.New("book not found")

	// ErrRecordNotFound indicates the requested bibliographic record does not
	// exist or is soft-deleted.
	ErrRecordNotFound = errors.New("bibliographic record not found")

	// ErrRecordLinked indicates the target book already has a live
	// bibliographic record (unique book_id constraint).
	ErrRecordLinked = errors.New("book already has a bibliographic record")

	// ErrRecordAlreadyAssigned indicates a move targeting the book the record
	// is already linked to. Rejected explicitly rather than treated as a no-op.
	ErrRecordAlreadyAssigned = errors.New("record is already assigned to this book")

	// ErrRelinkNotAllowed indicates an ordinary update tried to change a
	// record's book_id. Relinking goes through the move workflow only.
	ErrRelinkNotAllowed = errors.New("reassigning a record to a different book is not permitted")

	// ErrInvalidID indicates a zero or negative surrogate id.
	ErrInvalidID = errors.New("id must be a positive value")

	// ErrPredefinedID indicates a create call with a caller-supplied id.
	// Ids are storage-assigned.
	ErrPredefinedID = errors.New("new entities cannot have a predefined id")

	// ErrPreassignedLink indicates a record create with book_id already set.
	// Linking happens through the catalog workflows.
	ErrPreassignedLink = errors.New("book_id must not be set when creating a record")
)

// Kind discriminates the failure channels of the catalog services.
type Kind int

const (
	// KindValidation marks caller data violating a field or business rule.
	// Always recoverable by correcting input; never leaves partial state.
	KindValidation Kind = iota + 1

	// KindService marks a failed single-entity precondition or storage call.
	KindService

	// KindTransaction marks a multi-step workflow failure after at least one
	// write; always accompanied by a rollback attempt.
	KindTransaction
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindService:
		return "service"
	case KindTransaction:
		return "transaction"
	default:
		return "unknown"
	}
}

// Error is the discriminated failure type returned by catalog operations.
// The wrapped cause (storage error or sentinel) is reachable via errors.Is/As.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// Kind returns the failure channel this error belongs to.
func (e *Error) Kind() Kind { return e.kind }

// NewValidation returns a KindValidation error with the given reason.
func NewValidation(msg string) *Error {
	return &Error{kind: KindValidation, msg: msg}
}

// NewService returns a KindService error wrapping cause (may be nil).
func NewService(msg string, cause error) *Error {
	return &Error{kind: KindService, msg: msg, cause: cause}
}

// NewTransaction returns a KindTransaction error wrapping cause (may be nil).
func NewTransaction(msg string, cause error) *Error {
	return &Error{kind: KindTransaction, msg: msg, cause: cause}
}

// IsValidation reports whether err is, or wraps, a KindValidation failure.
func IsValidation(err error) bool { return is(err, KindValidation) }

// IsService reports whether err is, or wraps, a KindService failure.
func IsService(err error) bool { return is(err, KindService) }

// IsTransaction reports whether err is, or wraps, a KindTransaction failure.
func IsTransaction(err error) bool { return is(err, KindTransaction) }

func is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == k
}
