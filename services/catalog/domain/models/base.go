// Package models holds the entities of the catalog bounded context.
package models

// Base carries the fields shared by every catalog entity: the storage-assigned
// surrogate id and the logical-deletion flag. An ID of 0 means the entity has
// not been persisted yet; storage populates it on insert. Deleted is monotonic
// false→true — there is no undelete.
type Base struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// HasID reports whether storage has assigned this entity an id.
func (b Base) HasID() bool { return b.ID > 0 }
