// Package state holds the per-session UI state for one entity type: the
// list cache mirroring the remote store, the draft buffer being edited, and
// the dialog controller binding the two together.
package state

import (
	"slices"

	"tripadmin/internal/client/models"
)

// cloneable is the record contract the state containers need: identity plus
// a deep copy, so cached entries never share list storage with drafts.
type cloneable[T any] interface {
	models.Record
	Clone() T
}

// ListCache is the authoritative local collection for one entity type. It is
// only ever mutated with server-confirmed records; drafts stay in the
// DraftBuffer until the remote store accepts them.
type ListCache[T cloneable[T]] struct {
	items []T
}

func NewListCache[T cloneable[T]]() *ListCache[T] {
	return &ListCache[T]{}
}

// ReplaceAll swaps the whole collection for a fresh listing.
func (c *ListCache[T]) ReplaceAll(records []T) {
	items := make([]T, 0, len(records))
	for _, r := range records {
		items = append(items, r.Clone())
	}
	c.items = items
}

// Upsert replaces the entry with the same ID in place, or appends when no
// entry matches. Unrelated entries keep their positions.
func (c *ListCache[T]) Upsert(rec T) {
	for i := range c.items {
		if c.items[i].GetID() == rec.GetID() {
			c.items[i] = rec.Clone()
			return
		}
	}
	c.items = append(c.items, rec.Clone())
}

// RemoveByID deletes the entry with the given ID. Removing an absent ID is a
// no-op.
func (c *ListCache[T]) RemoveByID(id string) {
	c.items = slices.DeleteFunc(c.items, func(r T) bool {
		return r.GetID() == id
	})
}

// Get returns a copy of the entry with the given ID.
func (c *ListCache[T]) Get(id string) (T, bool) {
	for i := range c.items {
		if c.items[i].GetID() == id {
			return c.items[i].Clone(), true
		}
	}
	var zero T
	return zero, false
}

// All returns a copy of the collection in display order.
func (c *ListCache[T]) All() []T {
	out := make([]T, 0, len(c.items))
	for _, r := range c.items {
		out = append(out, r.Clone())
	}
	return out
}

func (c *ListCache[T]) Len() int {
	return len(c.items)
}
