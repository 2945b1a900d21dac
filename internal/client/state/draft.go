package state

// DraftBuffer holds the single record being created or edited, before the
// remote store has confirmed it. The buffer always owns its value: loading
// from a cached record takes a deep copy, so edits never leak into the cache.
type DraftBuffer[T cloneable[T]] struct {
	value     T
	empty     func() T
	submitted bool
}

func NewDraftBuffer[T cloneable[T]](empty func() T) *DraftBuffer[T] {
	return &DraftBuffer[T]{value: empty(), empty: empty}
}

// Reset restores the empty template and clears the submitted flag.
func (b *DraftBuffer[T]) Reset() {
	b.value = b.empty()
	b.submitted = false
}

// LoadFrom replaces the draft with an independent copy of rec and clears the
// submitted flag.
func (b *DraftBuffer[T]) LoadFrom(rec T) {
	b.value = rec.Clone()
	b.submitted = false
}

// Mutate applies fn to the draft value. This is the only way user input
// reaches the record.
func (b *DraftBuffer[T]) Mutate(fn func(*T)) {
	fn(&b.value)
}

// Value returns the current draft record.
func (b *DraftBuffer[T]) Value() T {
	return b.value.Clone()
}

// MarkSubmitted records that a submit was attempted, which switches on
// inline field error display.
func (b *DraftBuffer[T]) MarkSubmitted() {
	b.submitted = true
}

// Submitted reports whether a submit has been attempted in this dialog
// session.
func (b *DraftBuffer[T]) Submitted() bool {
	return b.submitted
}
