package state

// DialogState identifies which modal, if any, is open for an entity type.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogEdit
	DialogDeleteConfirm
)

// DialogController tracks the open dialog for one entity type and binds it
// to the draft buffer. At most one dialog is open at a time.
type DialogController[T cloneable[T]] struct {
	state DialogState
	draft *DraftBuffer[T]
}

func NewDialogController[T cloneable[T]](empty func() T) *DialogController[T] {
	return &DialogController[T]{draft: NewDraftBuffer[T](empty)}
}

// OpenForCreate starts a new-record dialog over the empty template.
func (d *DialogController[T]) OpenForCreate() {
	d.draft.Reset()
	d.state = DialogEdit
}

// OpenForEdit starts an edit dialog over a copy of the selected record.
func (d *DialogController[T]) OpenForEdit(rec T) {
	d.draft.LoadFrom(rec)
	d.state = DialogEdit
}

// OpenDeleteConfirm binds the selected record and opens the confirmation
// dialog. The delete path reads the same buffer, so the record is loaded
// rather than reset.
func (d *DialogController[T]) OpenDeleteConfirm(rec T) {
	d.draft.LoadFrom(rec)
	d.state = DialogDeleteConfirm
}

// Close dismisses any open dialog and destroys the draft.
func (d *DialogController[T]) Close() {
	d.draft.Reset()
	d.state = DialogClosed
}

func (d *DialogController[T]) State() DialogState {
	return d.state
}

func (d *DialogController[T]) Draft() *DraftBuffer[T] {
	return d.draft
}
