// Package services orchestrates mutations for one entity type: it runs the
// validation gate, calls the remote store gateway, reconciles the list cache
// with confirmed responses, and raises the user-facing outcome toasts.
package services

import (
	"context"
	"errors"
	"sync/atomic"

	"tripadmin/internal/client/api"
	"tripadmin/internal/client/models"
	"tripadmin/internal/client/notify"
	"tripadmin/internal/client/state"
	"tripadmin/internal/logging"
)

var (
	// ErrBusy is returned when a submit, delete, or fetch is rejected
	// because another call is still outstanding for the same entity type.
	ErrBusy = errors.New("another request is still in progress")

	// ErrNoDeleteConfirm is returned when Delete is called without an open
	// confirmation dialog.
	ErrNoDeleteConfirm = errors.New("no delete confirmation open")
)

type record[T any] interface {
	models.Record
	Clone() T
}

// Messages carries the entity-specific toast texts.
type Messages struct {
	Created      string
	Updated      string
	Deleted      string
	FetchFailed  string
	SaveFailed   string
	DeleteFailed string
	// UnauthorizedPage is shown when a listing fetch is rejected,
	// UnauthorizedAction when a mutation is.
	UnauthorizedPage   string
	UnauthorizedAction string
}

// Coordinator drives the submit/delete/fetch flows for one entity type.
// It moves between idle and submitting: while a gateway call is outstanding
// any further mutation is rejected with ErrBusy, so a double-click cannot
// create duplicates or race an update against a delete.
type Coordinator[T record[T]] struct {
	entity   string
	msgs     Messages
	gw       api.Gateway[T]
	cache    *state.ListCache[T]
	dialog   *state.DialogController[T]
	check    func(T) error
	notifier notify.Notifier
	log      logging.Logger
	inFlight atomic.Bool
}

func NewCoordinator[T record[T]](
	entity string,
	msgs Messages,
	gw api.Gateway[T],
	empty func() T,
	check func(T) error,
	notifier notify.Notifier,
	log logging.Logger,
) *Coordinator[T] {
	return &Coordinator[T]{
		entity:   entity,
		msgs:     msgs,
		gw:       gw,
		cache:    state.NewListCache[T](),
		dialog:   state.NewDialogController[T](empty),
		check:    check,
		notifier: notifier,
		log:      log.With("entity", entity),
	}
}

// Cache exposes the list cache for display. Callers must not treat it as
// writable; only confirmed gateway responses flow into it, via this
// coordinator.
func (c *Coordinator[T]) Cache() *state.ListCache[T] {
	return c.cache
}

// Dialog exposes the dialog controller and, through it, the draft buffer.
func (c *Coordinator[T]) Dialog() *state.DialogController[T] {
	return c.dialog
}

// FetchAll refreshes the cache with a full listing. On failure the cache
// keeps its prior contents so a transient error does not destroy a working
// view.
func (c *Coordinator[T]) FetchAll(ctx context.Context) error {
	if !c.begin() {
		return ErrBusy
	}
	defer c.end()

	records, err := c.gw.List(ctx)
	if err != nil {
		c.log.Error(ctx, "fetch failed", "error", err)
		c.report(err, c.msgs.UnauthorizedPage, c.msgs.FetchFailed)
		return err
	}

	c.cache.ReplaceAll(records)
	c.log.Debug(ctx, "cache refreshed", "count", c.cache.Len())
	return nil
}

// Submit validates the draft and sends it to the remote store: an update
// when the draft already has an identifier, a create otherwise. The
// submitted flag is set even when the gate rejects, so inline field errors
// show up. On success the cache is reconciled, the dialog closes, and one
// success toast is raised; on failure the dialog and draft are preserved
// for retry.
func (c *Coordinator[T]) Submit(ctx context.Context) error {
	draft := c.dialog.Draft()
	draft.MarkSubmitted()

	rec := draft.Value()
	if err := c.check(rec); err != nil {
		// Gate failures surface inline next to the fields, never as a toast.
		return err
	}

	if !c.begin() {
		return ErrBusy
	}
	defer c.end()

	var (
		saved  T
		err    error
		detail string
	)
	if rec.GetID() == "" {
		saved, err = c.gw.Create(ctx, rec)
		detail = c.msgs.Created
	} else {
		saved, err = c.gw.Update(ctx, rec.GetID(), rec)
		detail = c.msgs.Updated
	}
	if err != nil {
		c.log.Error(ctx, "save failed", "error", err)
		c.report(err, c.msgs.UnauthorizedAction, c.msgs.SaveFailed)
		return err
	}

	c.cache.Upsert(saved)
	c.dialog.Close()
	c.notifier.Show(notify.New(notify.SeveritySuccess, "Successful", detail))
	return nil
}

// Delete removes the record bound by the open confirmation dialog. On
// success the entry leaves the cache and the dialog closes; on failure the
// dialog stays open.
func (c *Coordinator[T]) Delete(ctx context.Context) error {
	if c.dialog.State() != state.DialogDeleteConfirm {
		return ErrNoDeleteConfirm
	}

	if !c.begin() {
		return ErrBusy
	}
	defer c.end()

	rec := c.dialog.Draft().Value()
	if err := c.gw.Delete(ctx, rec.GetID()); err != nil {
		c.log.Error(ctx, "delete failed", "id", rec.GetID(), "error", err)
		c.report(err, c.msgs.UnauthorizedAction, c.msgs.DeleteFailed)
		return err
	}

	c.cache.RemoveByID(rec.GetID())
	c.dialog.Close()
	c.notifier.Show(notify.New(notify.SeveritySuccess, "Successful", c.msgs.Deleted))
	return nil
}

func (c *Coordinator[T]) begin() bool {
	return c.inFlight.CompareAndSwap(false, true)
}

func (c *Coordinator[T]) end() {
	c.inFlight.Store(false)
}

// report raises exactly one error toast, splitting the authorization case
// from everything else.
func (c *Coordinator[T]) report(err error, unauthorizedDetail, genericDetail string) {
	if errors.Is(err, api.ErrUnauthorized) {
		c.notifier.Show(notify.New(notify.SeverityError, "Unauthorized", unauthorizedDetail))
		return
	}
	c.notifier.Show(notify.New(notify.SeverityError, "Error", genericDetail))
}
