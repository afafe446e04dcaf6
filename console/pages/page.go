package pages

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

// Store is the part of *store.Store a controller drives.
type Store interface {
	Dispatch(cmd store.Command) *store.Ticket
	State() store.State
}

// Source is a Store that can be observed.
type Source interface {
	State() store.State
	Subscribe(fn func(store.State)) (unsubscribe func())
}

// Watch calls fn with derive(state) now and after every store change until
// stop is called. It only sees store changes; pages with local filters have
// their own Watch that also fires when a filter is set.
func Watch[V any](src Source, derive func(store.State) V, fn func(V)) (stop func()) {
	fn(derive(src.State()))
	return src.Subscribe(func(st store.State) { fn(derive(st)) })
}

// watchers are the callbacks to run when a page's local filters change.
// The zero value is ready to use.
type watchers struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

func (w *watchers) add(fn func()) (remove func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fns == nil {
		w.fns = map[int]func(){}
	}
	id := w.next
	w.next++
	w.fns[id] = fn
	return func() {
		w.mu.Lock()
		delete(w.fns, id)
		w.mu.Unlock()
	}
}

// notify runs the callbacks outside the lock so they may read the page.
func (w *watchers) notify() {
	w.mu.Lock()
	fns := make([]func(), 0, len(w.fns))
	for _, fn := range w.fns {
		fns = append(fns, fn)
	}
	w.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// watchFiltered runs fn on store changes and whenever w is notified.
func watchFiltered[V any](src Source, w *watchers, derive func(store.State) V, fn func(V)) (stop func()) {
	remove := w.add(func() { fn(derive(src.State())) })
	unsubscribe := Watch(src, derive, fn)
	return func() {
		remove()
		unsubscribe()
	}
}

// ErrNothingToDelete is returned by ConfirmDelete without a pending request.
var ErrNothingToDelete = errors.New("pages: no delete pending")

// Form is the create/edit dialog state of a CRUD page.
type Form[P any] struct {
	Open bool `json:"open"`
	// EditingID is empty when the form creates a new entity.
	EditingID client.ID `json:"editing_id,omitempty"`
	Initial   P         `json:"initial"`
}

// Editing reports whether the form updates an existing entity.
func (f Form[P]) Editing() bool { return f.EditingID != "" }

// crud is the form and delete-confirmation flow shared by the plans,
// services and subscriptions pages.
type crud[T client.Entity, P any] struct {
	st          Store
	res         *store.Resource[T, P]
	payloadFrom func(T) P

	mu       sync.Mutex
	form     Form[P]
	deleting *T
}

func (c *crud[T, P]) collection() store.Collection[T] { return c.res.Of(c.st.State()) }

// OpenCreate shows an empty form.
func (c *crud[T, P]) OpenCreate() {
	c.st.Dispatch(c.res.SetCurrent(nil))
	c.mu.Lock()
	c.form = Form[P]{Open: true}
	c.mu.Unlock()
}

// OpenEdit shows the form prefilled from the entity with id.
func (c *crud[T, P]) OpenEdit(id client.ID) error {
	item, idx := c.collection().Find(id)
	if idx < 0 {
		return fmt.Errorf("%s %s not found", c.res.Name(), id)
	}
	c.st.Dispatch(c.res.SetCurrent(&item))
	c.mu.Lock()
	c.form = Form[P]{Open: true, EditingID: id, Initial: c.payloadFrom(item)}
	c.mu.Unlock()
	return nil
}

// CloseForm hides the form and clears the selection.
func (c *crud[T, P]) CloseForm() {
	c.mu.Lock()
	c.form = Form[P]{}
	c.mu.Unlock()
	c.st.Dispatch(c.res.SetCurrent(nil))
}

// Form returns the dialog state.
func (c *crud[T, P]) Form() Form[P] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Submit creates or updates from p and waits for the outcome. The form
// closes on success and stays open with the error otherwise.
func (c *crud[T, P]) Submit(ctx context.Context, p P) error {
	c.mu.Lock()
	editing := c.form.EditingID
	c.mu.Unlock()

	cmd := c.res.Create(p)
	if editing != "" {
		cmd = c.res.Update(editing, p)
	}
	if err := c.st.Dispatch(cmd).Wait(ctx); err != nil {
		return err
	}
	c.CloseForm()
	return nil
}

// RequestDelete asks for confirmation before deleting id.
func (c *crud[T, P]) RequestDelete(id client.ID) error {
	item, idx := c.collection().Find(id)
	if idx < 0 {
		return fmt.Errorf("%s %s not found", c.res.Name(), id)
	}
	c.mu.Lock()
	c.deleting = &item
	c.mu.Unlock()
	return nil
}

// PendingDelete is the entity awaiting confirmation, or nil.
func (c *crud[T, P]) PendingDelete() *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleting
}

// CancelDelete drops the pending request.
func (c *crud[T, P]) CancelDelete() {
	c.mu.Lock()
	c.deleting = nil
	c.mu.Unlock()
}

// ConfirmDelete deletes the pending entity and waits for the outcome. The
// confirmation closes either way.
func (c *crud[T, P]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	target := c.deleting
	c.deleting = nil
	c.mu.Unlock()
	if target == nil {
		return ErrNothingToDelete
	}
	return c.st.Dispatch(c.res.Delete((*target).EntityID())).Wait(ctx)
}

// ClearError dismisses the page's error banner.
func (c *crud[T, P]) ClearError() { c.st.Dispatch(c.res.ClearError()) }

// toggle flips an entity between active and inactive.
func toggle[T client.Entity, P any](st Store, res *store.Resource[T, P], id client.ID, status func(T) string) (*store.Ticket, error) {
	item, idx := res.Of(st.State()).Find(id)
	if idx < 0 {
		return nil, fmt.Errorf("%s %s not found", res.Name(), id)
	}
	return st.Dispatch(res.UpdateStatus(id, client.ToggleStatus(status(item)))), nil
}

// Tickets waits on several independent dispatches.
type Tickets []*store.Ticket

// Wait blocks until every ticket settles and joins their failures.
func (ts Tickets) Wait(ctx context.Context) error {
	var errs []error
	for _, t := range ts {
		if err := t.Wait(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
