package store

import "github.com/Akash8377/futuresoulmate-admin/client"

// Collection is the client's view of one server-owned collection.
// Items keep server response order.
type Collection[T client.Entity] struct {
	Items   []T
	Current *T
	Loading bool
	Err     *client.Error
	Success bool
}

// ErrMessage is the operator-facing error text, or "".
func (c Collection[T]) ErrMessage() string { return c.Err.Display("") }

// Find returns the item with id and its index, or -1.
func (c Collection[T]) Find(id client.ID) (T, int) {
	for i, it := range c.Items {
		if it.EntityID() == id {
			return it, i
		}
	}
	var zero T
	return zero, -1
}

// The helpers below return modified copies; the receiver's Items backing
// array is never written.

func (c Collection[T]) pending(mutation bool) Collection[T] {
	c.Loading = true
	c.Err = nil
	if mutation {
		c.Success = false
	}
	return c
}

func (c Collection[T]) failed(err *client.Error) Collection[T] {
	c.Loading = false
	c.Err = err
	c.Success = false
	return c
}

func (c Collection[T]) replaced(items []T) Collection[T] {
	c.Items = items
	c.Loading = false
	c.Err = nil
	return c
}

func (c Collection[T]) withCurrent(item *T) Collection[T] {
	c.Current = item
	c.Loading = false
	c.Err = nil
	return c
}

func (c Collection[T]) prepended(item T) Collection[T] {
	items := make([]T, 0, len(c.Items)+1)
	items = append(items, item)
	items = append(items, c.Items...)
	c.Items = items
	return c.succeeded()
}

// patched replaces the item sharing item's id in place and refreshes
// Current when it refers to the same id.
func (c Collection[T]) patched(item T) Collection[T] {
	id := item.EntityID()
	if _, idx := c.Find(id); idx >= 0 {
		items := make([]T, len(c.Items))
		copy(items, c.Items)
		items[idx] = item
		c.Items = items
	}
	if c.Current != nil && (*c.Current).EntityID() == id {
		cur := item
		c.Current = &cur
	}
	return c
}

// removed drops the first item with id, matching the entry Find reports.
func (c Collection[T]) removed(id client.ID) Collection[T] {
	if _, idx := c.Find(id); idx >= 0 {
		items := make([]T, 0, len(c.Items)-1)
		items = append(items, c.Items[:idx]...)
		c.Items = append(items, c.Items[idx+1:]...)
	}
	return c.succeeded()
}

func (c Collection[T]) succeeded() Collection[T] {
	c.Loading = false
	c.Err = nil
	c.Success = true
	return c
}
