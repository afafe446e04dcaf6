// Package pages holds the console's page controllers. A controller
// dispatches the fetches its page needs, keeps the operator's local view
// state (search term, category filter, open form) and derives the visible
// rows from the store on demand.
package pages

import "strings"

// Predicate selects items for a view.
type Predicate[T any] func(T) bool

// Matching keeps items where any field contains term, ignoring case. A
// blank term matches everything.
func Matching[T any](term string, fields ...func(T) string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return func(T) bool { return true }
	}
	return func(item T) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(item)), term) {
				return true
			}
		}
		return false
	}
}

// Equal keeps items whose field equals want, ignoring case. A blank want
// matches everything.
func Equal[T any](want string, field func(T) string) Predicate[T] {
	want = strings.TrimSpace(want)
	if want == "" {
		return func(T) bool { return true }
	}
	return func(item T) bool { return strings.EqualFold(field(item), want) }
}

// All is the conjunction of ps.
func All[T any](ps ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range ps {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// Apply returns the items p keeps, in order, as a new slice. items is not
// modified.
func Apply[T any](items []T, p Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if p(it) {
			out = append(out, it)
		}
	}
	return out
}
