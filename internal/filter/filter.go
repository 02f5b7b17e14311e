// Package filter answers list queries. A query is a set of optional
// filters; each supplied filter becomes a Predicate and a record is kept
// only when every predicate holds (logical AND). Filters that were not
// supplied add no predicate, so an empty query matches everything.
package filter

import "github.com/samber/lo"

// Predicate reports whether a record matches.
type Predicate[R any] func(R) bool

// All combines predicates with AND. Nil predicates are skipped; with no
// predicates left the result matches every record.
func All[R any](preds ...Predicate[R]) Predicate[R] {
	active := make([]Predicate[R], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	return func(r R) bool {
		for _, p := range active {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Equal matches when field(r) == *want. A nil want yields a nil predicate.
func Equal[R any, V comparable](want *V, field func(R) V) Predicate[R] {
	if want == nil {
		return nil
	}
	w := *want
	return func(r R) bool { return field(r) == w }
}

// EqualOptional is Equal for optional fields: a record whose field is
// unset never matches.
func EqualOptional[R any, V comparable](want *V, field func(R) *V) Predicate[R] {
	if want == nil {
		return nil
	}
	w := *want
	return func(r R) bool {
		v := field(r)
		return v != nil && *v == w
	}
}

// Any matches when at least one element of elems(r) has field(e) == *want.
// A record with no elements never matches.
func Any[R, E any, V comparable](want *V, elems func(R) []E, field func(E) V) Predicate[R] {
	if want == nil {
		return nil
	}
	w := *want
	return func(r R) bool {
		return lo.SomeBy(elems(r), func(e E) bool { return field(e) == w })
	}
}

// Apply returns the records that match p, in their original order.
// The result is never nil.
func Apply[R any](records []R, p Predicate[R]) []R {
	if p == nil {
		return append(make([]R, 0, len(records)), records...)
	}
	return lo.Filter(records, func(r R, _ int) bool { return p(r) })
}
