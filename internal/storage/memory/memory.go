// Package memory provides the in-memory implementation of the
// storage.Storage interface. All state lives in process memory and is
// discarded on restart.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/aanand-mishra/student-records-api/internal/filter"
	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// Collection is an insertion-ordered map guarded by its own RWMutex.
// Readers share the lock; Insert and Update take it exclusively.
type Collection[R storage.Record] struct {
	name  string
	mu    sync.RWMutex
	order []uuid.UUID
	items map[uuid.UUID]R
}

// NewCollection returns an empty collection. name only appears in errors.
func NewCollection[R storage.Record](name string) *Collection[R] {
	return &Collection[R]{
		name:  name,
		items: make(map[uuid.UUID]R),
	}
}

// Insert implements storage.Collection.
func (c *Collection[R]) Insert(_ context.Context, rec R) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := rec.Key()
	if _, exists := c.items[id]; exists {
		return errors.Wrapf(storage.ErrDuplicateIdentity, "%s %s already exists", c.name, id)
	}
	c.items[id] = clone(rec)
	c.order = append(c.order, id)
	return nil
}

// Get implements storage.Collection.
func (c *Collection[R]) Get(_ context.Context, id uuid.UUID) (R, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.items[id]
	if !ok {
		var zero R
		return zero, errors.Wrapf(storage.ErrNotFound, "%s %s not found", c.name, id)
	}
	return clone(rec), nil
}

// Update implements storage.Collection.
func (c *Collection[R]) Update(_ context.Context, id uuid.UUID, mutate storage.MutateFunc[R]) (R, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero R
	current, ok := c.items[id]
	if !ok {
		return zero, errors.Wrapf(storage.ErrNotFound, "%s %s not found", c.name, id)
	}

	next, err := mutate(clone(current))
	if err != nil {
		return zero, err
	}
	if next.Key() != id {
		return zero, errors.Errorf("%s %s: update must not change the identifier", c.name, id)
	}

	c.items[id] = clone(next)
	return next, nil
}

// List implements storage.Collection.
func (c *Collection[R]) List(_ context.Context, match func(R) bool) ([]R, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ordered := make([]R, 0, len(c.order))
	for _, id := range c.order {
		ordered = append(ordered, c.items[id])
	}

	out := filter.Apply(ordered, match)
	for i := range out {
		out[i] = clone(out[i])
	}
	return out, nil
}

// clone deep-copies records that hold reference types (Person's address
// slice); plain value records are returned as is.
func clone[R any](rec R) R {
	if c, ok := any(rec).(interface{ Clone() R }); ok {
		return c.Clone()
	}
	return rec
}

// Memory holds the four entity collections.
type Memory struct {
	addresses    *Collection[types.Address]
	persons      *Collection[types.Person]
	feeDetails   *Collection[types.FeeDetails]
	visaStatuses *Collection[types.VisaStatus]
}

// New returns an empty in-memory storage.
func New() *Memory {
	return &Memory{
		addresses:    NewCollection[types.Address]("address"),
		persons:      NewCollection[types.Person]("person"),
		feeDetails:   NewCollection[types.FeeDetails]("fee details"),
		visaStatuses: NewCollection[types.VisaStatus]("visa status"),
	}
}

func (m *Memory) Addresses() storage.Collection[types.Address]       { return m.addresses }
func (m *Memory) Persons() storage.Collection[types.Person]          { return m.persons }
func (m *Memory) FeeDetails() storage.Collection[types.FeeDetails]   { return m.feeDetails }
func (m *Memory) VisaStatuses() storage.Collection[types.VisaStatus] { return m.visaStatuses }

// Close is a no-op; there is nothing to release.
func (m *Memory) Close() error { return nil }

var _ storage.Storage = (*Memory)(nil)
