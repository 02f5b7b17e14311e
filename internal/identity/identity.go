// Package identity assigns identifiers and timestamps to records.
//
// On create a record gets a random (version 4) UUID and
// created_at = updated_at = now, in UTC. On update only updated_at moves.
// Collisions between random UUIDs are negligible, so the store is never
// re-checked for uniqueness here.
package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/aanand-mishra/student-records-api/internal/types"
)

// Clock returns the current time. Tests replace it with a fake.
type Clock func() time.Time

// Assigner hands out identities and timestamps.
type Assigner struct {
	now   Clock
	newID func() uuid.UUID
}

// Option configures an Assigner.
type Option func(*Assigner)

// WithClock replaces time.Now.
func WithClock(c Clock) Option {
	return func(a *Assigner) { a.now = c }
}

// WithIDGenerator replaces uuid.New.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(a *Assigner) { a.newID = gen }
}

// New returns an Assigner backed by the wall clock and uuid.New.
func New(opts ...Option) *Assigner {
	a := &Assigner{now: time.Now, newID: uuid.New}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewID returns a fresh identifier.
func (a *Assigner) NewID() uuid.UUID {
	return a.newID()
}

// Now returns the current time in UTC. UTC() also drops the monotonic
// reading, so stored times compare equal after a JSON round trip.
func (a *Assigner) Now() time.Time {
	return a.now().UTC()
}

// Stamp returns metadata for a new record with a generated identifier.
func (a *Assigner) Stamp() types.Metadata {
	return a.StampWithID(a.NewID())
}

// StampWithID returns metadata for a new record that keeps the given id.
func (a *Assigner) StampWithID(id uuid.UUID) types.Metadata {
	now := a.Now()
	return types.Metadata{ID: id, CreatedAt: now, UpdatedAt: now}
}

// Touch refreshes updated_at. It runs on every update, even one that
// changed nothing. updated_at never moves backwards, which also keeps it
// at or after created_at when the wall clock steps back.
func (a *Assigner) Touch(m types.Metadata) types.Metadata {
	now := a.Now()
	if now.Before(m.UpdatedAt) {
		now = m.UpdatedAt
	}
	m.UpdatedAt = now
	return m
}
