// Package storage defines the contracts every storage backend must
// satisfy to hold the four entity collections.
//
// WHY AN INTERFACE?
// ─────────────────
// The registry (and the HTTP layer above it) should not know or care where
// records live. Two backends ship with the service:
//
//   - memory: ordered maps guarded by a sync.RWMutex (the default)
//   - sqlite: one table per entity in an SQLite database; with the
//     default ":memory:" path nothing outlives the process either
//
// Switching backends is a config change; nothing above this package moves.
package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/aanand-mishra/student-records-api/internal/types"
)

// Sentinel errors. Backends return these (optionally wrapped) so callers
// can classify failures with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateIdentity = errors.New("duplicate identity")
)

// Record is anything keyed by a UUID. Every Read shape satisfies it
// through the embedded types.Metadata.
type Record interface {
	Key() uuid.UUID
}

// MutateFunc receives the stored record and returns its replacement.
// Returning an error aborts the update and leaves the record untouched.
type MutateFunc[R Record] func(current R) (R, error)

// Collection is one keyed collection of records.
//
// Every method is atomic with respect to the collection: readers never
// see a half-applied Insert or Update, and mutations are serialized.
// List returns records in insertion order; updates keep a record's place.
type Collection[R Record] interface {
	// Insert adds rec. It fails with ErrDuplicateIdentity when rec.Key()
	// is already present; nothing is overwritten.
	Insert(ctx context.Context, rec R) error

	// Get returns the record stored under id, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (R, error)

	// Update runs mutate on the stored record while holding the
	// collection's write lock and stores the result. It returns
	// ErrNotFound when id is absent, or whatever mutate returned.
	Update(ctx context.Context, id uuid.UUID, mutate MutateFunc[R]) (R, error)

	// List returns every record for which match returns true.
	// A nil match returns the whole collection. The result is never nil.
	List(ctx context.Context, match func(R) bool) ([]R, error)
}

// Storage bundles one independent collection per entity type.
type Storage interface {
	Addresses() Collection[types.Address]
	Persons() Collection[types.Person]
	FeeDetails() Collection[types.FeeDetails]
	VisaStatuses() Collection[types.VisaStatus]

	// Close releases backend resources. The memory backend has none.
	Close() error
}
