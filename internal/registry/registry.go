// Package registry is the entity management layer: create, get, update and
// list for Address, Person, FeeDetails and VisaStatus.
//
// Every operation follows the same path:
//
//	create: validate payload → assign id + timestamps → insert
//	update: validate payload → (under the collection lock) merge present
//	        fields → re-validate the merged record → refresh updated_at → store
//	get:    look up by id
//	list:   build the filter predicate → scan the collection in order
//
// Failures come back as one of three errors, which callers classify with
// errors.Is:
//
//	validation.ErrValidation     — payload or merged record rejected
//	storage.ErrNotFound          — no record with that id
//	storage.ErrDuplicateIdentity — client-chosen id already in use
package registry

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/aanand-mishra/student-records-api/internal/identity"
	"github.com/aanand-mishra/student-records-api/internal/metrics"
	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/validation"
)

// Entity names used in logs and metric labels.
const (
	EntityAddress    = "address"
	EntityPerson     = "person"
	EntityFeeDetails = "fee_details"
	EntityVisaStatus = "visa_status"
)

const (
	opCreate = "create"
	opGet    = "get"
	opUpdate = "update"
	opList   = "list"
)

// Registry implements the create/get/update/list operations for all four
// entities on top of a storage.Storage.
type Registry struct {
	store    storage.Storage
	ids      *identity.Assigner
	validate *validation.Validator
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithAssigner replaces the default identity assigner (tests inject a
// fake clock through it).
func WithAssigner(a *identity.Assigner) Option {
	return func(r *Registry) { r.ids = a }
}

// WithMetrics records operation outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// New returns a Registry over store.
func New(store storage.Storage, opts ...Option) *Registry {
	r := &Registry{
		store:    store,
		ids:      identity.New(),
		validate: validation.New(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// observe records the outcome of one operation and passes err through.
func (r *Registry) observe(entity, op string, err error) error {
	r.metrics.ObserveOperation(entity, op, outcome(err))
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, storage.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, validation.ErrValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, storage.ErrDuplicateIdentity):
		return metrics.OutcomeDuplicate
	default:
		return metrics.OutcomeError
	}
}
