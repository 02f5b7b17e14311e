package registry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aanand-mishra/student-records-api/internal/filter"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// CreatePerson stores a new person with a server-generated id. Embedded
// addresses are copied into the person; the Address collection is not
// touched.
func (r *Registry) CreatePerson(ctx context.Context, in types.PersonCreate) (types.Person, error) {
	if err := r.validate.Struct(in); err != nil {
		return types.Person{}, r.observe(EntityPerson, opCreate, err)
	}

	rec := types.Person{
		Metadata:  r.ids.Stamp(),
		Uni:       in.Uni,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		BirthDate: in.BirthDate,
		Addresses: embedAddresses(in.Addresses, r.ids),
	}

	if err := r.store.Persons().Insert(ctx, rec); err != nil {
		return types.Person{}, r.observe(EntityPerson, opCreate, err)
	}

	r.metrics.IncrementRecords(EntityPerson)
	r.log.Debug("person created",
		slog.String("id", rec.ID.String()),
		slog.Int("addresses", len(rec.Addresses)))
	return rec, r.observe(EntityPerson, opCreate, nil)
}

// GetPerson returns the person stored under id.
func (r *Registry) GetPerson(ctx context.Context, id uuid.UUID) (types.Person, error) {
	rec, err := r.store.Persons().Get(ctx, id)
	return rec, r.observe(EntityPerson, opGet, err)
}

// UpdatePerson applies the fields present in u to the stored person.
func (r *Registry) UpdatePerson(ctx context.Context, id uuid.UUID, u types.PersonUpdate) (types.Person, error) {
	if err := r.validate.Struct(u); err != nil {
		return types.Person{}, r.observe(EntityPerson, opUpdate, err)
	}

	rec, err := r.store.Persons().Update(ctx, id, func(cur types.Person) (types.Person, error) {
		next, err := mergePerson(cur, u, r.ids)
		if err != nil {
			return cur, err
		}
		if err := r.validate.Struct(next); err != nil {
			return cur, err
		}
		next.Metadata = r.ids.Touch(cur.Metadata)
		return next, nil
	})
	if err != nil {
		return types.Person{}, r.observe(EntityPerson, opUpdate, err)
	}

	r.log.Debug("person updated", slog.String("id", id.String()))
	return rec, r.observe(EntityPerson, opUpdate, nil)
}

// ListPersons returns the persons matching every supplied filter.
func (r *Registry) ListPersons(ctx context.Context, f types.PersonFilter) ([]types.Person, error) {
	recs, err := r.store.Persons().List(ctx, filter.Persons(f))
	return recs, r.observe(EntityPerson, opList, err)
}
