package registry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aanand-mishra/student-records-api/internal/filter"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// CreateAddress stores a new address. The payload may carry its own id;
// reusing an id that is already stored fails with ErrDuplicateIdentity.
func (r *Registry) CreateAddress(ctx context.Context, in types.AddressCreate) (types.Address, error) {
	if err := r.validate.Struct(in); err != nil {
		return types.Address{}, r.observe(EntityAddress, opCreate, err)
	}

	meta := r.ids.Stamp()
	if in.ID != nil {
		meta = r.ids.StampWithID(*in.ID)
	}
	rec := types.Address{Metadata: meta, AddressFields: in.AddressFields}

	if err := r.store.Addresses().Insert(ctx, rec); err != nil {
		return types.Address{}, r.observe(EntityAddress, opCreate, err)
	}

	r.metrics.IncrementRecords(EntityAddress)
	r.log.Debug("address created", slog.String("id", rec.ID.String()))
	return rec, r.observe(EntityAddress, opCreate, nil)
}

// GetAddress returns the address stored under id.
func (r *Registry) GetAddress(ctx context.Context, id uuid.UUID) (types.Address, error) {
	rec, err := r.store.Addresses().Get(ctx, id)
	return rec, r.observe(EntityAddress, opGet, err)
}

// UpdateAddress applies the fields present in u to the stored address.
func (r *Registry) UpdateAddress(ctx context.Context, id uuid.UUID, u types.AddressUpdate) (types.Address, error) {
	if err := r.validate.Struct(u); err != nil {
		return types.Address{}, r.observe(EntityAddress, opUpdate, err)
	}

	rec, err := r.store.Addresses().Update(ctx, id, func(cur types.Address) (types.Address, error) {
		next, err := mergeAddress(cur, u)
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
		return types.Address{}, r.observe(EntityAddress, opUpdate, err)
	}

	r.log.Debug("address updated", slog.String("id", id.String()))
	return rec, r.observe(EntityAddress, opUpdate, nil)
}

// ListAddresses returns the addresses matching every supplied filter.
func (r *Registry) ListAddresses(ctx context.Context, f types.AddressFilter) ([]types.Address, error) {
	recs, err := r.store.Addresses().List(ctx, filter.Addresses(f))
	return recs, r.observe(EntityAddress, opList, err)
}
