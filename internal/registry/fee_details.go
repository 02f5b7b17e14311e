package registry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aanand-mishra/student-records-api/internal/filter"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// CreateFeeDetails stores a new fee record with a server-generated id.
func (r *Registry) CreateFeeDetails(ctx context.Context, in types.FeeDetailsCreate) (types.FeeDetails, error) {
	if err := r.validate.Struct(in); err != nil {
		return types.FeeDetails{}, r.observe(EntityFeeDetails, opCreate, err)
	}

	rec := types.FeeDetails{
		Metadata:        r.ids.Stamp(),
		UniversityName:  in.UniversityName,
		NumberOfCredits: *in.NumberOfCredits,
		FeePaid:         *in.FeePaid,
	}

	if err := r.store.FeeDetails().Insert(ctx, rec); err != nil {
		return types.FeeDetails{}, r.observe(EntityFeeDetails, opCreate, err)
	}

	r.metrics.IncrementRecords(EntityFeeDetails)
	r.log.Debug("fee details created", slog.String("id", rec.ID.String()))
	return rec, r.observe(EntityFeeDetails, opCreate, nil)
}

// GetFeeDetails returns the fee record stored under id.
func (r *Registry) GetFeeDetails(ctx context.Context, id uuid.UUID) (types.FeeDetails, error) {
	rec, err := r.store.FeeDetails().Get(ctx, id)
	return rec, r.observe(EntityFeeDetails, opGet, err)
}

// UpdateFeeDetails applies the fields present in u to the stored record.
func (r *Registry) UpdateFeeDetails(ctx context.Context, id uuid.UUID, u types.FeeDetailsUpdate) (types.FeeDetails, error) {
	if err := r.validate.Struct(u); err != nil {
		return types.FeeDetails{}, r.observe(EntityFeeDetails, opUpdate, err)
	}

	rec, err := r.store.FeeDetails().Update(ctx, id, func(cur types.FeeDetails) (types.FeeDetails, error) {
		next, err := mergeFeeDetails(cur, u)
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
		return types.FeeDetails{}, r.observe(EntityFeeDetails, opUpdate, err)
	}

	r.log.Debug("fee details updated", slog.String("id", id.String()))
	return rec, r.observe(EntityFeeDetails, opUpdate, nil)
}

// ListFeeDetails returns the fee records matching every supplied filter.
func (r *Registry) ListFeeDetails(ctx context.Context, f types.FeeDetailsFilter) ([]types.FeeDetails, error) {
	recs, err := r.store.FeeDetails().List(ctx, filter.FeeDetails(f))
	return recs, r.observe(EntityFeeDetails, opList, err)
}
