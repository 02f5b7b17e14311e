package registry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aanand-mishra/student-records-api/internal/filter"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// CreateVisaStatus stores a new visa record with a server-generated id.
func (r *Registry) CreateVisaStatus(ctx context.Context, in types.VisaStatusCreate) (types.VisaStatus, error) {
	if err := r.validate.Struct(in); err != nil {
		return types.VisaStatus{}, r.observe(EntityVisaStatus, opCreate, err)
	}

	rec := types.VisaStatus{Metadata: r.ids.Stamp(), VisaStatus: in.VisaStatus}

	if err := r.store.VisaStatuses().Insert(ctx, rec); err != nil {
		return types.VisaStatus{}, r.observe(EntityVisaStatus, opCreate, err)
	}

	r.metrics.IncrementRecords(EntityVisaStatus)
	r.log.Debug("visa status created", slog.String("id", rec.ID.String()))
	return rec, r.observe(EntityVisaStatus, opCreate, nil)
}

// GetVisaStatus returns the visa record stored under id.
func (r *Registry) GetVisaStatus(ctx context.Context, id uuid.UUID) (types.VisaStatus, error) {
	rec, err := r.store.VisaStatuses().Get(ctx, id)
	return rec, r.observe(EntityVisaStatus, opGet, err)
}

// UpdateVisaStatus applies the fields present in u to the stored record.
func (r *Registry) UpdateVisaStatus(ctx context.Context, id uuid.UUID, u types.VisaStatusUpdate) (types.VisaStatus, error) {
	if err := r.validate.Struct(u); err != nil {
		return types.VisaStatus{}, r.observe(EntityVisaStatus, opUpdate, err)
	}

	rec, err := r.store.VisaStatuses().Update(ctx, id, func(cur types.VisaStatus) (types.VisaStatus, error) {
		next, err := mergeVisaStatus(cur, u)
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
		return types.VisaStatus{}, r.observe(EntityVisaStatus, opUpdate, err)
	}

	r.log.Debug("visa status updated", slog.String("id", id.String()))
	return rec, r.observe(EntityVisaStatus, opUpdate, nil)
}

// ListVisaStatuses returns the visa records matching every supplied filter.
func (r *Registry) ListVisaStatuses(ctx context.Context, f types.VisaStatusFilter) ([]types.VisaStatus, error) {
	recs, err := r.store.VisaStatuses().List(ctx, filter.VisaStatuses(f))
	return recs, r.observe(EntityVisaStatus, opList, err)
}
