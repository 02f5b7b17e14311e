// Package feedetails contains the HTTP handlers for tuition fee records.
package feedetails

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aanand-mishra/student-records-api/internal/types"
	"github.com/aanand-mishra/student-records-api/internal/utils/request"
	"github.com/aanand-mishra/student-records-api/internal/utils/response"
)

// Service is the part of the registry these handlers need.
type Service interface {
	CreateFeeDetails(ctx context.Context, in types.FeeDetailsCreate) (types.FeeDetails, error)
	GetFeeDetails(ctx context.Context, id uuid.UUID) (types.FeeDetails, error)
	UpdateFeeDetails(ctx context.Context, id uuid.UUID, u types.FeeDetailsUpdate) (types.FeeDetails, error)
	ListFeeDetails(ctx context.Context, f types.FeeDetailsFilter) ([]types.FeeDetails, error)
}

// Register mounts the fee details routes on r.
func Register(r chi.Router, svc Service) {
	r.Route("/fee_details", func(r chi.Router) {
		r.Post("/", Create(svc))
		r.Get("/", List(svc))
		r.Get("/{id}", Get(svc))
		r.Patch("/{id}", Update(svc))
	})
}

// Create handles POST /fee_details
//
//	{ "university_name": "Columbia University", "number_of_credits": 30, "fee_paid": true }
func Create(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating fee details")

		var in types.FeeDetailsCreate
		if err := request.DecodeJSON(r, &in); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		created, err := svc.CreateFeeDetails(r.Context(), in)
		if err != nil {
			response.HandleError(w, "error creating fee details", err)
			return
		}

		slog.Info("fee details created", slog.String("id", created.ID.String()))
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// List handles GET /fee_details with optional university_name and
// fee_paid (boolean) filters.
func List(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing fee details", slog.String("query", r.URL.RawQuery))

		q := r.URL.Query()
		feePaid, err := request.Bool(q, "fee_paid")
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		f := types.FeeDetailsFilter{
			UniversityName: request.String(q, "university_name"),
			FeePaid:        feePaid,
		}

		list, err := svc.ListFeeDetails(r.Context(), f)
		if err != nil {
			response.HandleError(w, "error listing fee details", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, list)
	}
}

// Get handles GET /fee_details/{id}
func Get(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("getting fee details", slog.String("id", id.String()))

		found, err := svc.GetFeeDetails(r.Context(), id)
		if err != nil {
			response.HandleError(w, "error getting fee details", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, found)
	}
}

// Update handles PATCH /fee_details/{id}
func Update(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("updating fee details", slog.String("id", id.String()))

		var u types.FeeDetailsUpdate
		if err := request.DecodeJSON(r, &u); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		updated, err := svc.UpdateFeeDetails(r.Context(), id, u)
		if err != nil {
			response.HandleError(w, "error updating fee details", err)
			return
		}

		slog.Info("fee details updated", slog.String("id", id.String()))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}
