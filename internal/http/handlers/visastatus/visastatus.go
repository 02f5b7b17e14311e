// Package visastatus contains the HTTP handlers for visa records.
package visastatus

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

type Service interface {
	CreateVisaStatus(ctx context.Context, in types.VisaStatusCreate) (types.VisaStatus, error)
	GetVisaStatus(ctx context.Context, id uuid.UUID) (types.VisaStatus, error)
	UpdateVisaStatus(ctx context.Context, id uuid.UUID, u types.VisaStatusUpdate) (types.VisaStatus, error)
	ListVisaStatuses(ctx context.Context, f types.VisaStatusFilter) ([]types.VisaStatus, error)
}

// Register mounts the visa status routes on r.
func Register(r chi.Router, svc Service) {
	r.Route("/visa_status", func(r chi.Router) {
		r.Post("/", Create(svc))
		r.Get("/", List(svc))
		r.Get("/{id}", Get(svc))
		r.Patch("/{id}", Update(svc))
	})
}

func Create(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a visa status")

		var in types.VisaStatusCreate
		if err := request.DecodeJSON(r, &in); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		created, err := svc.CreateVisaStatus(r.Context(), in)
		if err != nil {
			response.HandleError(w, "error creating visa status", err)
			return
		}

		slog.Info("visa status created", slog.String("id", created.ID.String()))
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

func List(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing visa statuses", slog.String("query", r.URL.RawQuery))

		f := types.VisaStatusFilter{VisaStatus: request.String(r.URL.Query(), "visa_status")}

		list, err := svc.ListVisaStatuses(r.Context(), f)
		if err != nil {
			response.HandleError(w, "error listing visa statuses", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, list)
	}
}

func Get(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("getting a visa status", slog.String("id", id.String()))

		found, err := svc.GetVisaStatus(r.Context(), id)
		if err != nil {
			response.HandleError(w, "error getting visa status", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, found)
	}
}

func Update(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("updating a visa status", slog.String("id", id.String()))

		var u types.VisaStatusUpdate
		if err := request.DecodeJSON(r, &u); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		updated, err := svc.UpdateVisaStatus(r.Context(), id, u)
		if err != nil {
			response.HandleError(w, "error updating visa status", err)
			return
		}

		slog.Info("visa status updated", slog.String("id", id.String()))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}
