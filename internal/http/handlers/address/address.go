// Package address contains the HTTP handlers for the standalone Address
// resource.
//
// Handlers follow the factory pattern: each exported function receives
// its dependencies once at startup and returns the http.HandlerFunc that
// serves every request.
//
//	r.Post("/addresses", address.Create(reg))
package address

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
	CreateAddress(ctx context.Context, in types.AddressCreate) (types.Address, error)
	GetAddress(ctx context.Context, id uuid.UUID) (types.Address, error)
	UpdateAddress(ctx context.Context, id uuid.UUID, u types.AddressUpdate) (types.Address, error)
	ListAddresses(ctx context.Context, f types.AddressFilter) ([]types.Address, error)
}

// Register mounts the address routes on r.
func Register(r chi.Router, svc Service) {
	r.Route("/addresses", func(r chi.Router) {
		r.Post("/", Create(svc))
		r.Get("/", List(svc))
		r.Get("/{id}", Get(svc))
		r.Patch("/{id}", Update(svc))
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Create handles POST /addresses
//
// Request body (JSON), "id" optional:
//
//	{ "street": "736 Riverside Dr", "city": "New York", "state": "NY",
//	  "postal_code": "10031", "country": "USA" }
//
// Success response (201 Created): the stored address with id, created_at
// and updated_at.
//
// Error responses:
//
//	400 Bad Request  — empty or malformed body, failed validation, id in use
//	500 Internal     — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func Create(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating an address")

		var in types.AddressCreate
		if err := request.DecodeJSON(r, &in); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		created, err := svc.CreateAddress(r.Context(), in)
		if err != nil {
			response.HandleError(w, "error creating address", err)
			return
		}

		slog.Info("address created", slog.String("id", created.ID.String()))
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// List handles GET /addresses
//
// Optional query filters, all exact match and ANDed together:
// street, city, state, postal_code, country.
//
// Returns [] (not null) when nothing matches.
// ─────────────────────────────────────────────────────────────────────────────
func List(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing addresses", slog.String("query", r.URL.RawQuery))

		q := r.URL.Query()
		f := types.AddressFilter{
			Street:     request.String(q, "street"),
			City:       request.String(q, "city"),
			State:      request.String(q, "state"),
			PostalCode: request.String(q, "postal_code"),
			Country:    request.String(q, "country"),
		}

		list, err := svc.ListAddresses(r.Context(), f)
		if err != nil {
			response.HandleError(w, "error listing addresses", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, list)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Get handles GET /addresses/{id}
//
// Error responses:
//
//	400 Bad Request  — id is not a UUID
//	404 Not Found    — no address with that id
//
// ─────────────────────────────────────────────────────────────────────────────
func Get(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("getting an address", slog.String("id", id.String()))

		found, err := svc.GetAddress(r.Context(), id)
		if err != nil {
			response.HandleError(w, "error getting address", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, found)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PATCH /addresses/{id}
//
// Only the fields present in the body change; the rest are kept.
//
//	{ "city": "Brooklyn" }
//
// Error responses:
//
//	400 Bad Request  — bad id, empty or malformed body, failed validation
//	404 Not Found    — no address with that id
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("updating an address", slog.String("id", id.String()))

		var u types.AddressUpdate
		if err := request.DecodeJSON(r, &u); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		updated, err := svc.UpdateAddress(r.Context(), id, u)
		if err != nil {
			response.HandleError(w, "error updating address", err)
			return
		}

		slog.Info("address updated", slog.String("id", id.String()))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}
