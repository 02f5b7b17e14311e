// Package person contains the HTTP handlers for the Person resource.
//
// A person owns its addresses: they are embedded copies, created and
// replaced together with the person, and never appear under /addresses.
package person

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
	CreatePerson(ctx context.Context, in types.PersonCreate) (types.Person, error)
	GetPerson(ctx context.Context, id uuid.UUID) (types.Person, error)
	UpdatePerson(ctx context.Context, id uuid.UUID, u types.PersonUpdate) (types.Person, error)
	ListPersons(ctx context.Context, f types.PersonFilter) ([]types.Person, error)
}

// Register mounts the person routes on r.
func Register(r chi.Router, svc Service) {
	r.Route("/persons", func(r chi.Router) {
		r.Post("/", Create(svc))
		r.Get("/", List(svc))
		r.Get("/{id}", Get(svc))
		r.Patch("/{id}", Update(svc))
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Create handles POST /persons
//
//	{ "uni": "dy2530", "first_name": "Dhanvanth Reddy", "last_name": "Yerramreddy",
//	  "email": "dhanvanthyerramreddy09@gmail.com", "phone": "+1-646-408-9482",
//	  "birth_date": "2002-05-09", "addresses": [{ "street": "736 Riverside Dr", ... }] }
//
// ─────────────────────────────────────────────────────────────────────────────
func Create(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a person")

		var in types.PersonCreate
		if err := request.DecodeJSON(r, &in); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		created, err := svc.CreatePerson(r.Context(), in)
		if err != nil {
			response.HandleError(w, "error creating person", err)
			return
		}

		slog.Info("person created", slog.String("id", created.ID.String()))
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// List handles GET /persons
//
// Filters: uni, first_name, last_name, email, phone, birth_date (YYYY-MM-DD),
// city, country. city and country match a person when ANY of the person's
// addresses has that value.
// ─────────────────────────────────────────────────────────────────────────────
func List(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing persons", slog.String("query", r.URL.RawQuery))

		q := r.URL.Query()
		f := types.PersonFilter{
			Uni:       request.String(q, "uni"),
			FirstName: request.String(q, "first_name"),
			LastName:  request.String(q, "last_name"),
			Email:     request.String(q, "email"),
			Phone:     request.String(q, "phone"),
			BirthDate: request.String(q, "birth_date"),
			City:      request.String(q, "city"),
			Country:   request.String(q, "country"),
		}

		list, err := svc.ListPersons(r.Context(), f)
		if err != nil {
			response.HandleError(w, "error listing persons", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, list)
	}
}

// Get handles GET /persons/{id}
func Get(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("getting a person", slog.String("id", id.String()))

		found, err := svc.GetPerson(r.Context(), id)
		if err != nil {
			response.HandleError(w, "error getting person", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, found)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PATCH /persons/{id}
//
// phone and birth_date may be sent as null to clear them. "addresses"
// replaces the whole list; [] or null empties it.
// ─────────────────────────────────────────────────────────────────────────────
func Update(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("updating a person", slog.String("id", id.String()))

		var u types.PersonUpdate
		if err := request.DecodeJSON(r, &u); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		updated, err := svc.UpdatePerson(r.Context(), id, u)
		if err != nil {
			response.HandleError(w, "error updating person", err)
			return
		}

		slog.Info("person updated", slog.String("id", id.String()))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}
