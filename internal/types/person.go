package types

import (
	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/aanand-mishra/student-records-api/internal/patch"
)

// PersonAddress is an address owned by a Person.
//
// It is a copy, not a reference: it keeps its own identifier but has no
// link back to the standalone Address collection. Changing one never
// changes the other.
type PersonAddress struct {
	ID uuid.UUID `json:"id"`
	AddressFields
}

// PersonCreate is the payload for POST /persons.
//
// Embedded addresses use the AddressCreate shape, so each may carry a
// client-chosen id; addresses without one get a fresh id on the way in.
type PersonCreate struct {
	Uni       string          `json:"uni"        validate:"required,uni"`
	FirstName string          `json:"first_name" validate:"required"`
	LastName  string          `json:"last_name"  validate:"required"`
	Email     string          `json:"email"      validate:"required,email"`
	Phone     *string         `json:"phone,omitempty"`
	BirthDate *civil.Date     `json:"birth_date,omitempty"`
	Addresses []AddressCreate `json:"addresses"  validate:"dive"`
}

// PersonUpdate is the payload for PATCH /persons/{id}.
//
// Addresses, when present, replaces the whole embedded list. An empty
// list (or null) clears it.
type PersonUpdate struct {
	Uni       patch.Field[string]          `json:"uni,omitzero"        validate:"omitempty,uni"`
	FirstName patch.Field[string]          `json:"first_name,omitzero"`
	LastName  patch.Field[string]          `json:"last_name,omitzero"`
	Email     patch.Field[string]          `json:"email,omitzero"      validate:"omitempty,email"`
	Phone     patch.Field[string]          `json:"phone,omitzero"`
	BirthDate patch.Field[civil.Date]      `json:"birth_date,omitzero"`
	Addresses patch.Field[[]AddressCreate] `json:"addresses,omitzero"  validate:"omitempty,dive"`
}

// Person is the stored representation of a person.
type Person struct {
	Metadata
	Uni       string          `json:"uni"        validate:"required,uni"`
	FirstName string          `json:"first_name" validate:"required"`
	LastName  string          `json:"last_name"  validate:"required"`
	Email     string          `json:"email"      validate:"required,email"`
	Phone     *string         `json:"phone"`
	BirthDate *civil.Date     `json:"birth_date"`
	Addresses []PersonAddress `json:"addresses"  validate:"dive"`
}

// Clone returns a deep copy, so a caller holding the result cannot
// reach into the stored record.
func (p Person) Clone() Person {
	out := p
	if p.Phone != nil {
		phone := *p.Phone
		out.Phone = &phone
	}
	if p.BirthDate != nil {
		date := *p.BirthDate
		out.BirthDate = &date
	}
	out.Addresses = make([]PersonAddress, len(p.Addresses))
	copy(out.Addresses, p.Addresses)
	return out
}

// PersonFilter holds the list filters for GET /persons.
//
// City and Country match when ANY embedded address has that value.
// BirthDate is compared in its YYYY-MM-DD form.
type PersonFilter struct {
	Uni       *string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	BirthDate *string
	City      *string
	Country   *string
}
