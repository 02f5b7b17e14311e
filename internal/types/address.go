package types

import (
	"github.com/google/uuid"

	"github.com/aanand-mishra/student-records-api/internal/patch"
)

// AddressFields are the client-supplied fields of a postal address.
// The same block is shared by the standalone Address resource and by the
// addresses embedded in a Person.
type AddressFields struct {
	Street     string `json:"street"      validate:"required"`
	City       string `json:"city"        validate:"required"`
	State      string `json:"state"       validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country"     validate:"required"`
}

// AddressCreate is the payload for POST /addresses.
//
// ID is optional: a client may choose the identifier itself. Creating a
// second address with an identifier already in use is rejected.
type AddressCreate struct {
	ID *uuid.UUID `json:"id,omitempty"`
	AddressFields
}

// AddressUpdate is the payload for PATCH /addresses/{id}.
type AddressUpdate struct {
	Street     patch.Field[string] `json:"street,omitzero"`
	City       patch.Field[string] `json:"city,omitzero"`
	State      patch.Field[string] `json:"state,omitzero"`
	PostalCode patch.Field[string] `json:"postal_code,omitzero"`
	Country    patch.Field[string] `json:"country,omitzero"`
}

// Address is the stored representation of a standalone address.
type Address struct {
	Metadata
	AddressFields
}

// AddressFilter holds the list filters for GET /addresses.
// A nil field imposes no constraint.
type AddressFilter struct {
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}
