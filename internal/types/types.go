// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, registry, storage and filters can all import types without
// depending on each other.
//
// Every entity comes in four shapes:
//
//	<Entity>Create — the client payload that introduces a new record
//	<Entity>Update — the client payload for PATCH; every field optional
//	<Entity>       — the Read shape the server stores and returns
//	<Entity>Filter — the optional equality filters accepted by list
//
// Struct tags serve two purposes:
//
//  1. json:"..."     — the wire name of the field (snake_case).
//  2. validate:"..." — rules checked by go-playground/validator.
//     "required" means the field must be present and non-empty.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Metadata is the server-assigned part of every Read shape.
// It is embedded, so its fields appear at the top level of the JSON.
type Metadata struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key returns the record identifier used by the storage layer.
func (m Metadata) Key() uuid.UUID {
	return m.ID
}
