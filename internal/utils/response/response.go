// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here, together with
// the mapping from registry errors to HTTP status codes.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/validation"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope returned for error cases.
//
// Success responses return the record (or list of records) itself.
// Error responses always look like:
//
//	{ "status": "error", "error": "field city is required" }
//
// Validation failures also list every rejected field:
//
//	{ "status": "error", "error": "...", "fields": [{ "field": "city", ... }] }
//
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status string                  `json:"status"`
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// StatusError is the "status" of every error envelope.
const StatusError = "error"

// WriteJSON writes data as JSON with the given HTTP status code.
// Header() → WriteHeader() → body, in that order: headers are locked
// after the first write.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any error into the standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError turns a rejected payload into a Response that names
// each offending field.
func ValidationError(err *validation.Error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
		Fields: err.Fields,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// WriteError picks the status code for an error coming out of the registry:
//
//	validation.ErrValidation     → 400 Bad Request
//	storage.ErrDuplicateIdentity → 400 Bad Request
//	storage.ErrNotFound          → 404 Not Found
//	anything else                → 500 Internal Server Error
//
// ─────────────────────────────────────────────────────────────────────────────
func WriteError(w http.ResponseWriter, err error) error {
	status := StatusFor(err)

	var verr *validation.Error
	if errors.As(err, &verr) {
		return WriteJSON(w, status, ValidationError(verr))
	}
	return WriteJSON(w, status, GeneralError(err))
}

// StatusFor maps a registry error to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, validation.ErrValidation),
		errors.Is(err, storage.ErrDuplicateIdentity):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes the mapped error response for err. Server-side
// failures are also logged; client mistakes (4xx) are not.
func HandleError(w http.ResponseWriter, msg string, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error(msg, slog.String("error", err.Error()))
	}
	_ = WriteError(w, err)
}
