// Package request holds the helpers handlers use to read their input:
// the JSON body, the {id} path parameter and the optional list filters
// from the query string.
package request

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEmptyBody is returned by DecodeJSON when the client sent nothing.
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON decodes the request body into v.
//
// io.EOF from the decoder means the body was completely empty, which is
// reported as ErrEmptyBody rather than as a JSON syntax problem.
func DecodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	if err != nil {
		return errors.Wrap(err, "invalid JSON body")
	}
	return nil
}

// PathID parses the {id} URL parameter as a UUID.
func PathID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Errorf("invalid id %q: must be a UUID", raw)
	}
	return id, nil
}

// String returns the value of key, or nil when the parameter is absent.
// A parameter sent with an empty value (?city=) is present and matches
// only empty fields.
func String(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}

// Bool parses key as a boolean ("true", "false", "1", "0", ...).
func Bool(q url.Values, key string) (*bool, error) {
	if !q.Has(key) {
		return nil, nil
	}
	v, err := strconv.ParseBool(q.Get(key))
	if err != nil {
		return nil, errors.Errorf("invalid %s %q: must be a boolean", key, q.Get(key))
	}
	return &v, nil
}
