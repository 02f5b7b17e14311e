package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/validation"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteJSON(rec, http.StatusCreated, map[string]string{"visa_status": "F1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"visa_status":"F1"}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", validation.Fail(validation.NotNull("city")), http.StatusBadRequest},
		{"duplicate", errors.Wrap(storage.ErrDuplicateIdentity, "address 1 already exists"), http.StatusBadRequest},
		{"not found", errors.Wrap(storage.ErrNotFound, "person 1 not found"), http.StatusNotFound},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, WriteError(rec, tt.err))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.status, StatusFor(tt.err))

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, StatusError, body.Status)
			assert.Equal(t, tt.err.Error(), body.Error)
		})
	}
}

func TestWriteError_ValidationListsFields(t *testing.T) {
	rec := httptest.NewRecorder()
	err := errors.Wrap(validation.Fail(validation.NotNull("city"), validation.NotNull("state")), "update address")
	require.NoError(t, WriteError(rec, err))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Fields, 2)
	assert.Equal(t, "city", body.Fields[0].Field)
	assert.Equal(t, "notnull", body.Fields[1].Tag)
}
