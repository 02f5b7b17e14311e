package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-records-api/internal/config"
	"github.com/aanand-mishra/student-records-api/internal/http/handlers/health"
	"github.com/aanand-mishra/student-records-api/internal/http/middleware"
	"github.com/aanand-mishra/student-records-api/internal/metrics"
	"github.com/aanand-mishra/student-records-api/internal/registry"
	"github.com/aanand-mishra/student-records-api/internal/storage/memory"
	"github.com/aanand-mishra/student-records-api/internal/storage/sqlite"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	r := registry.New(memory.New(), registry.WithMetrics(metrics.New(reg)))
	return newRouter(log, r, health.New(health.WithIP("127.0.0.1")), promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}

func TestRouter_ServesEveryResource(t *testing.T) {
	router := testRouter(t)

	for target, body := range map[string]string{
		"/addresses":   `{"street":"736 Riverside Dr","city":"New York","state":"NY","postal_code":"10031","country":"USA"}`,
		"/persons":     `{"uni":"dy2530","first_name":"D","last_name":"Y","email":"d@y.io"}`,
		"/fee_details": `{"university_name":"Columbia University","number_of_credits":30,"fee_paid":true}`,
		"/visa_status": `{"visa_status":"F1"}`,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))
		assert.Equal(t, http.StatusCreated, rec.Code, target)
		assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID), target)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `student_records_operations_total{entity="visa_status",operation="create",outcome="ok"} 1`)
}

func TestRouter_NoMetricsHandler(t *testing.T) {
	router := newRouter(slog.New(slog.NewTextHandler(io.Discard, nil)),
		registry.New(memory.New()), health.New(health.WithIP("127.0.0.1")), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewStorage(t *testing.T) {
	s, err := newStorage(&config.Config{Storage: config.Storage{Driver: config.DriverMemory}})
	require.NoError(t, err)
	assert.IsType(t, &memory.Memory{}, s)

	s, err = newStorage(&config.Config{Storage: config.Storage{Driver: config.DriverSQLite, Path: ":memory:"}})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.SQLite{}, s)
	require.NoError(t, s.Close())

	_, err = newStorage(&config.Config{Storage: config.Storage{Driver: "postgres"}})
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	assert.True(t, setupLogger("prod").Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, setupLogger("prod").Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, setupLogger("staging").Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, setupLogger("dev").Enabled(context.Background(), slog.LevelDebug))
}
