// main is the entry point of the student records API.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file (plus env overrides)
//  2. Initialise the logger
//  3. Open the storage backend (in-memory by default, or SQLite)
//  4. Build the registry and register all HTTP routes
//  5. Start the HTTP server in a separate goroutine
//  6. Block until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, close storage, exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/student-records-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/student-records-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aanand-mishra/student-records-api/internal/config"
	"github.com/aanand-mishra/student-records-api/internal/http/handlers/address"
	"github.com/aanand-mishra/student-records-api/internal/http/handlers/feedetails"
	"github.com/aanand-mishra/student-records-api/internal/http/handlers/health"
	"github.com/aanand-mishra/student-records-api/internal/http/handlers/person"
	"github.com/aanand-mishra/student-records-api/internal/http/handlers/visastatus"
	"github.com/aanand-mishra/student-records-api/internal/http/middleware"
	"github.com/aanand-mishra/student-records-api/internal/metrics"
	"github.com/aanand-mishra/student-records-api/internal/registry"
	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/storage/memory"
	"github.com/aanand-mishra/student-records-api/internal/storage/sqlite"
)

const version = "1.0.0"

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Handlers log through the package-level slog functions, so the
	// configured logger also becomes the default.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting student-records-api",
		slog.String("env", cfg.Env),
		slog.String("version", version),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	store, err := newStorage(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("path", cfg.Storage.Path))

	// ── 4. Registry + Routes ──────────────────────────────────────────────
	opts := []registry.Option{registry.WithLogger(log)}
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, registry.WithMetrics(metrics.New(reg)))
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	var healthOpts []health.Option
	if db, ok := store.(*sqlite.SQLite); ok {
		healthOpts = append(healthOpts, health.WithCheck("storage", db.Ping))
	}

	router := newRouter(log, registry.New(store, opts...), health.New(healthOpts...), metricsHandler)

	// ── 5. Create the HTTP Server ─────────────────────────────────────────
	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	// ── 6. Start Server in a Goroutine ────────────────────────────────────
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ListenAndServe returns http.ErrServerClosed once Shutdown is called.
		if err := server.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 7. Wait for Shutdown Signal ───────────────────────────────────────
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
	}

	if err := store.Close(); err != nil {
		log.Error("failed to close storage",
			slog.String("error", err.Error()))
	}

	log.Info("server stopped gracefully")
}

// newStorage opens the backend named by cfg.Storage.Driver.
func newStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg)
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// newRouter wires middleware and every route. metricsHandler may be nil,
// in which case /metrics is not served.
//
// Route table:
//
//	GET    /                      → welcome message
//	GET    /health[/{path_echo}]  → liveness, echoes ?echo= and the path
//	GET    /ready                 → readiness of the storage backend
//	POST   /addresses             GET /addresses    GET|PATCH /addresses/{id}
//	POST   /persons               GET /persons      GET|PATCH /persons/{id}
//	POST   /fee_details           GET /fee_details  GET|PATCH /fee_details/{id}
//	POST   /visa_status           GET /visa_status  GET|PATCH /visa_status/{id}
//	GET    /metrics               → Prometheus scrape endpoint
func newRouter(log *slog.Logger, reg *registry.Registry, h *health.Handler, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))

	h.Register(r)
	address.Register(r, reg)
	person.Register(r, reg)
	feedetails.Register(r, reg)
	visastatus.Register(r, reg)

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	return r
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
