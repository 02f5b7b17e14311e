// Package health serves the liveness endpoints and the root welcome
// message.
package health

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aanand-mishra/student-records-api/internal/utils/response"
)

// Welcome is the body of GET /.
const Welcome = "Welcome to the Person/Address/FeeDetails/VisaStatus API."

// Status is the body of GET /health and GET /health/{path_echo}.
type Status struct {
	Status        int     `json:"status"`
	StatusMessage string  `json:"status_message"`
	Timestamp     string  `json:"timestamp"`
	IPAddress     string  `json:"ip_address"`
	Echo          *string `json:"echo"`
	PathEcho      *string `json:"path_echo"`
}

// CheckFunc reports whether a dependency is usable; nil means healthy.
type CheckFunc func(ctx context.Context) error

type check struct {
	name string
	fn   CheckFunc
}

// Handler answers health probes.
type Handler struct {
	now    func() time.Time
	ip     string
	checks []check
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// WithIP fixes the reported ip_address.
func WithIP(ip string) Option {
	return func(h *Handler) { h.ip = ip }
}

// WithCheck adds a dependency probed by GET /ready.
func WithCheck(name string, fn CheckFunc) Option {
	return func(h *Handler) { h.checks = append(h.checks, check{name: name, fn: fn}) }
}

// New returns a Handler reporting the address the host name resolves to.
func New(opts ...Option) *Handler {
	h := &Handler{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	if h.ip == "" {
		h.ip = hostIP()
	}
	return h
}

// Register mounts the health and root routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleRoot)
	r.Get("/health", h.HandleHealth)
	r.Get("/health/{path_echo}", h.HandleHealth)
	r.Get("/ready", h.HandleReady)
}

// HandleRoot returns the welcome message.
func (h *Handler) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{"message": Welcome})
}

// HandleHealth reports the service as up. The optional ?echo= query and
// {path_echo} path segment are returned unchanged.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	st := Status{
		Status:        http.StatusOK,
		StatusMessage: "OK",
		Timestamp:     h.now().UTC().Format("2006-01-02T15:04:05.000000Z"),
		IPAddress:     h.ip,
	}
	if q := r.URL.Query(); q.Has("echo") {
		echo := q.Get("echo")
		st.Echo = &echo
	}
	if p := chi.URLParam(r, "path_echo"); p != "" {
		st.PathEcho = &p
	}
	response.WriteJSON(w, http.StatusOK, st)
}

// Readiness is the body of GET /ready.
type Readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleReady runs every registered check and answers 503 if any fails.
func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	res := Readiness{Status: "ready", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK

	for _, c := range h.checks {
		if err := c.fn(r.Context()); err != nil {
			res.Checks[c.name] = "down: " + err.Error()
			res.Status = "not_ready"
			status = http.StatusServiceUnavailable
			continue
		}
		res.Checks[c.name] = "up"
	}

	response.WriteJSON(w, status, res)
}

func hostIP() string {
	name, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	addrs, err := net.LookupHost(name)
	if err != nil || len(addrs) == 0 {
		return "127.0.0.1"
	}
	return addrs[0]
}
