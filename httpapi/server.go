// Package httpapi exposes a minimal read-only admin surface over a running
// session: component health, and bus counters. It never accepts commands —
// the only way to submit orders is the Adapter/ExecutionClient surface.
// Routing follows the teacher's chimux module: a chi.Router with routes
// grouped under a versioned prefix.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/JoeTonDev/nautilus-trader/bus"
	"github.com/JoeTonDev/nautilus-trader/component"
)

// Server wires the admin routes over a component registry and message bus.
type Server struct {
	router   chi.Router
	registry *component.Registry
	bus      *bus.MessageBus
}

// NewServer constructs a Server. registry and b must not be nil.
func NewServer(registry *component.Registry, b *bus.MessageBus) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		registry: registry,
		bus:      b,
	}
	s.router.Use(middleware.Recoverer)
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler, delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/components", s.handleComponents)
		r.Get("/bus/stats", s.handleBusStats)
	})
}

type healthResponse struct {
	Healthy bool `json:"healthy"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	healthy := s.registry.Healthy()
	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{Healthy: healthy})
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Snapshots())
}

type busStatsResponse struct {
	Sent      uint64 `json:"sent"`
	Requests  uint64 `json:"requests"`
	Responses uint64 `json:"responses"`
	Published uint64 `json:"published"`
}

func (s *Server) handleBusStats(w http.ResponseWriter, r *http.Request) {
	c := s.bus.Counters()
	writeJSON(w, http.StatusOK, busStatsResponse{
		Sent:      c.Sent,
		Requests:  c.Req,
		Responses: c.Res,
		Published: c.Pub,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
