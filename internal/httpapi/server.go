package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	apimw "github.com/hamed0406/endpointprobe/internal/httpapi/middleware"
	"github.com/hamed0406/endpointprobe/internal/report"
)

// Server exposes what the agent has reported recently. It is read-only.
type Server struct {
	Logger   *zap.Logger
	Recorder *report.Recorder
	Metrics  http.Handler
}

func NewServer(l *zap.Logger, rec *report.Recorder, metrics http.Handler) *Server {
	return &Server{Logger: l, Recorder: rec, Metrics: metrics}
}

func (s *Server) Router(apiKeys []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "X-API-Key"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(apimw.RequireAPIKey(apiKeys))
		r.Get("/checks", s.handleChecks)
		r.Get("/events", s.handleEvents)
		r.Get("/gauges", s.handleGauges)
	})

	return r
}

func (s *Server) handleChecks(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.Recorder.LatestChecks())
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.Recorder.Events())
}

func (s *Server) handleGauges(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.Recorder.LatestGauges())
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Warn("api_encode_error", zap.Error(err))
	}
}
