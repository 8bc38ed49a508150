// Package api exposes the staffing model over HTTP as JSON.
package api

import (
	"call-staffing/errors"
	"call-staffing/metrics"
	"call-staffing/models"
	"call-staffing/staffing"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server serves staffing reports built by a single model.
type Server struct {
	model    *staffing.Model
	defaults models.StaffingParameters
	logger   zerolog.Logger
}

// NewServer creates a Server. Fields missing from a request take their value
// from defaults.
func NewServer(model *staffing.Model, defaults models.StaffingParameters, logger zerolog.Logger) *Server {
	return &Server{
		model:    model,
		defaults: defaults,
		logger:   logger.With().Str("component", "api").Logger(),
	}
}

// Router returns the HTTP handler with all routes and middleware mounted.
func (s *Server) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(allowedOrigins))

	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/defaults", s.handleDefaults)
		r.Post("/reports", s.handleReport)
	})

	return r
}

// reportRequest is the body of POST /v1/reports.
type reportRequest struct {
	Name string `json:"name"`
	models.StaffingParameters
}

// errorResponse carries the rejected field and value for parameter errors.
// Value is a pointer so a rejected zero is still reported.
type errorResponse struct {
	Error string   `json:"error"`
	Field string   `json:"field,omitempty"`
	Value *float64 `json:"value,omitempty"`
}

// handleReport handles POST /v1/reports
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	req := reportRequest{Name: "api", StaffingParameters: s.defaults}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	start := time.Now()
	report, err := s.model.BuildReport(req.StaffingParameters)
	if err != nil {
		metrics.ObserveError(err)
		s.logger.Warn().Err(err).Str("name", req.Name).Msg("report rejected")

		resp := errorResponse{Error: err.Error()}
		var paramErr *errors.ParameterError
		if stderrors.As(err, &paramErr) {
			resp.Field = paramErr.Field
			resp.Value = &paramErr.Value
			writeJSON(w, http.StatusUnprocessableEntity, resp)
			return
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}
	metrics.ObserveReport(req.Name, report, time.Since(start).Seconds())

	report.ID = uuid.NewString()
	s.logger.Debug().
		Str("report_id", report.ID).
		Str("name", req.Name).
		Int("agents_needed", report.AgentsNeeded).
		Msg("report built")

	writeJSON(w, http.StatusOK, report)
}

// handleDefaults handles GET /v1/defaults
func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.defaults)
}

// healthHandler handles health check requests
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "call-staffing"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
