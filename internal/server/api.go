package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/tailortalk/tailortalk/internal/assistant"
	"github.com/tailortalk/tailortalk/internal/calendar"
	"github.com/tailortalk/tailortalk/internal/instrumentation"
	"github.com/tailortalk/tailortalk/internal/logging"
)

const (
	// DefaultAPIAddr is the default address for the API server.
	DefaultAPIAddr = ":8000"

	// DefaultAPIReadTimeout bounds reading a request including its body.
	DefaultAPIReadTimeout = 15 * time.Second

	// DefaultAPIWriteTimeout bounds writing a response.
	DefaultAPIWriteTimeout = 30 * time.Second

	// DefaultAPIIdleTimeout bounds idle keep-alive connections.
	DefaultAPIIdleTimeout = 60 * time.Second
)

// ChatRequest is the wire form of a chat turn.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant replies produced by one turn.
type ChatResponse struct {
	Replies []assistant.ChatMessage `json:"replies"`
}

// errorResponse is the wire form of an API error.
type errorResponse struct {
	Error string `json:"error"`
}

// APIConfig holds the API server's dependencies.
type APIConfig struct {
	// Addr is the address to bind to (e.g. ":8000").
	Addr string

	// Assistant runs chat turns. Each request gets a fresh session; the
	// transcript is returned to the caller, not retained.
	Assistant *assistant.Assistant

	// Calendar backs the book and available endpoints.
	Calendar assistant.CalendarService

	Logger  *slog.Logger
	Metrics *instrumentation.Metrics
	Health  *HealthChecker

	// Now supplies the current instant for default listing windows.
	Now func() time.Time
}

// APIServer exposes the JSON API over HTTP.
type APIServer struct {
	httpServer *http.Server
	addr       string
	assistant  *assistant.Assistant
	calendar   assistant.CalendarService
	logger     *slog.Logger
	metrics    *instrumentation.Metrics
	health     *HealthChecker
	now        func() time.Time
}

// NewAPIServer creates an API server from the given configuration.
func NewAPIServer(cfg APIConfig) *APIServer {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAPIAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &instrumentation.Metrics{}
	}
	if cfg.Health == nil {
		cfg.Health = NewHealthChecker()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &APIServer{
		addr:      cfg.Addr,
		assistant: cfg.Assistant,
		calendar:  cfg.Calendar,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		health:    cfg.Health,
		now:       cfg.Now,
	}
}

// Handler returns the full request handler: API routes, health endpoints,
// CORS, and request instrumentation.
func (s *APIServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /api/v1/chat", http.HandlerFunc(s.handleChat))
	mux.Handle("POST /api/v1/book", http.HandlerFunc(s.handleBook))
	mux.Handle("GET /api/v1/available", http.HandlerFunc(s.handleAvailable))

	s.health.RegisterHealthEndpoints(mux)

	return s.withInstrumentation(withCORS(mux))
}

// Start starts the API server in a blocking manner.
func (s *APIServer) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: DefaultAPIReadTimeout,
		WriteTimeout:      DefaultAPIWriteTimeout,
		IdleTimeout:       DefaultAPIIdleTimeout,
	}

	s.logger.Info("starting API server", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains the server. Readiness probes fail as soon as draining
// begins.
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.health.SetShuttingDown()
	if s.httpServer != nil {
		s.logger.Info("shutting down API server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Addr returns the configured address for the API server.
func (s *APIServer) Addr() string {
	return s.addr
}

// handleChat runs one assistant turn over the posted message. The turn's
// transcript entries are returned; failures inside the turn are already
// expressed as assistant replies, so the response stays 200.
func (s *APIServer) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	var session assistant.Session
	replies, err := s.assistant.HandleMessage(r.Context(), &session, req.Message)
	if err != nil {
		s.logger.LogAttrs(r.Context(), slog.LevelWarn, "chat turn ended with error",
			logging.Operation("chat"),
			logging.Err(err),
		)
	}

	writeJSON(w, http.StatusOK, ChatResponse{Replies: replies})
}

// handleBook creates a calendar event from the posted booking.
func (s *APIServer) handleBook(w http.ResponseWriter, r *http.Request) {
	var req calendar.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Start.IsZero() || req.End.IsZero() {
		writeError(w, http.StatusBadRequest, "start and end are required")
		return
	}
	if !req.End.After(req.Start) {
		writeError(w, http.StatusBadRequest, "end must be after start")
		return
	}

	created, err := s.calendar.CreateEvent(r.Context(), calendar.EventInput{
		Summary:  req.Title,
		Start:    req.Start,
		End:      req.End,
		TimeZone: req.TimeZone,
	})
	if err != nil {
		s.logger.LogAttrs(r.Context(), slog.LevelError, "booking failed",
			logging.Operation("book"),
			logging.Err(err),
		)
		writeError(w, http.StatusBadGateway, "failed to create event")
		return
	}

	writeJSON(w, http.StatusOK, calendar.NewEventPayload(*created))
}

// handleAvailable lists events between the start and end query parameters
// (RFC 3339). Start defaults to now; a missing end leaves the provider's
// default window in effect.
func (s *APIServer) handleAvailable(w http.ResponseWriter, r *http.Request) {
	start := s.now()
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "start must be RFC 3339")
			return
		}
		start = parsed
	}

	var end time.Time
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "end must be RFC 3339")
			return
		}
		end = parsed
	}

	events, err := s.calendar.ListEvents(r.Context(), start, end)
	if err != nil {
		s.logger.LogAttrs(r.Context(), slog.LevelError, "availability listing failed",
			logging.Operation("available"),
			logging.Err(err),
		)
		writeError(w, http.StatusBadGateway, "failed to list events")
		return
	}

	response := calendar.EventsResponse{Events: []calendar.EventPayload{}}
	for _, event := range events {
		response.Events = append(response.Events, calendar.NewEventPayload(event))
	}

	writeJSON(w, http.StatusOK, response)
}

// withCORS allows cross-origin browser clients, matching the open policy of
// the local development setup.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withInstrumentation records request counts, durations, and an access log
// line per request.
func (s *APIServer) withInstrumentation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		began := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		duration := time.Since(began)
		s.metrics.RecordHTTPRequest(r.Context(), r.Method, r.URL.Path, recorder.status, duration)
		s.logger.LogAttrs(r.Context(), slog.LevelInfo, "request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", recorder.status),
			logging.Duration(duration),
		)
	})
}

// statusRecorder captures the response status for instrumentation.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
