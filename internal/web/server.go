// Package web exposes the engine over HTTP: problem browsing, submission
// evaluation, step tracing and the AI tutor. Handlers keep no state of their
// own; everything flows through the injected services.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/TruZillah/Assessment-GliderAI/internal/ai"
	"github.com/TruZillah/Assessment-GliderAI/internal/app/judge"
	"github.com/TruZillah/Assessment-GliderAI/internal/catalog"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/tracer"
)

// Evaluator runs a submission against its problem's test suite.
type Evaluator interface {
	Evaluate(ctx context.Context, sub judge.Submission) (*execution.Report, error)
}

// Debugger records an instrumented step trace for submitted code.
type Debugger interface {
	Run(ctx context.Context, req tracer.Request) (*tracer.Trace, error)
}

// Assistant answers tutoring questions with problem context.
type Assistant interface {
	Ask(ctx context.Context, q ai.Question) (string, error)
	Status() ai.Status
}

// Config wires the services the HTTP layer fronts.
type Config struct {
	Catalog *catalog.Catalog
	Judge   Evaluator
	Tracer  Debugger
	Tutor   Assistant
	Log     *slog.Logger
}

// Server is the HTTP front for the engine.
type Server struct {
	catalog *catalog.Catalog
	judge   Evaluator
	tracer  Debugger
	tutor   Assistant
	log     *slog.Logger
	router  *mux.Router
}

// NewServer builds the router. All services are required.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("web: catalog is required")
	}
	if cfg.Judge == nil {
		return nil, errors.New("web: judge service is required")
	}
	if cfg.Tracer == nil {
		return nil, errors.New("web: tracer is required")
	}
	if cfg.Tutor == nil {
		return nil, errors.New("web: tutor is required")
	}
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		catalog: cfg.Catalog,
		judge:   cfg.Judge,
		tracer:  cfg.Tracer,
		tutor:   cfg.Tutor,
		log:     log,
	}

	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/problems", s.handleListProblems).Methods(http.MethodGet)
	r.HandleFunc("/api/problems/{name}", s.handleGetProblem).Methods(http.MethodGet)
	r.HandleFunc("/api/glossary", s.handleGlossary).Methods(http.MethodGet)
	r.HandleFunc("/api/submit", s.handleSubmit).Methods(http.MethodPost)
	r.HandleFunc("/api/debug", s.handleDebug).Methods(http.MethodPost)
	r.HandleFunc("/api/ask", s.handleAsk).Methods(http.MethodPost)
	r.HandleFunc("/api/ask/status", s.handleAskStatus).Methods(http.MethodGet)
	s.router = r
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
