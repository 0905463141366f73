// Package http exposes schema management and table validation over a
// REST surface. Schemas live in a ports.SchemaStore; tables are posted
// as JSON and validated on the spot.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/skooma"
	"github.com/aretw0/skooma/pkg/dataframe"
	"github.com/aretw0/skooma/pkg/ports"
	"github.com/aretw0/skooma/pkg/schemafile"
	"github.com/go-chi/chi/v5"
)

// Server handles the REST routes over a schema store.
type Server struct {
	store   ports.SchemaStore
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics attaches request and validation counters.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewHandler creates the HTTP handler for the validation service.
func NewHandler(store ports.SchemaStore, opts ...Option) http.Handler {
	server := &Server{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	if server.metrics != nil {
		r.Use(server.metrics.middleware)
	}

	r.Get("/healthz", server.handleHealth)
	r.Route("/schemas", func(r chi.Router) {
		r.Get("/", server.handleListSchemas)
		r.Put("/{name}", server.handlePutSchema)
		r.Get("/{name}", server.handleGetSchema)
		r.Delete("/{name}", server.handleDeleteSchema)
		r.Post("/{name}/validate", server.handleValidateNamed)
	})
	r.Post("/validate", server.handleValidateInline)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ValidationResponse is the wire form of a validation report.
type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// inlineRequest is the payload for POST /validate.
type inlineRequest struct {
	Schema *schemafile.Definition `json:"schema"`
	Table  json.RawMessage        `json:"table"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": skooma.Version})
}

func (s *Server) handleListSchemas(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"schemas": names})
}

func (s *Server) handlePutSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var def schemafile.Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decoding definition: %w", err))
		return
	}
	if def.Columns == nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("definition has no columns"))
		return
	}
	// Reject definitions that cannot compile before they are stored.
	if _, err := def.Compile(); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.store.Save(r.Context(), name, &def); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	def, err := s.store.Load(r.Context(), name)
	if errors.Is(err, skooma.ErrSchemaNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, def)
}

func (s *Server) handleDeleteSchema(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleValidateNamed(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	def, err := s.store.Load(r.Context(), name)
	if errors.Is(err, skooma.ErrSchemaNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	schema, err := def.Compile()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Errorf("compiling schema %q: %w", name, err))
		return
	}

	var table json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decoding table: %w", err))
		return
	}
	s.validate(w, schema, table)
}

func (s *Server) handleValidateInline(w http.ResponseWriter, r *http.Request) {
	var req inlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}
	if req.Schema == nil || req.Table == nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("both schema and table are required"))
		return
	}

	schema, err := req.Schema.Compile()
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.validate(w, schema, req.Table)
}

func (s *Server) validate(w http.ResponseWriter, schema *skooma.Schema, table json.RawMessage) {
	df, err := dataframe.UnmarshalJSONTable(table)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	report := schema.Validate(df)
	if s.metrics != nil {
		s.metrics.observeValidation(report.Valid())
	}
	if !report.Valid() {
		s.logger.Debug("validation failed", "violations", report.Len())
	}

	messages := report.Messages()
	if messages == nil {
		messages = []string{}
	}
	s.writeJSON(w, http.StatusOK, ValidationResponse{
		Valid:  report.Valid(),
		Errors: messages,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= 500 {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
