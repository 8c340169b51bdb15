package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"fieldfilter/employee"
	"fieldfilter/filter"
	"fieldfilter/filterstore"
	"fieldfilter/internal/logger"
)

type Server struct {
	cfg     Config
	engine  *filter.Engine
	records []filter.Record
	store   filterstore.Store
	router  *chi.Mux
}

// NewServer wires the engine over the employee schema, materializes the
// sample record set, and sets up routes. The schema and records are built
// once here and only read afterwards.
func NewServer(cfg Config, store filterstore.Store) *Server {
	s := &Server{
		cfg:     cfg,
		engine:  filter.NewEngine(employee.Schema()),
		records: employee.Records(employee.Sample(cfg.SampleSize, cfg.SampleSeed)),
		store:   store,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	if s.cfg.SimulatedLatencyMS > 0 {
		r.Use(simulatedLatency(time.Duration(s.cfg.SimulatedLatencyMS) * time.Millisecond))
	}

	// Health check
	r.Get("/api/v1/health", s.handleHealth)

	// Field schema and records
	r.Get("/api/v1/fields", s.handleFields)
	r.Get("/api/v1/employees", s.handleEmployees)
	r.Post("/api/v1/employees/filter", s.handleFilter)

	// Saved filters
	r.Route("/api/v1/filters", func(r chi.Router) {
		r.Get("/", s.handleListFilters)
		r.Post("/", s.handleCreateFilter)
		r.Post("/validate", s.handleValidateCondition)

		r.Route("/{filterID}", func(r chi.Router) {
			r.Get("/", s.handleGetFilter)
			r.Put("/", s.handleUpdateFilter)
			r.Delete("/", s.handleDeleteFilter)
		})
	})

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// simulatedLatency delays every response by a fixed duration. Used during
// UI development to exercise loading states; off by default.
func simulatedLatency(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(d):
			case <-r.Context().Done():
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Health check handler
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"fields":  len(s.engine.Schema().FieldKeys()),
		"records": len(s.records),
	})
}

// Field schema handler
func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	defs := s.engine.Schema().Fields()
	fields := make([]FieldResponse, 0, len(defs))
	for _, def := range defs {
		fields = append(fields, FieldResponse{
			Key:       def.Key,
			Label:     def.Label,
			Type:      def.Type,
			Operators: def.Operators,
			Options:   def.Options,
		})
	}
	respondJSON(w, http.StatusOK, FieldsResponse{Fields: fields})
}

// Record set handler
func (s *Server) handleEmployees(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, EmployeesResponse{
		Employees: s.records,
		Total:     len(s.records),
	})
}

// Filter handler: validates the conditions, silently dropping malformed
// ones, applies the rest with AND semantics, then sorts if asked.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	valid, dropped := s.partitionConditions(req.Conditions)

	startTime := time.Now()
	matched := s.engine.Apply(s.records, valid)
	if req.Sort != nil {
		matched = s.engine.Sort(matched, *req.Sort)
	}
	evaluationTime := time.Since(startTime)

	respondJSON(w, http.StatusOK, FilterResponse{
		Employees:      matched,
		Total:          len(s.records),
		Matched:        len(matched),
		Dropped:        dropped,
		EvaluationTime: evaluationTime.String(),
	})
}

// Condition validation handler
func (s *Server) handleValidateCondition(w http.ResponseWriter, r *http.Request) {
	var c filter.Condition
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	respondJSON(w, http.StatusOK, ValidateResponse{
		Valid: s.engine.ValidateCondition(c),
	})
}

// List saved filters handler
func (s *Server) handleListFilters(w http.ResponseWriter, r *http.Request) {
	saved, err := s.store.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list filters", err)
		return
	}

	filters := make([]SavedFilterResponse, 0, len(saved))
	for _, f := range saved {
		filters = append(filters, toSavedFilterResponse(f))
	}
	respondJSON(w, http.StatusOK, SavedFiltersResponse{Filters: filters})
}

// Create saved filter handler
func (s *Server) handleCreateFilter(w http.ResponseWriter, r *http.Request) {
	var req SaveFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	valid, _ := s.partitionConditions(req.Conditions)
	saved := &filterstore.SavedFilter{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Conditions: valid,
	}

	if err := s.store.Save(saved); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save filter", err)
		return
	}

	respondJSON(w, http.StatusCreated, toSavedFilterResponse(saved))
}

// Get saved filter handler
func (s *Server) handleGetFilter(w http.ResponseWriter, r *http.Request) {
	filterID := chi.URLParam(r, "filterID")

	saved, err := s.store.Get(filterID)
	if err != nil {
		respondError(w, http.StatusNotFound, "filter not found", err)
		return
	}

	respondJSON(w, http.StatusOK, toSavedFilterResponse(saved))
}

// Update saved filter handler
func (s *Server) handleUpdateFilter(w http.ResponseWriter, r *http.Request) {
	filterID := chi.URLParam(r, "filterID")

	var req SaveFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	valid, _ := s.partitionConditions(req.Conditions)
	saved := &filterstore.SavedFilter{
		ID:         filterID,
		Name:       req.Name,
		Conditions: valid,
	}

	if err := s.store.Update(saved); err != nil {
		respondError(w, http.StatusNotFound, "filter not found", err)
		return
	}

	respondJSON(w, http.StatusOK, toSavedFilterResponse(saved))
}

// Delete saved filter handler
func (s *Server) handleDeleteFilter(w http.ResponseWriter, r *http.Request) {
	filterID := chi.URLParam(r, "filterID")

	if err := s.store.Delete(filterID); err != nil {
		respondError(w, http.StatusNotFound, "filter not found", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// partitionConditions mints IDs for new conditions and drops invalid ones.
// Dropping is silent per the filtering contract; the count is reported so
// the UI can hint that something was ignored.
func (s *Server) partitionConditions(conditions filter.FilterState) (filter.FilterState, int) {
	valid := make(filter.FilterState, 0, len(conditions))
	dropped := 0
	for _, c := range conditions {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if s.engine.ValidateCondition(c) {
			valid = append(valid, c)
		} else {
			dropped++
		}
	}
	return valid, dropped
}

// Helper functions
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]string{
		"error": message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		logger.Logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := filterstore.NewFileStore(cfg.StorePath)
	if err != nil {
		logger.Logger.Error("failed to open filter store", "error", err)
		os.Exit(1)
	}

	server := NewServer(cfg, store)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logger.Logger.Info("server starting",
			"addr", cfg.Addr,
			"records", len(server.records),
			"store", cfg.StorePath,
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Logger.Error("server shutdown error", "error", err)
	}

	logger.Logger.Info("server stopped")
}
