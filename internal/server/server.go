// Package server exposes the tixd JSON API: the ticket listing and the
// saved-view CRUD surface the tix client consumes.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/tcarver/tix/internal/models"
	"github.com/tcarver/tix/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	store *store.Store
	mux   *http.ServeMux
}

// New creates a server backed by the given store.
func New(st *store.Store) *Server {
	s := &Server{
		store: st,
		mux:   http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("GET /api/tickets", s.handleListTickets)

	s.mux.HandleFunc("GET /api/tickets/views", s.handleListViews)
	s.mux.HandleFunc("POST /api/tickets/views", s.handleCreateView)
	s.mux.HandleFunc("GET /api/tickets/views/{id}", s.handleGetView)
	s.mux.HandleFunc("DELETE /api/tickets/views/{id}", s.handleDeleteView)
}

// Handler returns the HTTP handler, for tests and custom serving.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe starts serving on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("tixd listening on %s", addr)
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.store.ListTickets()
	if err != nil {
		s.fail(w, err)
		return
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": tickets})
}

func (s *Server) handleListViews(w http.ResponseWriter, r *http.Request) {
	views, err := s.store.ListViews()
	if err != nil {
		s.fail(w, err)
		return
	}
	if views == nil {
		views = []models.View{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": views})
}

func (s *Server) handleGetView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := s.store.GetView(id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "view not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCreateView(w http.ResponseWriter, r *http.Request) {
	var req models.ViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusUnprocessableEntity)
		return
	}

	view, err := s.store.CreateView(req)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleDeleteView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := s.store.DeleteView(id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "view not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	log.Printf("request failed: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
