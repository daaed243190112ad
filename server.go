package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// apiServer exposes CRUD over the event resource. Error responses are
// deliberately generic: one message per endpoint, no internal detail.
// Update and delete of an unknown id answer 500 rather than 404; only
// the single-event fetch distinguishes not-found. That asymmetry is
// part of the published contract and is kept for compatibility.
type apiServer struct {
	repo *Repo
	mux  *http.ServeMux
}

func newAPIServer(repo *Repo) *apiServer {
	s := &apiServer{
		repo: repo,
		mux:  http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *apiServer) registerRoutes() {
	s.mux.HandleFunc("GET /events", s.handleListEvents)
	s.mux.HandleFunc("POST /events", s.handleCreateEvent)
	s.mux.HandleFunc("GET /events/{id}", s.handleGetEvent)
	s.mux.HandleFunc("PUT /events/{id}", s.handleUpdateEvent)
	s.mux.HandleFunc("DELETE /events/{id}", s.handleDeleteEvent)
	s.mux.HandleFunc("GET /health", s.handleHealth)
}

// Handler returns the route handler wrapped with request logging.
func (s *apiServer) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.mux.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

// Run serves the API on addr until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *apiServer) Run(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Printf("signal %s received, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func (s *apiServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *apiServer) handleListEvents(w http.ResponseWriter, _ *http.Request) {
	events, err := s.repo.ListEvents()
	if err != nil {
		log.Printf("list events: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	out := make([]eventJSON, 0, len(events))
	for _, e := range events {
		out = append(out, e.toJSON())
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *apiServer) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := s.repo.GetEvent(r.PathValue("id"))
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		log.Printf("get event: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	writeJSON(w, http.StatusOK, event.toJSON())
}

func (s *apiServer) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var draft eventDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if draft.Title == "" || draft.StartDateTime == "" || draft.EndDateTime == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	start, errStart := time.Parse(time.RFC3339, draft.StartDateTime)
	end, errEnd := time.Parse(time.RFC3339, draft.EndDateTime)
	if errStart != nil || errEnd != nil {
		log.Printf("create event: bad instant: start=%v end=%v", errStart, errEnd)
		writeError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	event := Event{
		ID:    uuid.NewString(),
		Title: draft.Title,
		Start: start,
		End:   end,
		Color: draft.Color,
	}
	if draft.Description != nil {
		event.Description = *draft.Description
	}
	if event.Color == "" {
		event.Color = defaultEventColor
	}

	if err := s.repo.CreateEvent(event); err != nil {
		log.Printf("create event: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	writeJSON(w, http.StatusCreated, event.toJSON())
}

func (s *apiServer) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var patch eventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	changes := eventChanges{
		Title:       patch.Title,
		Description: patch.Description,
		Color:       patch.Color,
	}
	if patch.StartDateTime != nil {
		start, err := time.Parse(time.RFC3339, *patch.StartDateTime)
		if err != nil {
			log.Printf("update event: bad start instant: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to update event")
			return
		}
		changes.Start = &start
	}
	if patch.EndDateTime != nil {
		end, err := time.Parse(time.RFC3339, *patch.EndDateTime)
		if err != nil {
			log.Printf("update event: bad end instant: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to update event")
			return
		}
		changes.End = &end
	}

	event, err := s.repo.UpdateEvent(r.PathValue("id"), changes)
	if err != nil {
		// Not-found is folded into the generic failure on purpose.
		log.Printf("update event: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}
	writeJSON(w, http.StatusOK, event.toJSON())
}

func (s *apiServer) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.DeleteEvent(r.PathValue("id")); err != nil {
		log.Printf("delete event: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	type errResp struct {
		Error string `json:"error"`
	}
	writeJSON(w, status, errResp{Error: msg})
}
