// Package debugapi serves a small local inspection surface for the running
// session: a health check and the live view state as JSON.
package debugapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/misteriogame/misterio-client/internal/store"
)

func SetupRoutes(s *store.Store) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/debug/session", SessionView(s))
	return r
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func SessionView(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := s.View()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			Version int `json:"version"`
			State   any `json:"state"`
		}{Version: view.Version, State: view.State})
	}
}
