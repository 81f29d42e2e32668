package handler

import (
	"encoding/json"
	"net/http"

	"github.com/userdesk/backend/internal/repository"
)

// Handler serves the probe endpoints and carries the shared CORS policy.
type Handler struct {
	db          repository.DB
	driver      string
	frontendURL string
}

// New creates a Handler. frontendURL is the allowed CORS origin; "*" allows any.
func New(db repository.DB, driver, frontendURL string) *Handler {
	return &Handler{db: db, driver: driver, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		// browsers reject credentials with a wildcard origin
		if h.frontendURL != "*" {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
