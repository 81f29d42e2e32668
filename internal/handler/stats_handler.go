package handler

import (
	"log/slog"
	"net/http"

	"github.com/userdesk/backend/internal/service"
)

// StatsHandler handles GET /api/stats.
type StatsHandler struct {
	svc service.StatsService
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Get returns the dashboard counters.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Get(r.Context())
	if err != nil {
		slog.Error("fetch stats failed", "request_id", RequestIDFromContext(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
