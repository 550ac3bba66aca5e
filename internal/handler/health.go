package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const rootMessage = "Frontier Web Development API is running"

type rootResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type readyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Root handles GET /api/.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rootResponse{Message: rootMessage})
}

// Health handles GET /api/health. It reports process liveness only and never
// touches the store.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:    "healthy",
		Timestamp: h.now(),
	})
}

// Ready handles GET /api/ready by pinging the store.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := h.db.Ping(r.Context()); err != nil {
		slog.Warn("store ping failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(readyResponse{
			Status:  "unhealthy",
			Message: "database unavailable",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(readyResponse{Status: "ok"})
}
