package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frontier/backend/internal/service"
)

// AnalyticsHandler handles GET /api/analytics.
type AnalyticsHandler struct {
	svc service.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Get returns total, new and last-30-days message counts.
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		slog.Error("analytics summary failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "analytics_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(summary)
}
