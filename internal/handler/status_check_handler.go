package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frontier/backend/internal/model"
	"github.com/frontier/backend/internal/service"
)

// StatusCheckHandler serves the legacy /api/status endpoints, kept for
// clients of the earlier API.
type StatusCheckHandler struct {
	svc service.StatusCheckService
}

// NewStatusCheckHandler creates a StatusCheckHandler.
func NewStatusCheckHandler(svc service.StatusCheckService) *StatusCheckHandler {
	return &StatusCheckHandler{svc: svc}
}

// Create handles POST /api/status.
func (h *StatusCheckHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[model.StatusCheckCreate](w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	check, err := h.svc.Create(r.Context(), req)
	if err != nil {
		slog.Error("create status check failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(check)
}

// List handles GET /api/status.
func (h *StatusCheckHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	checks, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("list status checks failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if checks == nil {
		checks = []*model.StatusCheck{}
	}

	_ = json.NewEncoder(w).Encode(checks)
}
