package handler

import (
	"encoding/json"
	"net/http"

	"github.com/frontier/backend/internal/model"
	"github.com/frontier/backend/internal/service"
)

// CatalogHandler handles GET /api/services.
type CatalogHandler struct {
	svc service.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

type servicesResponse struct {
	Services []model.Service `json:"services"`
}

// Services returns the static catalog. It never touches the store.
func (h *CatalogHandler) Services(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(servicesResponse{Services: h.svc.List()})
}
