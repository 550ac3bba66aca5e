package handler

import (
	"net/http"

	"github.com/frontier/backend/internal/repository"
	"github.com/frontier/backend/internal/service"
)

// Deps are the collaborators the router injects into its handlers.
type Deps struct {
	DB           repository.DB
	Contacts     service.ContactService
	StatusChecks service.StatusCheckService
	Analytics    service.AnalyticsService
	Catalog      service.CatalogService
}

// NewRouter registers every /api endpoint and wraps the mux with the
// request logger, security headers and CORS, outermost first.
func NewRouter(d Deps) http.Handler {
	h := New(d.DB)
	contactHandler := NewContactHandler(d.Contacts)
	statusHandler := NewStatusCheckHandler(d.StatusChecks)
	analyticsHandler := NewAnalyticsHandler(d.Analytics)
	catalogHandler := NewCatalogHandler(d.Catalog)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/ready", h.Ready)

	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/contact", contactHandler.List)
	mux.HandleFunc("PUT /api/contact/{id}/status", contactHandler.UpdateStatus)

	mux.HandleFunc("GET /api/services", catalogHandler.Services)
	mux.HandleFunc("GET /api/analytics", analyticsHandler.Get)

	// Legacy status-check API
	mux.HandleFunc("POST /api/status", statusHandler.Create)
	mux.HandleFunc("GET /api/status", statusHandler.List)

	return RequestLogger(SecurityHeaders(h.CORS(mux)))
}
