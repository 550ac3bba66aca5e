package handler

import (
	"net/http"
	"time"

	"github.com/frontier/backend/internal/repository"
)

const corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS, HEAD"

// Handler serves the endpoints that need no domain service: root, health and
// readiness. It also owns the CORS middleware.
type Handler struct {
	db  repository.DB
	now func() time.Time
}

// New returns a Handler whose readiness check pings db.
func New(db repository.DB) *Handler {
	return &Handler{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// CORS allows every origin, method and header. When the request carries an
// Origin it is echoed back so credentialed requests keep working.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hdr := w.Header()
		if origin := r.Header.Get("Origin"); origin != "" {
			hdr.Set("Access-Control-Allow-Origin", origin)
			hdr.Set("Access-Control-Allow-Credentials", "true")
			hdr.Add("Vary", "Origin")
		} else {
			hdr.Set("Access-Control-Allow-Origin", "*")
		}
		hdr.Set("Access-Control-Allow-Methods", corsAllowMethods)
		if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
			hdr.Set("Access-Control-Allow-Headers", reqHeaders)
		} else {
			hdr.Set("Access-Control-Allow-Headers", "*")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
