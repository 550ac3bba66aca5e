package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frontier/backend/internal/model"
	"github.com/frontier/backend/internal/repository"
	"github.com/frontier/backend/internal/service"
)

// ContactHandler handles contact form submission, listing and status updates.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact.
// name, email and message must be present but may be empty; the stored
// record is echoed back.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[model.ContactMessageCreate](w, r)
	if !ok {
		return
	}

	msg, err := h.contactService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("submit contact form failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(msg)
}

// List handles GET /api/contact?limit=N (default 100), newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{Limit: model.DefaultContactListLimit}

	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil {
			writeValidationError(w, model.NewValidationError("limit", "must be an integer"))
			return
		}
		if n < 1 {
			writeValidationError(w, model.NewValidationError("limit", "must be at least 1"))
			return
		}
		opts.Limit = n
	}

	messages, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		slog.Error("list contact messages failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messages)
}

// UpdateStatus handles PUT /api/contact/{id}/status?status=S.
// The status parameter must be present; an empty value is stored as is.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	query := r.URL.Query()
	if !query.Has("status") {
		writeValidationError(w, model.NewValidationError("status", "field required"))
		return
	}
	status := query.Get("status")

	w.Header().Set("Content-Type", "application/json")

	if err := h.contactService.UpdateStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		slog.Error("update message status failed", "error", err, "message_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Status updated successfully"})
}
