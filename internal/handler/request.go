package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/frontier/backend/internal/model"
)

const maxBodyBytes = 1 << 20

type validationResponse struct {
	Error   string             `json:"error"`
	Details []model.FieldError `json:"details"`
}

// decodeBody reads the request body and parses it into T. On failure it has
// already written the response and returns false.
func decodeBody[T model.Validator](w http.ResponseWriter, r *http.Request) (T, bool) {
	var zero T
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "body_too_large"})
			return zero, false
		}
		writeValidationError(w, model.NewValidationError("body", "unreadable"))
		return zero, false
	}

	v, err := model.Parse[T](data)
	if err != nil {
		writeValidationError(w, err)
		return zero, false
	}
	return v, true
}

// writeValidationError answers 422 with per-field detail.
func writeValidationError(w http.ResponseWriter, err error) {
	resp := validationResponse{Error: "validation_failed"}
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		resp.Details = verr.Fields
	} else {
		slog.Warn("unexpected validation error", "error", err)
		resp.Details = []model.FieldError{{Field: "body", Reason: "invalid"}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(resp)
}
