package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError describes why a single request field was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned when a request body does not match its schema.
// It never involves the store.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

// Validator is implemented by every creation-input schema.
type Validator interface {
	Validate() error
}

// Parse decodes a single JSON document into T and validates it.
// Malformed JSON, trailing data, mistyped fields and missing fields all
// yield a *ValidationError.
func Parse[T Validator](data []byte) (T, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return v, NewValidationError(typeErr.Field, "must be a "+typeErr.Type.String())
		}
		return v, NewValidationError("body", "invalid JSON")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return v, NewValidationError("body", "invalid JSON")
	}
	if err := v.Validate(); err != nil {
		return v, err
	}
	return v, nil
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// StringValue returns *s, or "" when s is nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func validateStruct(s any) error {
	err := structValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		reason := fe.Tag()
		if reason == "required" {
			reason = "field required"
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Reason: reason})
	}
	return out
}
