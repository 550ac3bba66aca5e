package model

import "time"

// StatusCheck is the record kept by the legacy /status endpoints.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// StatusCheckCreate is the request body for POST /api/status.
type StatusCheckCreate struct {
	ClientName *string `json:"client_name" validate:"required"`
}

// Validate checks that client_name is present; it may be empty.
func (c StatusCheckCreate) Validate() error {
	return validateStruct(c)
}

// MaxStatusChecks caps how many status checks a listing returns.
const MaxStatusChecks = 1000
