package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrNotSaved is returned when the store acknowledges an insert without writing a row.
var ErrNotSaved = errors.New("insert not acknowledged")
