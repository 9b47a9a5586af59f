package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
//
// The packing engine also returns it when trip attributes are too incomplete
// to derive a list from — this is the only failure the engine surfaces.
var ErrValidation = errors.New("validation error")
