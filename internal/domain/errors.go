package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the telemetry store (unknown car, no position
// data yet). Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when request parameters
// fail validation (e.g. end date before start date, negative rate).
// Handlers map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
