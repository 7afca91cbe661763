package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidRequest is returned by service functions when input fails
// validation (e.g. empty update payload, missing required field).
// Handlers should map this to HTTP 400 Bad Request.
var ErrInvalidRequest = errors.New("invalid request")
