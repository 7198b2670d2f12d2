package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing event type, unparseable date).
// The generate endpoint maps this — like every other generate failure — to
// a generic HTTP 400.
var ErrValidation = errors.New("validation error")
