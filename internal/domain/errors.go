package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// variety or winegrower does not exist in the dataset.
// Handlers should map this to HTTP 404 and the not-found page.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails validation: a malformed query
// parameter, or a dataset record missing a required field.
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")
