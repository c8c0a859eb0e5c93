package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, malformed time string).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrBadPassword is returned by the collaboration gate when the supplied
// password does not match the trip's shared secret.
// Handlers should map this to HTTP 403.
var ErrBadPassword = errors.New("bad password")

// ErrTripFull is returned by the collaboration gate when the trip already
// holds MaxCollaborators participants and the joining name is new.
// Handlers should map this to HTTP 409.
var ErrTripFull = errors.New("trip full")

// ErrMapUnavailable is returned when the map rendering surface cannot be
// offered because no tile layer is configured. Handlers should map this to
// HTTP 503 so clients can present a retry affordance.
var ErrMapUnavailable = errors.New("map unavailable")
