package services

import "errors"

// Error taxonomy surfaced to the HTTP layer.
var (
	// ErrUnauthorized covers bad credentials and missing sessions.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is reserved for permission failures; no current route
	// raises it.
	ErrForbidden = errors.New("forbidden")
)
