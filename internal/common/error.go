package common

import "errors"

// Callers should match these values with errors.Is; stores and services wrap
// them with additional context.
var (
	// Repository-level errors.
	ErrorNotFound        = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors. Unknown user and wrong password share one value so the
	// outcome cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken covers every token failure: malformed, bad signature,
	// unexpected algorithm, expired.
	ErrInvalidToken = errors.New("invalid token")
)
