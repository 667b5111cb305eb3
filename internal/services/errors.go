package services

import "errors"

// Sentinel errors mapped to HTTP status codes in the handlers.
var (
	// ErrValidationFailed wraps input validation failures (BadRequest).
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnauthorized covers bad credentials and missing sessions.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden covers authenticated requests lacking the admin flag.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound covers missing users or records.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is the Conflict outcome of duplicate registration.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on failed login. It deliberately
	// does not distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
