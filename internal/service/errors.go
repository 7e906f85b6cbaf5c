package service

import "errors"

// Error taxonomy of the auth service. Every error returned by AuthService
// matches exactly one of these with errors.Is; the cause stays wrapped.
var (
	// ErrInvalidInput is returned for empty or malformed arguments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyExists is returned when registering a taken email.
	ErrAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match. The two cases are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned for unknown emails and reset tokens.
	ErrNotFound = errors.New("not found")

	// ErrStorage is returned when the store, the session registry or a
	// stored password hash fails. It may be transient.
	ErrStorage = errors.New("storage error")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
