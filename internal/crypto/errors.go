package crypto

import "errors"

var (
	// ErrEmptyPassword is returned when hashing an empty password.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrMalformedHash is returned by Verify when the stored hash is not a
	// value produced by the hasher.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrUnknownHasher is returned by NewPasswordHasher for an unsupported
	// algorithm name.
	ErrUnknownHasher = errors.New("unknown password hasher")
)
