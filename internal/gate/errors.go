package gate

import "errors"

var (
	// ErrUnknownAuthType is returned by NewAuthenticator for an auth type
	// it cannot build.
	ErrUnknownAuthType = errors.New("unknown auth type")

	// ErrNoAuthService is returned by NewAuthenticator when an enforcing
	// authenticator is requested without an AuthService.
	ErrNoAuthService = errors.New("auth service is required")
)
