package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// AuthService owns the password-credential lifecycle: registration, login
// into a session, session resolution, logout and password reset.
type AuthService interface {
	// Register creates a user with a hashed password. A taken email yields
	// ErrAlreadyExists.
	Register(ctx context.Context, email, password string) (models.User, error)

	// Login verifies credentials and starts a session, returning its id.
	// Unknown email and wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)

	// Authenticate verifies credentials without starting a session.
	Authenticate(ctx context.Context, email, password string) (models.User, error)

	// ResolveSession returns the owner of sessionID, or nil when the id is
	// empty, unknown, expired or its user is gone.
	ResolveSession(ctx context.Context, sessionID string) (*models.User, error)

	// Logout ends the session held in the user's slot and clears the slot.
	Logout(ctx context.Context, userID string) error

	// EndSession destroys one session and reports whether it was live.
	EndSession(ctx context.Context, sessionID string) (bool, error)

	// RequestPasswordReset issues a fresh single-use reset token.
	RequestPasswordReset(ctx context.Context, email string) (string, error)

	// UpdatePassword redeems a reset token and sets the new password.
	UpdatePassword(ctx context.Context, update models.PasswordUpdate) error
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
