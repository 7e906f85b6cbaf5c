package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// UserRepository persists user accounts in the users table.
type UserRepository interface {
	// FindUser returns the single user matching filter, or
	// [ErrUserNotFound]. A filter on a non-searchable column fails with
	// [ErrInvalidField].
	FindUser(ctx context.Context, filter models.UserFilter) (models.User, error)

	// CreateUser inserts a new user with a fresh id and returns it.
	// A duplicate email fails with [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, email string, hashedPassword []byte) (models.User, error)

	// UpdateUser applies changes to the user with the given id. Unknown
	// columns fail with [ErrInvalidField] before touching the database;
	// a missing user fails with [ErrUserNotFound].
	UpdateUser(ctx context.Context, id string, changes models.UserChanges) error

	// RedeemResetToken stores hashedPassword and clears the reset token of
	// user id, provided the user still holds token. Otherwise nothing is
	// written and it fails with [ErrUserNotFound], so a token is redeemed
	// at most once.
	RedeemResetToken(ctx context.Context, id, token string, hashedPassword []byte) error

	// SwapSessionSlot sets the session slot of user id to next, provided it
	// still holds current (nil means empty). Otherwise nothing is written
	// and it fails with [ErrSessionSlotChanged].
	SwapSessionSlot(ctx context.Context, id string, current, next *string) error
}

// SessionRepository persists sessions in the sessions table.
type SessionRepository interface {
	// CreateSession inserts s. An id already in use fails with
	// [ErrSessionAlreadyExists].
	CreateSession(ctx context.Context, s models.Session) error

	// FindSession returns the session with the given id, or
	// [ErrSessionNotFound].
	FindSession(ctx context.Context, id string) (models.Session, error)

	// DeleteSession removes the session and reports whether it existed.
	DeleteSession(ctx context.Context, id string) (bool, error)

	// DeleteExpiredSessions removes every session created before
	// createdBefore and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, createdBefore time.Time) (int64, error)
}

// ErrorClassificator inspects driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique or primary key
	// constraint violation.
	IsUniqueViolation(err error) bool
}
