package session

//go:generate mockgen -source=interfaces.go -destination=../mock/session_registry_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// Registry maps opaque session identifiers to user ids.
//
// A session id resolves to at most one user. Once destroyed it never
// resolves again and is never reissued.
type Registry interface {
	// Create starts a session for userID and returns its id.
	// An empty userID yields [ErrEmptyUserID].
	Create(ctx context.Context, userID string) (string, error)

	// Resolve returns the user owning sessionID. Absent, malformed and
	// expired ids all yield [ErrSessionNotFound].
	Resolve(ctx context.Context, sessionID string) (string, error)

	// Destroy ends the session and reports whether it existed. A miss is
	// (false, nil).
	Destroy(ctx context.Context, sessionID string) (bool, error)
}

// Backend stores session records for a [Registry]. It knows nothing about
// expiry; the registry evaluates it at read time.
type Backend interface {
	// Save stores s. A stored record with the same id yields
	// [ErrSessionExists].
	Save(ctx context.Context, s models.Session) error

	// Load returns the record with the given id or [ErrSessionNotFound].
	Load(ctx context.Context, id string) (models.Session, error)

	// Delete removes the record and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
