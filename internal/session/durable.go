package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// durableBackend stores sessions in the sessions table through a
// [store.SessionRepository], so they survive restarts and are shared by
// every server instance on the same database.
type durableBackend struct {
	repo store.SessionRepository
}

// NewDurableBackend returns a [Backend] over repo.
func NewDurableBackend(repo store.SessionRepository) Backend {
	return &durableBackend{repo: repo}
}

func (d *durableBackend) Save(ctx context.Context, s models.Session) error {
	err := d.repo.CreateSession(ctx, s)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrSessionAlreadyExists):
		return ErrSessionExists
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}

func (d *durableBackend) Load(ctx context.Context, id string) (models.Session, error) {
	s, err := d.repo.FindSession(ctx, id)
	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, store.ErrSessionNotFound):
		return models.Session{}, ErrSessionNotFound
	default:
		return models.Session{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
}

func (d *durableBackend) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := d.repo.DeleteSession(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return removed, nil
}
