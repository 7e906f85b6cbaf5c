// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// maxCreateAttempts bounds id regeneration on collision.
const maxCreateAttempts = 5

// registry implements [Registry] on top of a [Backend] and an optional
// lifetime. Expiry is lazy: expired records stay in the backend until
// destroyed but never resolve.
type registry struct {
	backend Backend
	ttl     time.Duration
	now     func() time.Time
	newID   func() (string, error)
	logger  *logger.Logger
}

// NewRegistry returns a [Registry] storing sessions in backend.
func NewRegistry(backend Backend, opts ...Option) Registry {
	r := &registry{
		backend: backend,
		now:     time.Now,
		newID:   utils.NewSessionID,
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *registry) Create(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrEmptyUserID
	}

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		id, err := r.newID()
		if err != nil {
			return "", err
		}

		err = r.backend.Save(ctx, models.Session{ID: id, UserID: userID, CreatedAt: r.now()})
		if errors.Is(err, ErrSessionExists) {
			r.logger.Warn().Str("func", "*registry.Create").Int("attempt", attempt).Msg("session id collision, regenerating")
			continue
		}
		if err != nil {
			return "", err
		}

		r.logger.Debug().Str("func", "*registry.Create").Str("session_prefix", utils.ShortID(id)).Msg("session created")
		return id, nil
	}

	return "", fmt.Errorf("%w after %d attempts", ErrIDSpaceExhausted, maxCreateAttempts)
}

func (r *registry) Resolve(ctx context.Context, sessionID string) (string, error) {
	if !utils.ValidSessionID(sessionID) {
		return "", ErrSessionNotFound
	}

	s, err := r.backend.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}

	if s.ExpiredAt(r.now(), r.ttl) {
		r.logger.Debug().Str("func", "*registry.Resolve").Str("session_prefix", utils.ShortID(sessionID)).Msg("session expired")
		return "", ErrSessionNotFound
	}

	return s.UserID, nil
}

func (r *registry) Destroy(ctx context.Context, sessionID string) (bool, error) {
	if !utils.ValidSessionID(sessionID) {
		return false, nil
	}

	removed, err := r.backend.Delete(ctx, sessionID)
	if err != nil {
		return false, err
	}

	if removed {
		r.logger.Debug().Str("func", "*registry.Destroy").Str("session_prefix", utils.ShortID(sessionID)).Msg("session destroyed")
	}
	return removed, nil
}
