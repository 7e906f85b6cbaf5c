// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

// sessionSweeper periodically deletes durable sessions older than the
// session lifetime. Expired sessions already fail to resolve; the sweeper
// only reclaims their rows.
type sessionSweeper struct {
	repo     store.SessionRepository
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

// NewSessionSweeper returns the sweeper, or nil when ttl or interval is
// not positive, since there is nothing to sweep then.
func NewSessionSweeper(repo store.SessionRepository, ttl, interval time.Duration, logger *logger.Logger) Worker {
	if repo == nil || ttl <= 0 || interval <= 0 {
		return nil
	}
	return &sessionSweeper{
		repo:     repo,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *sessionSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	cutoff := s.now().Add(-s.ttl)

	removed, err := s.repo.DeleteExpiredSessions(ctx, cutoff)
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionSweeper.sweep").Msg("error deleting expired sessions")
		return
	}
	if removed > 0 {
		s.logger.Debug().Int64("removed", removed).Msg("expired sessions deleted")
	}
}
