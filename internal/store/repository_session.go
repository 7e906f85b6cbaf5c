// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// sessionRepository is the SQL implementation of [SessionRepository].
type sessionRepository struct {
	db *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(ctx context.Context, s models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateSessionQuery(r.db.builder, s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrSessionAlreadyExists
		}
		log.Err(err).Str("func", "*sessionRepository.CreateSession").
			Str("session_prefix", utils.ShortID(s.ID)).
			Msg("error inserting session")
		return r.db.wrapError(ctx, ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) FindSession(ctx context.Context, id string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionQuery(r.db.builder, id)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var s models.Session
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.UserID, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSession").
			Str("session_prefix", utils.ShortID(id)).
			Msg("error finding session")
		return models.Session{}, r.db.wrapError(ctx, ErrExecutingQuery, err)
	}

	return s, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(r.db.builder, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").
			Str("session_prefix", utils.ShortID(id)).
			Msg("error deleting session")
		return false, r.db.wrapError(ctx, ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, r.db.wrapError(ctx, ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, createdBefore time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(r.db.builder, createdBefore)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error deleting expired sessions")
		return 0, r.db.wrapError(ctx, ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, r.db.wrapError(ctx, ErrExecutingStatement, err)
	}

	return affected, nil
}
