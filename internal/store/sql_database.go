// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	defaultStorageTimeout = 5 * time.Second

	connectMaxRetries = 4
	connectBaseDelay  = 250 * time.Millisecond
)

// DB is a database/sql handle bound to one SQL dialect. It carries the
// squirrel statement builder with the dialect's placeholder format, the
// dialect's error classifier and the per-call storage timeout.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	timeout            time.Duration
}

// NewConnect opens the database described by cfg, retrying the open+ping
// sequence with exponential backoff. Retries only happen here, at startup.
func NewConnect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	open, err := opener(cfg.DB.Driver)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("cannot pick database driver")
		return nil, err
	}

	var db *DB
	backoff := retry.WithMaxRetries(connectMaxRetries, retry.NewExponential(connectBaseDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		conn, err := open(ctx, cfg.DB, log)
		if err != nil {
			log.Warn().Err(err).Str("func", "NewConnect").Msg("database is not reachable yet, retrying")
			return retry.RetryableError(err)
		}
		db = conn
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	db.timeout = cfg.Timeout
	if db.timeout <= 0 {
		db.timeout = defaultStorageTimeout
	}
	return db, nil
}

type openFunc func(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error)

func opener(driver string) (openFunc, error) {
	switch driver {
	case config.DriverPostgres:
		return NewConnectPostgres, nil
	case config.DriverSQLite:
		return NewConnectSQLite, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withTimeout bounds a single storage call.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := db.timeout
	if timeout <= 0 {
		timeout = defaultStorageTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// wrapError maps a failed call to [ErrStorageTimeout] when its bounded
// context expired, and wraps every other failure with kind.
func (db *DB) wrapError(ctx context.Context, kind, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrStorageTimeout, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
