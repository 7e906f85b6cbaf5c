// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// normalize fills derived fields of the merged config, such as the
// database driver inferred from the DSN.
func (cfg *StructuredConfig) normalize() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = driverFromDSN(cfg.Storage.DB.DSN)
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid...Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if !cfg.App.AuthType.Valid() {
		return fmt.Errorf("%w: unknown auth type %q", ErrInvalidAppConfigs, cfg.App.AuthType)
	}

	if cfg.App.AuthType.UsesSessions() && cfg.App.SessionName == "" {
		return fmt.Errorf("%w: session cookie name is required for %s", ErrInvalidAppConfigs, cfg.App.AuthType)
	}

	switch cfg.App.PasswordHasher {
	case HasherBcrypt, HasherArgon2id:
	default:
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, cfg.App.PasswordHasher)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.Timeout <= 0 {
		return fmt.Errorf("%w: storage timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	return nil
}

func driverFromDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}
