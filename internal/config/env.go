// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env`, `envPrefix` and
// `envSeparator` tags defined on [StructuredConfig] and its nested types.
// Unset variables leave the corresponding fields at their zero value so that
// lower-priority sources are not overridden during the merge.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type, like "abc" for APP_SESSION_DURATION).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
