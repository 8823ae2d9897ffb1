// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	// An in-memory SQLite database lives per connection; the pool would
	// hand out empty databases.
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.Secrets.Backend {
	case SecretsBackendMemory:
	case SecretsBackendFile, SecretsBackendAge:
		if cfg.Storage.Secrets.Path == "" {
			return fmt.Errorf("%w: %s backend requires a path", ErrInvalidSecretsConfigs, cfg.Storage.Secrets.Backend)
		}
		if cfg.Storage.Secrets.Passphrase == "" {
			return fmt.Errorf("%w: %s backend requires a passphrase", ErrInvalidSecretsConfigs, cfg.Storage.Secrets.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSecretsConfigs, cfg.Storage.Secrets.Backend)
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
