// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// processEnviron returns the current process environment as a map suitable
// for parseEnv.
func processEnviron() map[string]string {
	return env.ToMap(os.Environ())
}

// parseEnv fills cfg from environ. Variables are CONFIG, APP_LOG_FILE,
// APP_LOG_LEVEL, STORAGE_DB_DATABASE_URI and STORAGE_SECRETS_{BACKEND,PATH,PASSPHRASE};
// unknown keys are ignored.
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("error reading notes configuration from environment: %w", err)
	}

	return nil
}
