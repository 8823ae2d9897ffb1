// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Secret store backends accepted by [Secrets.Backend].
const (
	SecretsBackendMemory = "memory"
	SecretsBackendFile   = "file"
	SecretsBackendAge    = "age"
)

// StructuredConfig is the top-level configuration container for the
// go-secure-notes application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON/TOML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the notes database and the secure
	// secret store.
	Storage Storage `envPrefix:"STORAGE_"`

	// ConfigFilePath is the optional path to a JSON or TOML configuration
	// file. The format is chosen by extension (".toml" is TOML, anything
	// else is JSON).
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the file the CLI appends structured logs to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the SQLite notes database settings.
	DB DB `envPrefix:"DB_"`

	// Secrets holds the secure secret store settings.
	Secrets Secrets `envPrefix:"SECRETS_"`
}

// DB holds connection settings for the notes database.
type DB struct {
	// DSN is the SQLite database file path, optionally followed by
	// mattn/go-sqlite3 query parameters (e.g. "notes.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Secrets holds settings of the store that keeps the PIN and the note
// encryption keys.
type Secrets struct {
	// Backend is one of "memory", "file" or "age".
	// Env: STORAGE_SECRETS_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the secret file location for the "file" and "age" backends.
	// Env: STORAGE_SECRETS_PATH
	Path string `env:"PATH"`

	// Passphrase unlocks the secret file. Required by the "file" and "age"
	// backends.
	// Env: STORAGE_SECRETS_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// Load assembles the configuration from all sources in the following
// priority order (the first source providing a non-zero field wins):
//  1. Command-line flags (flagCfg, usually produced by [BindFlags])
//  2. Environment variables
//  3. JSON/TOML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func Load(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
