package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors [StructuredConfig] with JSON and TOML keys.
type fileConfig struct {
	App struct {
		LogFile  string `json:"log_file" toml:"log_file"`
		LogLevel string `json:"log_level" toml:"log_level"`
	} `json:"app" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`

		Secrets struct {
			Backend    string `json:"backend" toml:"backend"`
			Path       string `json:"path" toml:"path"`
			Passphrase string `json:"passphrase" toml:"passphrase"`
		} `json:"secrets" toml:"secrets"`
	} `json:"storage" toml:"storage"`
}

// parseFile reads a JSON or TOML config file. The format is chosen by the
// file extension: ".toml" selects TOML, anything else is parsed as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err = toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	} else {
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			LogFile:  fc.App.LogFile,
			LogLevel: fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: fc.Storage.DB.DSN,
			},
			Secrets: Secrets{
				Backend:    fc.Storage.Secrets.Backend,
				Path:       fc.Storage.Secrets.Path,
				Passphrase: fc.Storage.Secrets.Passphrase,
			},
		},
	}, nil
}
