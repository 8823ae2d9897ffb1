package config

import (
	"os"
	"path/filepath"
)

const (
	defaultDataDirName = ".secure-notes"
	defaultDBFile      = "notes.db"
	defaultSecretsFile = "secrets.bin"
	defaultLogFile     = "notes.log"
	defaultLogLevel    = "info"
)

// DefaultDataDir returns the directory holding the database, the secret file
// and the log file when nothing else is configured: ~/.secure-notes, or
// ./.secure-notes when the home directory cannot be determined.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return defaultDataDirName
	}
	return filepath.Join(home, defaultDataDirName)
}

func defaultConfig() *StructuredConfig {
	dir := DefaultDataDir()

	return &StructuredConfig{
		App: App{
			LogFile:  filepath.Join(dir, defaultLogFile),
			LogLevel: defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: filepath.Join(dir, defaultDBFile),
			},
			Secrets: Secrets{
				Backend: SecretsBackendFile,
				Path:    filepath.Join(dir, defaultSecretsFile),
			},
		},
	}
}
