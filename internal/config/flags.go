package config

import "github.com/spf13/pflag"

// BindFlags registers the configuration flags on fs and returns the config
// they populate. The returned value is filled in when fs is parsed (cobra
// does this before running a command) and is meant to be passed to [Load].
//
// Flags:
//
//	-d, --dsn                SQLite database path
//	    --secrets-backend    secret store backend (memory|file|age)
//	    --secrets-path       secret store file path
//	-c, --config             JSON or TOML config file path
//	    --log-file           log file path
//	    --log-level          log level (debug|info|warn|error)
//
// The secret store passphrase is deliberately not a flag: command lines end
// up in shell history and process listings. Use STORAGE_SECRETS_PASSPHRASE
// or the config file.
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "SQLite database path")
	fs.StringVar(&cfg.Storage.Secrets.Backend, "secrets-backend", "", "Secret store backend: memory, file or age")
	fs.StringVar(&cfg.Storage.Secrets.Path, "secrets-path", "", "Secret store file path")
	fs.StringVarP(&cfg.ConfigFilePath, "config", "c", "", "JSON or TOML config file path")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	return cfg
}
