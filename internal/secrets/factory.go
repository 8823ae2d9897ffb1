package secrets

import (
	"fmt"

	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/crypto"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
)

type options struct {
	sealer        crypto.Sealer
	ageWorkFactor int
}

// Option tunes a backend created by [New].
type Option func(*options)

// WithSealer replaces the Argon2id/GCM sealer used by the "file" backend.
func WithSealer(s crypto.Sealer) Option {
	return func(o *options) { o.sealer = s }
}

// WithAgeWorkFactor sets the scrypt work factor (log2 N) used when the "age"
// backend writes its file.
func WithAgeWorkFactor(logN int) Option {
	return func(o *options) { o.ageWorkFactor = logN }
}

// New creates the [Store] selected by cfg.Backend. File backends read and
// decrypt the existing file immediately, so a wrong passphrase is reported
// here and not on first use.
func New(cfg config.Secrets, log *logger.Logger, opts ...Option) (Store, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	log.Debug().Str("func", "secrets.New").Str("backend", cfg.Backend).Msg("opening secret store")

	var c codec
	switch cfg.Backend {
	case config.SecretsBackendMemory:
		return NewMemoryStore(), nil
	case config.SecretsBackendFile:
		sealer := o.sealer
		if sealer == nil {
			sealer = crypto.NewSealer()
		}
		c = newSealedCodec(sealer, cfg.Passphrase)
	case config.SecretsBackendAge:
		c = &ageCodec{passphrase: cfg.Passphrase, workFactor: o.ageWorkFactor}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	s, err := openFileStore(cfg.Path, c, log)
	if err != nil {
		return nil, err
	}
	return s, nil
}
