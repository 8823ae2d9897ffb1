package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/crypto"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/secrets"
	"github.com/MKhiriev/go-secure-notes/internal/service"
	"github.com/MKhiriev/go-secure-notes/internal/vault"
)

type App struct {
	services *service.Services
	logger   *logger.Logger
}

type appOptions struct {
	sensor        vault.BiometricSensor
	secretOptions []secrets.Option
}

// Option customises an [App] built by [NewApp].
type Option func(*appOptions)

// WithBiometricSensor sets the sensor used for biometric unlock. Without it
// the vault reports the sensor as unavailable.
func WithBiometricSensor(sensor vault.BiometricSensor) Option {
	return func(o *appOptions) { o.sensor = sensor }
}

// WithSecretsOptions forwards options to [secrets.New].
func WithSecretsOptions(opts ...secrets.Option) Option {
	return func(o *appOptions) { o.secretOptions = append(o.secretOptions, opts...) }
}

// NewApp opens the secret store and builds the services on top of it. The
// notes database itself is opened lazily by the first note operation.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger, opts ...Option) (*App, error) {
	o := &appOptions{sensor: vault.NoSensor{}}
	for _, opt := range opts {
		opt(o)
	}

	secretStore, err := secrets.New(cfg.Storage.Secrets, log, o.secretOptions...)
	if err != nil {
		log.Err(err).Str("func", "client.NewApp").Msg("error opening secret store")
		return nil, fmt.Errorf("open secret store: %w", err)
	}

	cipher := crypto.NewFieldCipher()
	credentialVault := vault.NewCredentialVault(secretStore, cipher, o.sensor, log)

	logger.FromContext(ctx).Debug().
		Str("func", "client.NewApp").
		Str("secrets_backend", cfg.Storage.Secrets.Backend).
		Str("dsn", cfg.Storage.DB.DSN).
		Msg("client app created")

	return &App{
		services: service.NewServices(cfg.Storage.DB, credentialVault, cipher, log),
		logger:   log,
	}, nil
}

func (a *App) Notes() service.NoteStore {
	return a.services.NoteStore
}

func (a *App) Auth() service.AuthService {
	return a.services.AuthService
}

func (a *App) Close() error {
	if err := a.services.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.Close").Msg("error closing services")
		return err
	}
	return nil
}
