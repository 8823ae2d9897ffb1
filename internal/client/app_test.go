package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/mock"
	"github.com/MKhiriev/go-secure-notes/internal/secrets"
	"github.com/MKhiriev/go-secure-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig(t *testing.T, backend string) *config.StructuredConfig {
	t.Helper()
	dir := t.TempDir()

	return &config.StructuredConfig{
		Storage: config.Storage{
			DB: config.DB{DSN: filepath.Join(dir, "notes.db")},
			Secrets: config.Secrets{
				Backend:    backend,
				Path:       filepath.Join(dir, "secrets.json"),
				Passphrase: "correct horse battery staple",
			},
		},
	}
}

func TestNewApp_FullFlow(t *testing.T) {
	ctx := context.Background()

	app, err := NewApp(ctx, testConfig(t, config.SecretsBackendMemory), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	mode, err := app.Auth().Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AuthModeUnconfigured, mode)

	require.NoError(t, app.Auth().SetupPin(ctx, "1234", "1234"))

	ok, err := app.Auth().Unlock(ctx, models.UnlockRequest{PIN: "1234"})
	require.NoError(t, err)
	assert.True(t, ok)

	note, err := app.Notes().AddNote(ctx, "Groceries", "Milk, eggs")
	require.NoError(t, err)

	listing, err := app.Notes().GetNotes(ctx)
	require.NoError(t, err)
	require.Len(t, listing.Notes, 1)
	assert.Equal(t, note.ID, listing.Notes[0].ID)
	assert.Equal(t, "Milk, eggs", listing.Notes[0].Content)
}

func TestNewApp_FileBackendPersistsAcrossRuns(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.SecretsBackendFile)

	first, err := NewApp(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Auth().SetupPin(ctx, "2468", "2468"))
	_, err = first.Notes().AddNote(ctx, "Title", "Body")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewApp(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	ok, err := second.Auth().Unlock(ctx, models.UnlockRequest{PIN: "2468"})
	require.NoError(t, err)
	assert.True(t, ok)

	listing, err := second.Notes().GetNotes(ctx)
	require.NoError(t, err)
	require.Len(t, listing.Notes, 1)
	assert.Equal(t, "Body", listing.Notes[0].Content)
	assert.Empty(t, listing.SkippedIDs)
}

func TestNewApp_AgeBackendWithOptions(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.SecretsBackendAge)

	ctrl := gomock.NewController(t)
	sensor := mock.NewMockBiometricSensor(ctrl)
	sensor.EXPECT().IsSensorAvailable(gomock.Any()).Return(true, nil).AnyTimes()
	sensor.EXPECT().Prompt(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()

	app, err := NewApp(ctx, cfg, logger.Nop(),
		WithBiometricSensor(sensor),
		WithSecretsOptions(secrets.WithAgeWorkFactor(10)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.NoError(t, app.Auth().SetupPin(ctx, "1357", "1357"))
	require.NoError(t, app.Auth().EnableBiometric(ctx))

	mode, err := app.Auth().Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AuthModeBiometricPreferred, mode)

	ok, err := app.Auth().Unlock(ctx, models.UnlockRequest{UseBiometric: true})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewApp_UnknownBackend(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t, "keyring"), logger.Nop())

	require.ErrorIs(t, err, secrets.ErrUnknownBackend)
	assert.Nil(t, app)
}

func TestApp_CloseTwice(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t, config.SecretsBackendMemory), logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Close())
	assert.NoError(t, app.Close())
}
