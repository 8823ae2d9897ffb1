package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-secure-notes/internal/client"
	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/mock"
	"github.com/MKhiriev/go-secure-notes/internal/service"
	"github.com/MKhiriev/go-secure-notes/internal/utils"
	"github.com/MKhiriev/go-secure-notes/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testClient struct {
	notes  *mock.MockNoteStore
	auth   *mock.MockAuthService
	closed int
}

func (c *testClient) Notes() service.NoteStore  { return c.notes }
func (c *testClient) Auth() service.AuthService { return c.auth }
func (c *testClient) Close() error {
	c.closed++
	return nil
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	ctrl := gomock.NewController(t)

	return &testClient{
		notes: mock.NewMockNoteStore(ctrl),
		auth:  mock.NewMockAuthService(ctrl),
	}
}

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the command tree against c with the given stdin. Storage
// flags point at a temp dir so the real config loader passes validation.
func runCLI(t *testing.T, c client.Client, stdin string, args ...string) cliResult {
	t.Helper()

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	t.Setenv("CONFIG", "")
	t.Setenv("STORAGE_SECRETS_PASSPHRASE", "")

	dir := t.TempDir()
	connect := func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (client.Client, error) {
		assert.Equal(t, config.SecretsBackendMemory, cfg.Storage.Secrets.Backend)
		return c, nil
	}

	root := NewRootCommand(models.NewAppBuildInfo("v1.0.0", "2026-10-01", "4f2a9c1"), connect)
	root.SetArgs(append(args,
		"--secrets-backend=memory",
		"--dsn="+filepath.Join(dir, "notes.db"),
		"--log-file="+filepath.Join(dir, "notes.log"),
	))

	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := Execute(context.Background(), root)

	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func expectPinUnlock(c *testClient, pin string, ok bool) {
	c.auth.EXPECT().Mode(gomock.Any()).Return(models.AuthModePinOnly, nil)
	c.auth.EXPECT().Unlock(gomock.Any(), models.UnlockRequest{PIN: pin}).Return(ok, nil)
}

func TestVersion(t *testing.T) {
	res := runCLI(t, nil, "", "version")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Build version: v1.0.0")
	assert.Contains(t, res.stdout, "Build commit: 4f2a9c1")
}

func TestRun_ConnectFailure(t *testing.T) {
	t.Setenv("CONFIG", "")
	dir := t.TempDir()
	connectErr := errors.New("disk on fire")

	root := NewRootCommand(models.NewAppBuildInfo("", "", ""),
		func(context.Context, *config.StructuredConfig, *logger.Logger) (client.Client, error) {
			return nil, connectErr
		})
	root.SetArgs([]string{"mode",
		"--secrets-backend=memory",
		"--dsn=" + filepath.Join(dir, "notes.db"),
		"--log-file=" + filepath.Join(dir, "notes.log"),
	})
	var stderr bytes.Buffer
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)

	err := Execute(context.Background(), root)

	require.ErrorIs(t, err, connectErr)
	assert.Contains(t, stderr.String(), "secure storage unavailable")
}

type trackingCloser struct{ closed int }

func (c *trackingCloser) Close() error {
	c.closed++
	return nil
}

func TestRun_ClosesLogFile(t *testing.T) {
	t.Setenv("CONFIG", "")
	dir := t.TempDir()
	c := newTestClient(t)
	c.auth.EXPECT().Mode(gomock.Any()).Return(models.AuthModePinOnly, nil)

	logFile := &trackingCloser{}
	cmd := &cobra.Command{Use: "mode"}
	env := &commandEnv{
		connect: func(context.Context, *config.StructuredConfig, *logger.Logger) (client.Client, error) {
			return c, nil
		},
		flags: config.BindFlags(cmd.Flags()),
		ids:   utils.NewOperationIDs(),
		openLog: func(role, path string) (*logger.Logger, io.Closer) {
			assert.Equal(t, filepath.Join(dir, "notes.log"), path)
			return logger.Nop(), logFile
		},
	}
	require.NoError(t, cmd.ParseFlags([]string{
		"--secrets-backend=memory",
		"--dsn=" + filepath.Join(dir, "notes.db"),
		"--log-file=" + filepath.Join(dir, "notes.log"),
	}))
	cmd.SetContext(context.Background())

	err := env.run(cmd, false, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
		_, err := c.Auth().Mode(ctx)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, logFile.closed)
	assert.Equal(t, 1, c.closed)
}

func TestRun_InvalidConfig(t *testing.T) {
	c := newTestClient(t)

	res := runCLI(t, c, "", "mode", "--log-level=loud")

	require.ErrorIs(t, res.err, config.ErrInvalidAppConfigs)
	assert.Equal(t, 0, c.closed)
}

func TestUnlock(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		setup   func(c *testClient)
		wantErr error
		wantOut string
	}{
		{
			name:  "pin accepted",
			stdin: "1234\n",
			setup: func(c *testClient) {
				expectPinUnlock(c, "1234", true)
			},
			wantOut: "unlocked",
		},
		{
			name:  "wrong pin",
			stdin: "9999\n",
			setup: func(c *testClient) {
				expectPinUnlock(c, "9999", false)
			},
			wantErr: errWrongPin,
		},
		{
			name: "not configured",
			setup: func(c *testClient) {
				c.auth.EXPECT().Mode(gomock.Any()).Return(models.AuthModeUnconfigured, nil)
			},
			wantErr: service.ErrPinNotConfigured,
		},
		{
			name: "biometric accepted skips pin prompt",
			setup: func(c *testClient) {
				c.auth.EXPECT().Mode(gomock.Any()).Return(models.AuthModeBiometricPreferred, nil)
				c.auth.EXPECT().Unlock(gomock.Any(), models.UnlockRequest{UseBiometric: true}).Return(true, nil)
			},
			wantOut: "unlocked",
		},
		{
			name:  "biometric declined falls back to pin",
			stdin: "1234\n",
			setup: func(c *testClient) {
				c.auth.EXPECT().Mode(gomock.Any()).Return(models.AuthModeBiometricPreferred, nil)
				c.auth.EXPECT().Unlock(gomock.Any(), models.UnlockRequest{UseBiometric: true}).Return(false, nil)
				c.auth.EXPECT().Unlock(gomock.Any(), models.UnlockRequest{PIN: "1234"}).Return(true, nil)
			},
			wantOut: "unlocked",
		},
		{
			name:  "no input",
			stdin: "",
			setup: func(c *testClient) {
				c.auth.EXPECT().Mode(gomock.Any()).Return(models.AuthModePinOnly, nil)
			},
			wantErr: errNoInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t)
			tt.setup(c)

			res := runCLI(t, c, tt.stdin, "unlock")

			if tt.wantErr != nil {
				require.ErrorIs(t, res.err, tt.wantErr)
				assert.Contains(t, res.stderr, "✗")
			} else {
				require.NoError(t, res.err)
				assert.Contains(t, res.stdout, tt.wantOut)
			}
			assert.Equal(t, 1, c.closed)
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{service.ErrPinNotConfigured, `no PIN configured, run "notes setup" first`},
		{service.ErrNotFound, "note not found"},
		{errWrongPin, "wrong PIN"},
		{errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}
