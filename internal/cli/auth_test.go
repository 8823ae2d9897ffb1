package cli

import (
	"testing"

	"github.com/MKhiriev/go-secure-notes/internal/service"
	"github.com/MKhiriev/go-secure-notes/internal/vault"
	"github.com/MKhiriev/go-secure-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		args       []string
		setup      func(c *testClient)
		wantErr    error
		wantOut    []string
		wantStderr string
	}{
		{
			name:  "pin only",
			stdin: "1234\n1234\n",
			setup: func(c *testClient) {
				c.auth.EXPECT().SetupPin(gomock.Any(), "1234", "1234").Return(nil)
			},
			wantOut: []string{"PIN configured"},
		},
		{
			name:  "mismatch",
			stdin: "1234\n4321\n",
			setup: func(c *testClient) {
				c.auth.EXPECT().SetupPin(gomock.Any(), "1234", "4321").Return(service.ErrPinMismatch)
			},
			wantErr: service.ErrPinMismatch,
		},
		{
			name:  "already configured",
			stdin: "1234\n1234\n",
			setup: func(c *testClient) {
				c.auth.EXPECT().SetupPin(gomock.Any(), "1234", "1234").Return(service.ErrPinAlreadyConfigured)
			},
			wantErr: service.ErrPinAlreadyConfigured,
		},
		{
			name:    "confirmation missing",
			stdin:   "1234\n",
			setup:   func(c *testClient) {},
			wantErr: errNoInput,
		},
		{
			name:  "with biometric",
			stdin: "1234\n1234\n",
			args:  []string{"--biometric"},
			setup: func(c *testClient) {
				c.auth.EXPECT().SetupPin(gomock.Any(), "1234", "1234").Return(nil)
				c.auth.EXPECT().EnableBiometric(gomock.Any()).Return(nil)
			},
			wantOut: []string{"PIN configured", "biometric unlock enabled"},
		},
		{
			name:  "biometric unavailable still succeeds",
			stdin: "1234\n1234\n",
			args:  []string{"--biometric"},
			setup: func(c *testClient) {
				c.auth.EXPECT().SetupPin(gomock.Any(), "1234", "1234").Return(nil)
				c.auth.EXPECT().EnableBiometric(gomock.Any()).Return(vault.ErrSensorUnavailable)
			},
			wantOut:    []string{"PIN configured"},
			wantStderr: "no biometric sensor available",
		},
		{
			name:  "biometric storage failure",
			stdin: "1234\n1234\n",
			args:  []string{"--biometric"},
			setup: func(c *testClient) {
				c.auth.EXPECT().SetupPin(gomock.Any(), "1234", "1234").Return(nil)
				c.auth.EXPECT().EnableBiometric(gomock.Any()).Return(vault.ErrStorageUnavailable)
			},
			wantErr: vault.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t)
			tt.setup(c)

			res := runCLI(t, c, tt.stdin, append([]string{"setup"}, tt.args...)...)

			if tt.wantErr != nil {
				require.ErrorIs(t, res.err, tt.wantErr)
				return
			}
			require.NoError(t, res.err)
			for _, want := range tt.wantOut {
				assert.Contains(t, res.stdout, want)
			}
			assert.Contains(t, res.stderr, tt.wantStderr)
			assert.Contains(t, res.stderr, "New PIN: ")
		})
	}
}

func TestMode(t *testing.T) {
	c := newTestClient(t)
	c.auth.EXPECT().Mode(gomock.Any()).Return(models.AuthModeBiometricPreferred, nil)

	res := runCLI(t, c, "", "mode")

	require.NoError(t, res.err)
	assert.Equal(t, "biometric\n", res.stdout)
}

func TestBiometric(t *testing.T) {
	t.Run("enable", func(t *testing.T) {
		c := newTestClient(t)
		expectPinUnlock(c, "1234", true)
		c.auth.EXPECT().EnableBiometric(gomock.Any()).Return(nil)

		res := runCLI(t, c, "1234\n", "biometric", "enable")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "biometric unlock enabled")
	})

	t.Run("enable rejected", func(t *testing.T) {
		c := newTestClient(t)
		expectPinUnlock(c, "1234", true)
		c.auth.EXPECT().EnableBiometric(gomock.Any()).Return(service.ErrBiometricRejected)

		res := runCLI(t, c, "1234\n", "biometric", "enable")

		require.ErrorIs(t, res.err, service.ErrBiometricRejected)
		assert.Contains(t, res.stderr, "biometric check was not confirmed")
	})

	t.Run("disable", func(t *testing.T) {
		c := newTestClient(t)
		expectPinUnlock(c, "1234", true)
		c.auth.EXPECT().DisableBiometric(gomock.Any()).Return(nil)

		res := runCLI(t, c, "1234\n", "biometric", "disable")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "biometric unlock disabled")
	})
}
