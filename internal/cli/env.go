package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-secure-notes/internal/app"
	"github.com/MKhiriev/go-secure-notes/internal/client"
	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/service"
	"github.com/MKhiriev/go-secure-notes/internal/utils"
	"github.com/MKhiriev/go-secure-notes/models"
	"github.com/spf13/cobra"
)

const loggerRole = "secure-notes-cli"

// Connector opens the application runtime for one command.
type Connector func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (client.Client, error)

// commandFunc is the body of a command that works with an open client.
type commandFunc func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error

type commandEnv struct {
	connect Connector
	flags   *config.StructuredConfig
	ids     *utils.OperationIDs
	openLog func(role, path string) (*logger.Logger, io.Closer)
}

// run loads the config, opens the client, optionally unlocks it and calls
// fn. The client is closed before run returns.
func (e *commandEnv) run(cmd *cobra.Command, needsUnlock bool, fn commandFunc) error {
	cfg, err := config.Load(e.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, logFile := e.openLog(loggerRole, cfg.App.LogFile)
	defer logFile.Close()

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = log.WithOperation(ctx, e.ids.Next())
	opLog := logger.FromContext(ctx)
	opLog.Info().Str("func", "commandEnv.run").Str("command", cmd.CommandPath()).Msg("command started")

	c, err := e.connect(ctx, cfg, log)
	if err != nil {
		opLog.Err(err).Str("func", "commandEnv.run").Msg("error opening client")
		return fmt.Errorf("%s: %w", app.MsgStorageUnavailable, err)
	}
	defer func() {
		if closeErr := c.Close(); closeErr != nil {
			opLog.Err(closeErr).Str("func", "commandEnv.run").Msg("error closing client")
		}
	}()

	p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

	if needsUnlock {
		if err = unlock(ctx, c.Auth(), p); err != nil {
			opLog.Warn().Err(err).Str("func", "commandEnv.run").Msg("unlock failed")
			return err
		}
	}

	if err = fn(ctx, cmd, c, p); err != nil {
		opLog.Err(err).Str("func", "commandEnv.run").Str("command", cmd.CommandPath()).Msg("command failed")
		return err
	}
	return nil
}

// unlock tries biometrics first when the user prefers them and falls back to
// a PIN prompt.
func unlock(ctx context.Context, auth service.AuthService, p *prompter) error {
	mode, err := auth.Mode(ctx)
	if err != nil {
		return err
	}

	switch mode {
	case models.AuthModeUnconfigured:
		return service.ErrPinNotConfigured
	case models.AuthModeBiometricPreferred:
		ok, err := auth.Unlock(ctx, models.UnlockRequest{UseBiometric: true})
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}

	pin, err := p.secret("PIN: ")
	if err != nil {
		return err
	}

	ok, err := auth.Unlock(ctx, models.UnlockRequest{PIN: pin})
	if err != nil {
		return err
	}
	if !ok {
		return errWrongPin
	}
	return nil
}
