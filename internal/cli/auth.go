package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-notes/internal/app"
	"github.com/MKhiriev/go-secure-notes/internal/client"
	"github.com/MKhiriev/go-secure-notes/internal/service"
	"github.com/MKhiriev/go-secure-notes/internal/vault"
	"github.com/spf13/cobra"
)

func newSetupCommand(env *commandEnv) *cobra.Command {
	var withBiometric bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set the PIN on first run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.run(cmd, false, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
				pin, err := p.secret("New PIN: ")
				if err != nil {
					return err
				}
				confirm, err := p.secret("Confirm PIN: ")
				if err != nil {
					return err
				}

				if err = c.Auth().SetupPin(ctx, pin, confirm); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), app.MsgPinConfigured)

				if !withBiometric {
					return nil
				}

				// the PIN is set either way; a failed prompt only leaves
				// biometrics off
				err = c.Auth().EnableBiometric(ctx)
				switch {
				case err == nil:
					success(cmd.OutOrStdout(), app.MsgBiometricEnabled)
				case errors.Is(err, vault.ErrSensorUnavailable), errors.Is(err, service.ErrBiometricRejected):
					warning(cmd.ErrOrStderr(), "%s", userMessage(err))
				default:
					return err
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&withBiometric, "biometric", false, "Also enable biometric unlock")

	return cmd
}

func newUnlockCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Check the PIN or biometrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.run(cmd, true, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
				success(cmd.OutOrStdout(), app.MsgUnlocked)
				return nil
			})
		},
	}
}

func newModeCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Print how the notes are unlocked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.run(cmd, false, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
				mode, err := c.Auth().Mode(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), mode.String())
				return nil
			})
		},
	}
}

func newBiometricCommand(env *commandEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "biometric",
		Short: "Manage biometric unlock",
	}

	enableCmd := &cobra.Command{
		Use:   "enable",
		Short: "Prefer biometrics over the PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.run(cmd, true, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
				if err := c.Auth().EnableBiometric(ctx); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), app.MsgBiometricEnabled)
				return nil
			})
		},
	}

	disableCmd := &cobra.Command{
		Use:   "disable",
		Short: "Unlock with the PIN only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.run(cmd, true, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
				if err := c.Auth().DisableBiometric(ctx); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), app.MsgBiometricDisabled)
				return nil
			})
		},
	}

	cmd.AddCommand(enableCmd, disableCmd)
	return cmd
}
