package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/utils"
	"github.com/MKhiriev/go-secure-notes/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the "notes" command tree.
func NewRootCommand(info models.AppBuildInfo, connect Connector) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "notes",
		Short:         "Encrypted personal notes",
		Long:          "Encrypted personal notes protected by a PIN and, optionally, biometrics.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	env := &commandEnv{
		connect: connect,
		flags:   config.BindFlags(rootCmd.PersistentFlags()),
		ids:     utils.NewOperationIDs(),
		openLog: logger.NewFileLogger,
	}

	rootCmd.AddCommand(
		newSetupCommand(env),
		newUnlockCommand(env),
		newModeCommand(env),
		newBiometricCommand(env),
		newAddCommand(env),
		newListCommand(env),
		newShowCommand(env),
		newEditCommand(env),
		newRemoveCommand(env),
		newCopyCommand(env),
		newVersionCommand(info),
	)

	return rootCmd
}

// Execute runs the command tree and prints a failure to stderr.
func Execute(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), color.RedString("✗"), userMessage(err))
	}
	return err
}

func success(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

func warning(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.YellowString("!"), fmt.Sprintf(format, a...))
}

func newVersionCommand(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
		},
	}
}
