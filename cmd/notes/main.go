package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secure-notes/internal/cli"
	"github.com/MKhiriev/go-secure-notes/internal/client"
	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/models"
	"github.com/awnumar/memguard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	memguard.CatchInterrupt()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)

	rootCmd := cli.NewRootCommand(
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (client.Client, error) {
			return client.NewApp(ctx, cfg, log)
		},
	)

	err := cli.Execute(ctx, rootCmd)
	stop()
	memguard.Purge()
	if err != nil {
		os.Exit(1)
	}
}
