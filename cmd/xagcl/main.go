package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/xagcl/internal/adapter"
	"github.com/MKhiriev/xagcl/internal/client"
	"github.com/MKhiriev/xagcl/internal/config"
	"github.com/MKhiriev/xagcl/internal/logger"
	"github.com/MKhiriev/xagcl/internal/service"
	"github.com/MKhiriev/xagcl/internal/store"
	"github.com/MKhiriev/xagcl/internal/tui"
	"github.com/MKhiriev/xagcl/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("xagcl").WithRunID(utils.NewRunIDGenerator().Generate())
	logBuildInfo(log)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fatal(log, err, "error getting configs")
	}

	xagAdapter, err := adapter.NewHTTPXagAdapter(cfg.Adapter, log)
	if err != nil {
		fatal(log, err, "create xag adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		fatal(log, err, "create local storage")
	}

	services, err := service.NewClientServices(cfg, storages, xagAdapter, log)
	if err != nil {
		fatal(log, err, "create client services")
	}

	app, err := client.NewApp(services, tui.New(os.Stdout, os.Stderr), cfg, log)
	if err != nil {
		fatal(log, err, "init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
	log.Info().Msg("client exited")
}

// fatal reports a startup failure on the console and in the log file.
func fatal(log *logger.Logger, err error, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Info().
		Str("version", buildVersion).
		Str("date", buildDate).
		Str("commit", buildCommit).
		Msg("build info")
}
