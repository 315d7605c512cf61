package main

import (
	"context"
	"flag"
	"os"
	"path"

	"budget/internal/backend"
	"budget/internal/cli"
	"budget/internal/config"
	"budget/internal/log"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file for local development (ignore errors when absent)
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.New(log.DefaultConfig()).Error("Configuration validation failed", log.FieldError, err.Error())
		os.Exit(1)
	}

	logger := cfg.Logger()
	log.SetDefault(logger)

	ctx := log.WithLogger(context.Background(), logger)
	logger.DebugContext(ctx, "Starting",
		log.FieldOperation, log.OpStartup, log.FieldBackend, cfg.StoreBackend)
	res, err := backend.NewFactory(logger).CreateStore(ctx, backend.ConfigFromAppConfig(cfg))
	if err != nil {
		logger.Error("Failed to initialize store", log.FieldBackend, cfg.StoreBackend, log.FieldError, err.Error())
		os.Exit(1)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cli.Register(commander, &cli.App{
		Store:    res.Store,
		Selector: cfg.MountSelector,
	})

	flag.Parse()
	status := commander.Execute(ctx)

	if err := res.Close(); err != nil {
		logger.Warn("Store cleanup failed", log.FieldError, err.Error())
	}
	os.Exit(int(status))
}
