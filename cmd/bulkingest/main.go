package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mfranklin/equity-data/internal/bulk"
	"github.com/mfranklin/equity-data/internal/config"
	"github.com/mfranklin/equity-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/server.local.yaml", "path to config file")
	symbolsPath := flag.String("symbols", "", "path to symbols CSV (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting bulk ingestion",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	path := cfg.Bulk.SymbolsPath
	if *symbolsPath != "" {
		path = *symbolsPath
	}

	symbols, err := bulk.LoadSymbols(path)
	if err != nil {
		logger.Error("failed to load symbols", "error", err)
		os.Exit(1)
	}
	logger.Info("symbols loaded", "path", path, "count", len(symbols))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	runner := bulk.NewRunner(cfg.Bulk, logger)

	// The run is best effort: per-call failures are already logged and
	// counted, so only an interrupted run exits non-zero.
	summary, err := runner.Run(ctx, symbols)
	if err != nil {
		logger.Error("bulk run interrupted",
			"error", err,
			"calls", summary.Calls,
			"failures", summary.Failures,
		)
		os.Exit(1)
	}

	logger.Info("bulk run complete",
		"symbols", summary.Symbols,
		"calls", summary.Calls,
		"failures", summary.Failures,
		"inserted", summary.Inserted,
	)
}
