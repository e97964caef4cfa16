package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/player-insights/internal/app"
	"github.com/riskibarqy/player-insights/internal/config"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
	"github.com/riskibarqy/player-insights/internal/infrastructure/dataset"
	"github.com/riskibarqy/player-insights/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/player-insights/internal/platform/logging"
	"github.com/riskibarqy/player-insights/internal/platform/resilience"
	"github.com/riskibarqy/player-insights/internal/usecase"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.csv|https://...> [...]\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", "player-insights-importer")
	logging.SetDefault(logger)

	db, err := app.OpenDB(cfg)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service := usecase.NewImportService(postgres.NewSnapshotRepository(db), cfg.ImportWorkers, logger)
	result, err := service.Import(ctx, sourcesFromArgs(cfg, logger, os.Args[1:]))
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}

	out, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode import result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	logger.Info("import finished",
		"imported", result.ImportedCount,
		"skipped", result.SkippedCount,
		"failed", result.FailedCount,
	)
	_ = logger.Sync()
	if result.FailedCount > 0 {
		os.Exit(1)
	}
}

func sourcesFromArgs(cfg config.Config, logger *logging.Logger, args []string) []schema.Source {
	sources := make([]schema.Source, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			sources = append(sources, dataset.NewRemoteSource(dataset.RemoteConfig{
				URL:            arg,
				Timeout:        cfg.DatasetFetchTimeout,
				MaxBytes:       cfg.DatasetMaxBytes,
				Logger:         logger,
				CircuitBreaker: resilience.CircuitBreakerConfig{},
			}))
			continue
		}
		sources = append(sources, dataset.NewFileSource(arg, cfg.DatasetMaxBytes))
	}
	return sources
}
