package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/player-insights/internal/config"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
	"github.com/riskibarqy/player-insights/internal/infrastructure/dataset"
	"github.com/riskibarqy/player-insights/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/player-insights/internal/platform/logging"
	"github.com/riskibarqy/player-insights/internal/platform/resilience"
)

// NewDatasetSource builds the source selected by DATASET_SOURCE. The returned
// close func releases the database handle for the postgres source.
func NewDatasetSource(cfg config.Config, logger *logging.Logger) (schema.Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.DatasetSource {
	case config.SourceFile, "":
		return dataset.NewFileSource(cfg.DatasetPath, cfg.DatasetMaxBytes), noop, nil
	case config.SourceURL:
		return dataset.NewRemoteSource(dataset.RemoteConfig{
			URL:      cfg.DatasetURL,
			Timeout:  cfg.DatasetFetchTimeout,
			MaxBytes: cfg.DatasetMaxBytes,
			Logger:   logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.DatasetCircuitEnabled,
				FailureThreshold: cfg.DatasetCircuitFailureCount,
				OpenTimeout:      cfg.DatasetCircuitOpenTimeout,
				HalfOpenMaxReq:   1,
			},
		}), noop, nil
	case config.SourcePostgres:
		db, err := OpenDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewSnapshotRepository(db), closeDB(db), nil
	default:
		return nil, nil, fmt.Errorf("unsupported dataset source %q", cfg.DatasetSource)
	}
}

func closeDB(db *sqlx.DB) func() error {
	return func() error {
		return db.Close()
	}
}
