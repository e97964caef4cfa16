package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/player-insights/internal/config"
	"github.com/riskibarqy/player-insights/internal/domain/metric"
	"github.com/riskibarqy/player-insights/internal/interfaces/httpapi"
	"github.com/riskibarqy/player-insights/internal/observability"
	"github.com/riskibarqy/player-insights/internal/platform/logging"
	"github.com/riskibarqy/player-insights/internal/usecase"
)

// API is the assembled HTTP service.
type API struct {
	Server  *http.Server
	Metrics *observability.Metrics
	close   func() error
}

// Close releases resources held by the dataset source.
func (a *API) Close() error {
	if a == nil || a.close == nil {
		return nil
	}
	return a.close()
}

// NewAPI loads the dataset and builds the HTTP server around it. A malformed
// dataset fails here so the process never serves a partial table.
func NewAPI(ctx context.Context, cfg config.Config, logger *logging.Logger) (*API, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	source, closeSource, err := NewDatasetSource(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build dataset source: %w", err)
	}

	deriver := metric.NewDeriver(metric.WithFairContributionMode(metric.FairContributionMode(cfg.FairContributionMode)))
	datasets := usecase.NewDatasetService(source, deriver, logger)

	view, err := datasets.Load(ctx)
	metrics.ObserveDatasetLoad(err)
	if err != nil {
		_ = closeSource()
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	meta := view.Dataset.Meta()
	metrics.SetDataset(meta.Version, meta.Origin, view.Dataset.Len())

	rankings := usecase.NewRankingService(datasets, usecase.RankingLimits{
		DefaultTopN: cfg.RankingDefaultTopN,
		MaxTopN:     cfg.RankingMaxTopN,
	})
	handler := httpapi.NewHandler(rankings, datasets, metrics, logger)
	router := httpapi.NewRouter(handler, logger, metrics, cfg.CORSAllowedOrigins)

	return &API{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Metrics: metrics,
		close:   closeSource,
	}, nil
}
