package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/player-insights/internal/domain/metric"
	"github.com/riskibarqy/player-insights/internal/domain/player"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
	"github.com/riskibarqy/player-insights/internal/platform/cache"
	"github.com/riskibarqy/player-insights/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// DatasetView pairs a loaded dataset with the metrics selectable on it.
type DatasetView struct {
	Dataset  *player.Dataset
	Registry *metric.Registry
}

// Info summarizes the view for callers outside the usecase layer.
func (v DatasetView) Info() DatasetInfo {
	meta := v.Dataset.Meta()
	return DatasetInfo{
		Version:  meta.Version,
		Origin:   meta.Origin,
		LoadedAt: meta.LoadedAt,
		Rows:     v.Dataset.Len(),
		Columns:  v.Dataset.Columns(),
		Metrics:  v.Registry.Metrics(),
	}
}

// DatasetProvider hands out the dataset requests should read from.
type DatasetProvider interface {
	Current(ctx context.Context) (DatasetView, error)
}

// DatasetService loads datasets from a source, normalizes and derives them,
// and keeps one immutable view per source version.
type DatasetService struct {
	source  schema.Source
	deriver *metric.Deriver
	views   *cache.Store[DatasetView]
	current atomic.Pointer[DatasetView]
	logger  *logging.Logger
	now     func() time.Time
}

func NewDatasetService(source schema.Source, deriver *metric.Deriver, logger *logging.Logger) *DatasetService {
	if deriver == nil {
		deriver = metric.NewDeriver()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &DatasetService{
		source:  source,
		deriver: deriver,
		views:   cache.NewStore[DatasetView](0),
		logger:  logger,
		now:     time.Now,
	}
}

// Load fetches the source and makes its dataset current. A version that was
// loaded before is served from cache without normalizing again.
func (s *DatasetService) Load(ctx context.Context) (DatasetView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Load")
	defer span.End()

	table, err := s.source.Fetch(ctx)
	if err != nil {
		if errors.Is(err, schema.ErrMalformedInput) {
			return DatasetView{}, fmt.Errorf("fetch dataset: %w", err)
		}
		return DatasetView{}, fmt.Errorf("%w: fetch dataset: %w", ErrDependencyUnavailable, err)
	}

	view, err := s.views.GetOrLoad(ctx, table.Version, func(context.Context) (DatasetView, error) {
		return s.build(table)
	})
	if err != nil {
		return DatasetView{}, err
	}
	span.SetAttributes(
		attribute.String("dataset.version", view.Dataset.Version()),
		attribute.Int("dataset.rows", view.Dataset.Len()),
	)

	if prev := s.current.Swap(&view); prev == nil || prev.Dataset.Version() != view.Dataset.Version() {
		if prev != nil {
			s.views.Delete(ctx, prev.Dataset.Version())
		}
		s.logger.InfoContext(ctx, "dataset loaded",
			"version", view.Dataset.Version(),
			"origin", view.Dataset.Meta().Origin,
			"rows", view.Dataset.Len(),
			"derived_metrics", view.Dataset.DerivedMetrics(),
		)
	}
	return view, nil
}

// Refresh reloads the dataset and reports whether the version changed. When
// the source can probe its version, an unchanged version skips the fetch.
func (s *DatasetService) Refresh(ctx context.Context) (DatasetView, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Refresh")
	defer span.End()

	prev := s.current.Load()
	if prober, ok := s.source.(schema.VersionProber); ok && prev != nil {
		version, found, err := prober.LatestVersion(ctx)
		if err != nil {
			return DatasetView{}, false, fmt.Errorf("%w: probe dataset version: %w", ErrDependencyUnavailable, err)
		}
		if !found || version == prev.Dataset.Version() {
			return *prev, false, nil
		}
	}

	view, err := s.Load(ctx)
	if err != nil {
		return DatasetView{}, false, err
	}
	changed := prev == nil || prev.Dataset.Version() != view.Dataset.Version()
	return view, changed, nil
}

// Current returns the last loaded dataset, loading it on first use.
func (s *DatasetService) Current(ctx context.Context) (DatasetView, error) {
	if view := s.current.Load(); view != nil {
		return *view, nil
	}
	return s.Load(ctx)
}

func (s *DatasetService) build(table schema.RawTable) (DatasetView, error) {
	normalized, err := schema.Normalize(table)
	if err != nil {
		return DatasetView{}, fmt.Errorf("normalize dataset %s: %w", table.Origin, err)
	}

	present := make(map[string]struct{}, len(normalized.Columns))
	for _, column := range normalized.Columns {
		present[column] = struct{}{}
	}
	records, derived := s.deriver.Derive(normalized.Records, func(column string) bool {
		_, ok := present[column]
		return ok
	})

	ds := player.NewDataset(player.Meta{
		Version:  normalized.Version,
		Origin:   normalized.Origin,
		LoadedAt: s.now().UTC(),
	}, normalized.Columns, derived, records)

	return DatasetView{Dataset: ds, Registry: metric.NewRegistry(ds)}, nil
}
