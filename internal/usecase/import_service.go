package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/player-insights/internal/domain/player"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
	"github.com/riskibarqy/player-insights/internal/platform/logging"
)

const (
	importStatusImported = "imported"
	importStatusSkipped  = "skipped"
	importStatusFailed   = "failed"
)

type ImportItem struct {
	Origin     string `json:"origin"`
	Version    string `json:"version,omitempty"`
	Rows       int    `json:"rows"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type ImportResult struct {
	Items         []ImportItem `json:"items"`
	ImportedCount int          `json:"imported"`
	SkippedCount  int          `json:"skipped"`
	FailedCount   int          `json:"failed"`
}

// ImportService normalizes dataset sources and stores them as snapshots.
type ImportService struct {
	repo    player.SnapshotRepository
	workers int
	logger  *logging.Logger
	now     func() time.Time
}

func NewImportService(repo player.SnapshotRepository, workers int, logger *logging.Logger) *ImportService {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{repo: repo, workers: workers, logger: logger, now: time.Now}
}

// Import processes sources concurrently. One failing source does not stop the
// others; the result lists every source sorted by origin.
func (s *ImportService) Import(ctx context.Context, sources []schema.Source) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import")
	defer span.End()

	if len(sources) == 0 {
		return ImportResult{}, fmt.Errorf("%w: at least one source is required", ErrInvalidInput)
	}

	pool, err := ants.NewPool(min(s.workers, len(sources)))
	if err != nil {
		return ImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan ImportItem, len(sources))
	var imported, skipped, failed atomic.Int32

	var workers sync.WaitGroup
	for _, src := range sources {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			item := s.importOne(ctx, src)
			switch item.Status {
			case importStatusImported:
				imported.Add(1)
			case importStatusSkipped:
				skipped.Add(1)
			default:
				failed.Add(1)
			}
			results <- item
		}); err != nil {
			workers.Done()
			return ImportResult{}, fmt.Errorf("submit import to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := ImportResult{
		ImportedCount: int(imported.Load()),
		SkippedCount:  int(skipped.Load()),
		FailedCount:   int(failed.Load()),
	}
	for item := range results {
		out.Items = append(out.Items, item)
	}
	sort.SliceStable(out.Items, func(i, j int) bool {
		return out.Items[i].Origin < out.Items[j].Origin
	})
	return out, nil
}

func (s *ImportService) importOne(ctx context.Context, src schema.Source) ImportItem {
	start := time.Now()
	item := ImportItem{Status: importStatusFailed}
	finish := func() ImportItem {
		item.DurationMs = time.Since(start).Milliseconds()
		return item
	}
	if named, ok := src.(fmt.Stringer); ok {
		item.Origin = named.String()
	}

	table, err := src.Fetch(ctx)
	if err != nil {
		item.Message = err.Error()
		s.logger.WarnContext(ctx, "dataset fetch failed", "origin", item.Origin, "error", err)
		return finish()
	}
	item.Origin = table.Origin
	item.Version = table.Version

	normalized, err := schema.Normalize(table)
	if err != nil {
		item.Message = err.Error()
		s.logger.WarnContext(ctx, "dataset rejected", "origin", table.Origin, "error", err)
		return finish()
	}
	item.Rows = len(normalized.Records)

	created, err := s.repo.SaveSnapshot(ctx, player.Snapshot{
		Version:    normalized.Version,
		Origin:     normalized.Origin,
		Columns:    normalized.Columns,
		Records:    normalized.Records,
		ImportedAt: s.now().UTC(),
	})
	switch {
	case err != nil:
		item.Message = err.Error()
		if errors.Is(err, context.Canceled) {
			item.Message = "import canceled"
		}
		s.logger.ErrorContext(ctx, "save snapshot failed", "origin", table.Origin, "version", table.Version, "error", err)
	case !created:
		item.Status = importStatusSkipped
		item.Message = "version already imported"
	default:
		item.Status = importStatusImported
		s.logger.InfoContext(ctx, "snapshot imported", "origin", table.Origin, "version", table.Version, "rows", item.Rows)
	}
	return finish()
}
