package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/player-insights/internal/domain/metric"
	"github.com/riskibarqy/player-insights/internal/domain/player"
	"github.com/riskibarqy/player-insights/internal/domain/ranking"
)

// RankingLimits bounds the top-N a caller may ask for.
type RankingLimits struct {
	DefaultTopN int
	MaxTopN     int
}

type RankingService struct {
	datasets DatasetProvider
	limits   RankingLimits
}

func NewRankingService(datasets DatasetProvider, limits RankingLimits) *RankingService {
	if limits.DefaultTopN <= 0 {
		limits.DefaultTopN = ranking.DefaultTopN
	}
	if limits.MaxTopN < limits.DefaultTopN {
		limits.MaxTopN = limits.DefaultTopN
	}
	return &RankingService{datasets: datasets, limits: limits}
}

type DatasetInfo struct {
	Version  string
	Origin   string
	LoadedAt time.Time
	Rows     int
	Columns  []string
	Metrics  []metric.Metric
}

// Ranking is a top-N result labelled with the canonical metric name.
type Ranking struct {
	Metric  string
	Entries []ranking.Entry
}

// Comparison is a per-player series labelled with the canonical metric name.
type Comparison struct {
	Metric string
	Points []ranking.Point
}

type RankInput struct {
	Squad      string
	Position   string
	MinMinutes float64
	Metric     string
	TopN       int
}

type CompareInput struct {
	Players []string
	Metric  string
}

func (s *RankingService) DatasetInfo(ctx context.Context) (DatasetInfo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.DatasetInfo")
	defer span.End()

	view, err := s.datasets.Current(ctx)
	if err != nil {
		return DatasetInfo{}, err
	}
	return view.Info(), nil
}

func (s *RankingService) ListMetrics(ctx context.Context) ([]metric.Metric, error) {
	view, err := s.datasets.Current(ctx)
	if err != nil {
		return nil, err
	}
	return view.Registry.Metrics(), nil
}

// PlayerTable is a set of records together with the metrics that can be
// read from them.
type PlayerTable struct {
	Metrics []metric.Metric
	Records []player.Record
}

// ListPlayers returns every record passing filter, in dataset order.
func (s *RankingService) ListPlayers(ctx context.Context, filter ranking.Filter) (PlayerTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.ListPlayers")
	defer span.End()

	if filter.MinMinutes < 0 {
		return PlayerTable{}, fmt.Errorf("%w: min_minutes must be >= 0", ErrInvalidInput)
	}
	view, err := s.datasets.Current(ctx)
	if err != nil {
		return PlayerTable{}, err
	}
	return PlayerTable{
		Metrics: view.Registry.Metrics(),
		Records: filter.Apply(view.Dataset),
	}, nil
}

// GetPlayer looks a player up by exact name. The table holds one record.
func (s *RankingService) GetPlayer(ctx context.Context, name string) (PlayerTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.GetPlayer")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return PlayerTable{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	view, err := s.datasets.Current(ctx)
	if err != nil {
		return PlayerTable{}, err
	}
	rec, ok := view.Dataset.Find(name)
	if !ok {
		return PlayerTable{}, fmt.Errorf("%w: player=%s", ErrNotFound, name)
	}
	return PlayerTable{
		Metrics: view.Registry.Metrics(),
		Records: []player.Record{rec},
	}, nil
}

// SquadOptions lists squads for a dropdown, starting with "All".
func (s *RankingService) SquadOptions(ctx context.Context) ([]string, error) {
	view, err := s.datasets.Current(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.Options(view.Dataset.Squads()), nil
}

// PositionOptions lists primary positions for a dropdown, starting with "All".
func (s *RankingService) PositionOptions(ctx context.Context) ([]string, error) {
	view, err := s.datasets.Current(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.Options(view.Dataset.Positions()), nil
}

func (s *RankingService) Rank(ctx context.Context, input RankInput) (Ranking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Rank")
	defer span.End()

	params, err := s.rankParams(input)
	if err != nil {
		return Ranking{}, err
	}
	view, err := s.datasets.Current(ctx)
	if err != nil {
		return Ranking{}, err
	}
	m, err := view.Registry.Lookup(params.Metric)
	if err != nil {
		return Ranking{}, fmt.Errorf("rank players: %w", err)
	}
	params.Metric = m.Name

	entries, err := ranking.Rank(view.Dataset, view.Registry, params)
	if err != nil {
		return Ranking{}, fmt.Errorf("rank players: %w", err)
	}
	return Ranking{Metric: m.Name, Entries: entries}, nil
}

func (s *RankingService) Compare(ctx context.Context, input CompareInput) (Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Compare")
	defer span.End()

	players := make([]string, 0, len(input.Players))
	for _, name := range input.Players {
		if name = strings.TrimSpace(name); name != "" {
			players = append(players, name)
		}
	}
	if len(players) == 0 {
		return Comparison{}, fmt.Errorf("%w: at least one player is required", ErrInvalidInput)
	}
	metricName := strings.TrimSpace(input.Metric)
	if metricName == "" {
		return Comparison{}, fmt.Errorf("%w: metric is required", ErrInvalidInput)
	}

	view, err := s.datasets.Current(ctx)
	if err != nil {
		return Comparison{}, err
	}
	m, err := view.Registry.Lookup(metricName)
	if err != nil {
		return Comparison{}, fmt.Errorf("compare players: %w", err)
	}
	points, err := ranking.Compare(view.Dataset, view.Registry, ranking.Request{Players: players, Metric: m.Name})
	if err != nil {
		if errors.Is(err, ranking.ErrEmptySelection) {
			return Comparison{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return Comparison{}, fmt.Errorf("compare players: %w", err)
	}
	return Comparison{Metric: m.Name, Points: points}, nil
}

func (s *RankingService) SquadSummary(ctx context.Context, squad, metricName string, minMinutes float64) (ranking.SquadSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.SquadSummary")
	defer span.End()

	squad = strings.TrimSpace(squad)
	if squad == "" || squad == ranking.All {
		return ranking.SquadSummary{}, fmt.Errorf("%w: squad is required", ErrInvalidInput)
	}
	if minMinutes < 0 {
		return ranking.SquadSummary{}, fmt.Errorf("%w: min_minutes must be >= 0", ErrInvalidInput)
	}
	if strings.TrimSpace(metricName) == "" {
		return ranking.SquadSummary{}, fmt.Errorf("%w: metric is required", ErrInvalidInput)
	}

	view, err := s.datasets.Current(ctx)
	if err != nil {
		return ranking.SquadSummary{}, err
	}
	if !slices.Contains(view.Dataset.Squads(), squad) {
		return ranking.SquadSummary{}, fmt.Errorf("%w: squad=%s", ErrNotFound, squad)
	}

	summary, err := ranking.Summarize(view.Dataset, view.Registry, squad, metricName, minMinutes)
	if err != nil {
		return ranking.SquadSummary{}, fmt.Errorf("summarize squad: %w", err)
	}
	return summary, nil
}

func (s *RankingService) rankParams(input RankInput) (ranking.Params, error) {
	if input.MinMinutes < 0 {
		return ranking.Params{}, fmt.Errorf("%w: min_minutes must be >= 0", ErrInvalidInput)
	}
	if input.TopN < 0 {
		return ranking.Params{}, fmt.Errorf("%w: top_n must be > 0", ErrInvalidInput)
	}
	if input.TopN > s.limits.MaxTopN {
		return ranking.Params{}, fmt.Errorf("%w: top_n must be <= %d", ErrInvalidInput, s.limits.MaxTopN)
	}
	metricName := strings.TrimSpace(input.Metric)
	if metricName == "" {
		return ranking.Params{}, fmt.Errorf("%w: metric is required", ErrInvalidInput)
	}

	topN := s.EffectiveTopN(input.TopN)
	return ranking.Params{
		Squad:      defaultAll(input.Squad),
		Position:   defaultAll(input.Position),
		MinMinutes: input.MinMinutes,
		Metric:     metricName,
		TopN:       topN,
	}, nil
}

// EffectiveTopN resolves a requested top-N, where 0 means the default.
func (s *RankingService) EffectiveTopN(requested int) int {
	if requested <= 0 {
		return s.limits.DefaultTopN
	}
	return requested
}

func defaultAll(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ranking.All
	}
	return v
}
