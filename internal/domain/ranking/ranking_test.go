package ranking

import (
	"errors"
	"testing"

	"github.com/riskibarqy/player-insights/internal/domain/metric"
	"github.com/riskibarqy/player-insights/internal/domain/player"
)

var baseColumns = []string{
	player.ColumnPlayer, player.ColumnSquad, player.ColumnPosition,
	player.ColumnMinutesPlayed, player.ColumnGoals, player.ColumnAssists,
}

func buildDataset(t *testing.T, records ...player.Record) (*player.Dataset, *metric.Registry) {
	t.Helper()

	present := make(map[string]struct{}, len(baseColumns))
	for _, c := range baseColumns {
		present[c] = struct{}{}
	}
	derived, names := metric.NewDeriver().Derive(records, func(c string) bool {
		_, ok := present[c]
		return ok
	})
	ds := player.NewDataset(player.Meta{Version: "test"}, baseColumns, names, derived)
	return ds, metric.NewRegistry(ds)
}

func exampleDataset(t *testing.T) (*player.Dataset, *metric.Registry) {
	return buildDataset(t,
		player.Record{Player: "A", Squad: "X", Position: "FW", MinutesPlayed: 1000, Goals: 10, Assists: 5},
		player.Record{Player: "B", Squad: "X", Position: "FW", MinutesPlayed: 200, Goals: 3, Assists: 0},
	)
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Record.Player
	}
	return out
}

func TestRank_TopOneBySquad(t *testing.T) {
	t.Parallel()

	ds, reg := exampleDataset(t)
	got, err := Rank(ds, reg, Params{Squad: "X", Position: All, Metric: "Goals", TopN: 1})
	if err != nil {
		t.Fatalf("Rank error: %v", err)
	}
	if len(got) != 1 || got[0].Record.Player != "A" || got[0].Rank != 1 || got[0].Value != 10 {
		t.Fatalf("unexpected ranking: %+v", got)
	}
}

func TestRank_MinMinutesFiltersAcrossMetrics(t *testing.T) {
	t.Parallel()

	ds, reg := exampleDataset(t)
	for _, m := range reg.Names() {
		got, err := Rank(ds, reg, Params{Squad: All, Position: All, MinMinutes: 500, Metric: m})
		if err != nil {
			t.Fatalf("Rank(%s) error: %v", m, err)
		}
		if n := names(got); len(n) != 1 || n[0] != "A" {
			t.Fatalf("Rank(%s) = %v, want [A]", m, n)
		}
	}
}

func TestRank_MinMinutesIsInclusive(t *testing.T) {
	t.Parallel()

	ds, reg := exampleDataset(t)
	got, err := Rank(ds, reg, Params{MinMinutes: 200, Metric: "Goals"})
	if err != nil {
		t.Fatalf("Rank error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both players at the 200 minute boundary, got %v", names(got))
	}
}

func TestRank_StableOnTies(t *testing.T) {
	t.Parallel()

	ds, reg := buildDataset(t,
		player.Record{Player: "C", Squad: "Y", Position: "MF", MinutesPlayed: 10, Goals: 2},
		player.Record{Player: "A", Squad: "Y", Position: "MF", MinutesPlayed: 10, Goals: 5},
		player.Record{Player: "D", Squad: "Y", Position: "MF", MinutesPlayed: 10, Goals: 2},
		player.Record{Player: "B", Squad: "Y", Position: "MF", MinutesPlayed: 10, Goals: 2},
	)
	got, err := Rank(ds, reg, Params{Metric: "Goals", TopN: 3})
	if err != nil {
		t.Fatalf("Rank error: %v", err)
	}
	n := names(got)
	if len(n) != 3 || n[0] != "A" || n[1] != "C" || n[2] != "D" {
		t.Fatalf("ranking = %v, want [A C D]", n)
	}
}

func TestRank_ResultBoundedByTopNAndMatches(t *testing.T) {
	t.Parallel()

	ds, reg := exampleDataset(t)
	for _, topN := range []int{-1, 0, 1, 2, 5, 50} {
		for _, squad := range []string{All, "X", "Z"} {
			got, err := Rank(ds, reg, Params{Squad: squad, Metric: "Assists", TopN: topN})
			if err != nil {
				t.Fatalf("Rank error: %v", err)
			}
			limit := topN
			if limit <= 0 {
				limit = DefaultTopN
			}
			matches := len(Filter{Squad: squad}.Apply(ds))
			if len(got) > limit || len(got) > matches {
				t.Fatalf("topN=%d squad=%s returned %d results (matches %d)", topN, squad, len(got), matches)
			}
		}
	}
}

func TestRank_EmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()

	ds, reg := exampleDataset(t)
	got, err := Rank(ds, reg, Params{Position: "GK", Metric: "Goals"})
	if err != nil {
		t.Fatalf("Rank error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %+v", got)
	}
}

func TestRank_UnknownMetric(t *testing.T) {
	t.Parallel()

	ds, reg := exampleDataset(t)
	_, err := Rank(ds, reg, Params{Metric: "Defensive_Impact"})
	if !errors.Is(err, metric.ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
}

func TestRank_DerivedMetric(t *testing.T) {
	t.Parallel()

	ds, reg := exampleDataset(t)
	got, err := Rank(ds, reg, Params{Metric: metric.GoalContribution})
	if err != nil {
		t.Fatalf("Rank error: %v", err)
	}
	if got[0].Record.Player != "A" || got[0].Value != 15 || got[1].Value != 3 {
		t.Fatalf("unexpected ranking: %+v", got)
	}
}

func TestCompare_SkipsMissingPlayers(t *testing.T) {
	t.Parallel()

	ds, reg := exampleDataset(t)
	got, err := Compare(ds, reg, Request{Players: []string{"A", "C"}, Metric: "Goals"})
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if len(got) != 1 || got[0] != (Point{Player: "A", Squad: "X", Value: 10}) {
		t.Fatalf("unexpected comparison: %+v", got)
	}
}

func TestCompare_KeepsRequestOrderAndDedupes(t *testing.T) {
	t.Parallel()

	ds, reg := buildDataset(t,
		player.Record{Player: "A", Squad: "X", MinutesPlayed: 10, Goals: 1},
		player.Record{Player: "B", Squad: "X", MinutesPlayed: 10, Goals: 2},
		player.Record{Player: "A", Squad: "Z", MinutesPlayed: 10, Goals: 9},
	)
	got, err := Compare(ds, reg, Request{Players: []string{"B", "A", "B"}, Metric: "gls"})
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	want := []Point{{Player: "B", Squad: "X", Value: 2}, {Player: "A", Squad: "X", Value: 1}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("comparison = %+v, want %+v", got, want)
	}
}

func TestCompare_Errors(t *testing.T) {
	t.Parallel()

	ds, reg := exampleDataset(t)
	if _, err := Compare(ds, reg, Request{Metric: "Goals"}); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
	if _, err := Compare(ds, reg, Request{Players: []string{"A"}, Metric: "nope"}); !errors.Is(err, metric.ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	ds, reg := buildDataset(t,
		player.Record{Player: "A", Squad: "X", MinutesPlayed: 1000, Goals: 10},
		player.Record{Player: "B", Squad: "X", MinutesPlayed: 200, Goals: 3},
		player.Record{Player: "C", Squad: "Y", MinutesPlayed: 900, Goals: 20},
	)
	got, err := Summarize(ds, reg, "X", "Goals", 0)
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	want := SquadSummary{Squad: "X", Metric: "Goals", Players: 2, Minutes: 1200, Total: 13, Average: 6.5, Max: 10, Leader: "A"}
	if got != want {
		t.Fatalf("summary = %+v, want %+v", got, want)
	}

	empty, err := Summarize(ds, reg, "Nobody", "Goals", 0)
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if empty.Players != 0 || empty.Total != 0 || empty.Leader != "" {
		t.Fatalf("expected zero summary, got %+v", empty)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	got := Options([]string{"Arsenal", "Chelsea"})
	if len(got) != 3 || got[0] != All || got[1] != "Arsenal" {
		t.Fatalf("options = %v", got)
	}
}
