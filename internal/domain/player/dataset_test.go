package player

import (
	"reflect"
	"testing"
)

func TestDataset_IsIsolatedFromCallerSlices(t *testing.T) {
	t.Parallel()

	columns := []string{ColumnPlayer, ColumnSquad}
	records := []Record{{Player: "A", Squad: "X"}}
	ds := NewDataset(Meta{Version: "v1"}, columns, nil, records)

	columns[0] = "mutated"
	records[0].Player = "mutated"
	if ds.Columns()[0] != ColumnPlayer {
		t.Fatalf("dataset columns changed through caller slice")
	}
	if r, _ := ds.Find("A"); r.Player != "A" {
		t.Fatalf("dataset records changed through caller slice")
	}

	out := ds.Records()
	out[0].Player = "changed"
	if _, ok := ds.Find("A"); !ok {
		t.Fatalf("dataset records changed through Records copy")
	}
}

func TestDataset_Options(t *testing.T) {
	t.Parallel()

	ds := NewDataset(Meta{}, nil, nil, []Record{
		{Player: "A", Squad: "Chelsea", Position: "FW", MinutesPlayed: 10},
		{Player: "B", Squad: "Arsenal", Position: "DF", MinutesPlayed: 1200},
		{Player: "C", Squad: "Chelsea", Position: "", MinutesPlayed: 300},
	})

	if got := ds.Squads(); !reflect.DeepEqual(got, []string{"Arsenal", "Chelsea"}) {
		t.Fatalf("squads = %v", got)
	}
	if got := ds.Positions(); !reflect.DeepEqual(got, []string{"DF", "FW"}) {
		t.Fatalf("positions = %v", got)
	}
	if got := ds.MaxMinutes(); got != 1200 {
		t.Fatalf("max minutes = %v", got)
	}
}

func TestRecord_WithDerivedCopiesValues(t *testing.T) {
	t.Parallel()

	values := map[string]float64{"X": 1}
	r := Record{Player: "A"}.WithDerived(values)
	values["X"] = 2

	if v, _ := r.Derived("X"); v != 1 {
		t.Fatalf("derived value = %v, want 1", v)
	}
	m := r.DerivedMetrics()
	m["X"] = 3
	if v, _ := r.Derived("X"); v != 1 {
		t.Fatalf("derived map leaked, got %v", v)
	}
}

func TestCanonicalColumn(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Min":             ColumnMinutesPlayed,
		" gls ":           ColumnGoals,
		"\ufeffPlayer":    ColumnPlayer,
		"Minutes Played":  ColumnMinutesPlayed,
		"minutes  played": ColumnMinutesPlayed,
		"npxG+xAG":        ColumnNonPenaltyXGPlusXAG,
		"Pos":             ColumnPosition,
	}
	for in, want := range cases {
		got, ok := CanonicalColumn(in)
		if !ok || got != want {
			t.Fatalf("CanonicalColumn(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := CanonicalColumn("Notes"); ok {
		t.Fatalf("unknown header should not resolve")
	}
}

func TestStats_CoverEveryNumericColumnOnce(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, s := range Stats() {
		if seen[s.Column] {
			t.Fatalf("duplicate stat %s", s.Column)
		}
		seen[s.Column] = true

		var r Record
		s.Set(&r, 7)
		if s.Value(r) != 7 {
			t.Fatalf("stat %s does not round-trip", s.Column)
		}
	}
}
