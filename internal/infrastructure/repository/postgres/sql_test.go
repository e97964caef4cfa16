package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/riskibarqy/player-insights/internal/domain/player"
	qb "github.com/riskibarqy/player-insights/internal/platform/querybuilder"
	"github.com/stretchr/testify/require"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("get latest snapshot: %w", sql.ErrNoRows)) {
		t.Fatalf("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(fakeErr("pq: relation dataset_snapshots does not exist")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestPlayerSeasonStatRowMapping(t *testing.T) {
	rec := player.Record{
		Player:        "Ana",
		Nation:        "es ESP",
		Squad:         "Alpha",
		Position:      "MF",
		Age:           "24-100",
		MinutesPlayed: 1800,
		Goals:         5,
		ExpectedGoals: 4.35,
	}

	row, err := playerSeasonStatToRow("v1", 3, rec)
	require.NoError(t, err)
	require.Equal(t, "v1", row.SnapshotVersion)
	require.Equal(t, int64(3), row.RowIndex)
	require.Contains(t, row.Stats, `"Minutes Played":1800`)

	got, err := playerSeasonStatFromRow(row)
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

func TestPlayerSeasonStatFromRow_IgnoresUnknownStats(t *testing.T) {
	got, err := playerSeasonStatFromRow(playerSeasonStatTableModel{
		Player: "Ana",
		Stats:  `{"Goals":2,"NotAColumn":9}`,
	})
	require.NoError(t, err)
	require.Equal(t, 2.0, got.Goals)
}

func TestPlayerSeasonStatFromRow_RejectsBrokenJSON(t *testing.T) {
	_, err := playerSeasonStatFromRow(playerSeasonStatTableModel{RowIndex: 7, Stats: "{"})
	if err == nil || !strings.Contains(err.Error(), "row 7") {
		t.Fatalf("expected decode error naming row 7, got %v", err)
	}
}

func TestTableModelsMatchColumnLists(t *testing.T) {
	cols, err := qb.Columns(playerSeasonStatTableModel{})
	require.NoError(t, err)
	require.Equal(t, playerSeasonStatColumns, cols)

	cols, err = qb.Columns(snapshotTableModel{})
	require.NoError(t, err)
	require.Equal(t, snapshotColumns, cols)
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
