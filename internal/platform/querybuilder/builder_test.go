package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("version", "origin").
		From("dataset_snapshots").
		Where(Eq("origin", "players.csv"), Expr("row_count > ?", 0)).
		OrderBy("imported_at DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT version, origin FROM dataset_snapshots WHERE origin = $1 AND row_count > $2 ORDER BY imported_at DESC LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "players.csv" || args[1] != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args, err := InsertInto("player_season_stats").
		Columns("snapshot_version", "row_index").
		Values("v1", 0).
		Values("v1", 1).
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO player_season_stats (snapshot_version, row_index) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "v1" || args[3] != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RejectsRaggedRow(t *testing.T) {
	_, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL()
	if err == nil {
		t.Fatalf("expected error for ragged row")
	}
}

type testRow struct {
	Version string  `db:"snapshot_version"`
	Goals   float64 `db:"goals"`
	Ignored string  `db:"-"`
	hidden  string
}

func TestInsertModels(t *testing.T) {
	rows := []testRow{{Version: "v1", Goals: 2, hidden: "x"}, {Version: "v1", Goals: 3}}
	query, args, err := InsertModels("player_season_stats", rows, "")
	if err != nil {
		t.Fatalf("build insert from models: %v", err)
	}

	wantQuery := "INSERT INTO player_season_stats (snapshot_version, goals) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != float64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}

	cols, err := Columns(testRow{})
	if err != nil || len(cols) != 2 {
		t.Fatalf("Columns = %v, %v", cols, err)
	}
}
