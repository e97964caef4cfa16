package postgres

import (
	"time"

	"github.com/lib/pq"
)

type snapshotTableModel struct {
	Version    string         `db:"version"`
	Origin     string         `db:"origin"`
	Columns    pq.StringArray `db:"columns"`
	RowCount   int64          `db:"row_count"`
	ImportedAt time.Time      `db:"imported_at"`
}

type playerSeasonStatTableModel struct {
	SnapshotVersion string `db:"snapshot_version"`
	RowIndex        int64  `db:"row_index"`
	Player          string `db:"player"`
	Nation          string `db:"nation"`
	Squad           string `db:"squad"`
	Position        string `db:"position"`
	Age             string `db:"age"`
	Stats           string `db:"stats"`
}
