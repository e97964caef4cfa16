package schema

import "context"

// RawTable is a dataset as read from its source: a header row and untyped cells.
type RawTable struct {
	Version string
	Origin  string
	Header  []string
	Rows    [][]string
}

// Source produces the raw table for the current dataset version.
type Source interface {
	Fetch(ctx context.Context) (RawTable, error)
}

// VersionProber is implemented by sources that can report their current
// version without transferring the table.
type VersionProber interface {
	LatestVersion(ctx context.Context) (string, bool, error)
}
