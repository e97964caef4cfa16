package player

import (
	"context"
	"time"
)

// Snapshot is a normalized dataset version persisted by the importer.
type Snapshot struct {
	Version    string
	Origin     string
	Columns    []string
	Records    []Record
	ImportedAt time.Time
}

// SnapshotRepository persists normalized dataset versions.
type SnapshotRepository interface {
	// SaveSnapshot stores snap and reports false when the version already exists.
	SaveSnapshot(ctx context.Context, snap Snapshot) (bool, error)
	LatestVersion(ctx context.Context) (string, bool, error)
}
