package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/player-insights/internal/domain/player"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
	qb "github.com/riskibarqy/player-insights/internal/platform/querybuilder"
)

var _ schema.VersionProber = (*SnapshotRepository)(nil)

// Postgres caps bind parameters at 65535 per statement.
const statInsertBatchSize = 500

var snapshotColumns = []string{"version", "origin", "columns", "row_count", "imported_at"}

var playerSeasonStatColumns = []string{
	"snapshot_version",
	"row_index",
	"player",
	"nation",
	"squad",
	"position",
	"age",
	"stats",
}

type SnapshotRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db, now: time.Now}
}

func (r *SnapshotRepository) String() string {
	return "postgres:dataset_snapshots"
}

func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snap player.Snapshot) (bool, error) {
	if strings.TrimSpace(snap.Version) == "" {
		return false, fmt.Errorf("save snapshot: version is required")
	}

	importedAt := snap.ImportedAt
	if importedAt.IsZero() {
		importedAt = r.now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx save snapshot: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	snapshotQuery, snapshotArgs, err := qb.InsertModels("dataset_snapshots", []snapshotTableModel{{
		Version:    snap.Version,
		Origin:     snap.Origin,
		Columns:    append([]string(nil), snap.Columns...),
		RowCount:   int64(len(snap.Records)),
		ImportedAt: importedAt,
	}}, "ON CONFLICT (version) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build insert snapshot query: %w", err)
	}
	result, err := tx.ExecContext(ctx, snapshotQuery, snapshotArgs...)
	if err != nil {
		return false, fmt.Errorf("insert snapshot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected insert snapshot: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	rows := make([]playerSeasonStatTableModel, 0, len(snap.Records))
	for i, rec := range snap.Records {
		row, err := playerSeasonStatToRow(snap.Version, i, rec)
		if err != nil {
			return false, err
		}
		rows = append(rows, row)
	}

	for start := 0; start < len(rows); start += statInsertBatchSize {
		end := min(start+statInsertBatchSize, len(rows))
		query, args, err := qb.InsertModels("player_season_stats", rows[start:end], "")
		if err != nil {
			return false, fmt.Errorf("build insert player season stats query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return false, fmt.Errorf("insert player season stats: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit save snapshot tx: %w", err)
	}
	return true, nil
}

func (r *SnapshotRepository) LatestVersion(ctx context.Context) (string, bool, error) {
	snap, ok, err := r.latestSnapshot(ctx)
	if err != nil || !ok {
		return "", ok, err
	}
	return snap.Version, true, nil
}

// Fetch loads the most recent snapshot as a table with canonical headers so the
// normalizer can consume it like any other source.
func (r *SnapshotRepository) Fetch(ctx context.Context) (schema.RawTable, error) {
	snap, ok, err := r.latestSnapshot(ctx)
	if err != nil {
		return schema.RawTable{}, err
	}
	if !ok {
		return schema.RawTable{}, fmt.Errorf("fetch snapshot: no snapshot imported")
	}

	query, args, err := qb.Select(playerSeasonStatColumns...).
		From("player_season_stats").
		Where(qb.Eq("snapshot_version", snap.Version)).
		OrderBy("row_index").
		ToSQL()
	if err != nil {
		return schema.RawTable{}, fmt.Errorf("build list player season stats query: %w", err)
	}

	var rows []playerSeasonStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return schema.RawTable{}, fmt.Errorf("list player season stats: %w", err)
	}

	records := make([]player.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := playerSeasonStatFromRow(row)
		if err != nil {
			return schema.RawTable{}, err
		}
		records = append(records, rec)
	}

	table := schema.Render(snap.Columns, records)
	table.Version = snap.Version
	table.Origin = snap.Origin
	return table, nil
}

func (r *SnapshotRepository) latestSnapshot(ctx context.Context) (snapshotTableModel, bool, error) {
	query, args, err := qb.Select(snapshotColumns...).
		From("dataset_snapshots").
		OrderBy("imported_at DESC", "version DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return snapshotTableModel{}, false, fmt.Errorf("build latest snapshot query: %w", err)
	}

	var row snapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return snapshotTableModel{}, false, nil
		}
		return snapshotTableModel{}, false, fmt.Errorf("get latest snapshot: %w", err)
	}
	return row, true, nil
}

func playerSeasonStatToRow(version string, index int, rec player.Record) (playerSeasonStatTableModel, error) {
	values := make(map[string]float64, len(player.Stats()))
	for _, s := range player.Stats() {
		values[s.Column] = s.Value(rec)
	}
	encoded, err := sonic.Marshal(values)
	if err != nil {
		return playerSeasonStatTableModel{}, fmt.Errorf("encode stats for %q: %w", rec.Player, err)
	}

	return playerSeasonStatTableModel{
		SnapshotVersion: version,
		RowIndex:        int64(index),
		Player:          rec.Player,
		Nation:          rec.Nation,
		Squad:           rec.Squad,
		Position:        rec.Position,
		Age:             rec.Age,
		Stats:           string(encoded),
	}, nil
}

func playerSeasonStatFromRow(row playerSeasonStatTableModel) (player.Record, error) {
	rec := player.Record{
		Player:   row.Player,
		Nation:   row.Nation,
		Squad:    row.Squad,
		Position: row.Position,
		Age:      row.Age,
	}

	raw := strings.TrimSpace(row.Stats)
	if raw == "" {
		return rec, nil
	}
	values := make(map[string]float64)
	if err := sonic.Unmarshal([]byte(raw), &values); err != nil {
		return player.Record{}, fmt.Errorf("decode stats row %d: %w", row.RowIndex, err)
	}
	for column, v := range values {
		if s, ok := player.LookupStat(column); ok {
			s.Set(&rec, v)
		}
	}
	return rec, nil
}
