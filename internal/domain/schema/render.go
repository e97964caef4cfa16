package schema

import (
	"strconv"

	"github.com/riskibarqy/player-insights/internal/domain/player"
)

// Render turns normalized records back into a RawTable with canonical headers.
// Normalizing the result yields the same records again.
func Render(columns []string, records []player.Record) RawTable {
	header := append([]string(nil), columns...)
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = FormatCell(rec, column)
		}
		rows = append(rows, row)
	}

	return RawTable{Header: header, Rows: rows}
}

// FormatCell renders a single canonical column of rec as text.
func FormatCell(rec player.Record, column string) string {
	if player.IsIdentityColumn(column) {
		return rec.Identity(column)
	}
	if s, ok := player.LookupStat(column); ok {
		return FormatNumber(s.Value(rec))
	}
	return ""
}

// FormatNumber prints v without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
