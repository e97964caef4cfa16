package schema

import (
	"math"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/player-insights/internal/domain/player"
)

// Normalized is the output of Normalize.
type Normalized struct {
	Version string
	Origin  string
	// Columns lists the canonical columns found in the source, identity columns
	// first, then numeric columns in catalog order.
	Columns []string
	Records []player.Record
}

// Normalize renames headers to canonical names, maps nation codes, reduces
// positions to the primary one and parses numeric cells rounded to 2 decimals.
//
// Unknown headers are ignored. When two headers resolve to the same canonical
// column the first one wins. Rows with an empty player name, and repeated
// header rows, are skipped.
func Normalize(table RawTable) (Normalized, error) {
	indexByColumn := make(map[string]int, len(table.Header))
	for i, header := range table.Header {
		column, ok := player.CanonicalColumn(header)
		if !ok {
			continue
		}
		if _, exists := indexByColumn[column]; exists {
			continue
		}
		indexByColumn[column] = i
	}

	var missing []string
	for _, column := range player.RequiredColumns {
		if _, ok := indexByColumn[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return Normalized{}, &MalformedInputError{
			Columns: missing,
			Reason:  "required column is absent",
		}
	}

	columns := orderedColumns(indexByColumn)
	numeric := make([]player.Stat, 0, len(columns))
	for _, column := range columns {
		if s, ok := player.LookupStat(column); ok {
			numeric = append(numeric, s)
		}
	}

	records := make([]player.Record, 0, len(table.Rows))
	for rowIdx, row := range table.Rows {
		if isBlankRow(row) {
			continue
		}
		if len(row) != len(table.Header) {
			return Normalized{}, &MalformedInputError{
				Row:    rowIdx + 1,
				Reason: "row width " + strconv.Itoa(len(row)) + " does not match header width " + strconv.Itoa(len(table.Header)),
			}
		}

		name := strings.TrimSpace(row[indexByColumn[player.ColumnPlayer]])
		if name == "" || name == player.ColumnPlayer {
			continue
		}

		var rec player.Record
		for _, column := range player.IdentityColumns {
			idx, ok := indexByColumn[column]
			if !ok {
				continue
			}
			rec.SetIdentity(column, normalizeIdentity(column, row[idx]))
		}

		for _, s := range numeric {
			value, err := ParseNumber(row[indexByColumn[s.Column]])
			if err != nil {
				return Normalized{}, &MalformedInputError{
					Columns: []string{s.Column},
					Row:     rowIdx + 1,
					Err:     err,
				}
			}
			// Counts and minutes cannot be negative.
			s.Set(&rec, math.Max(value, 0))
		}

		records = append(records, rec)
	}

	return Normalized{
		Version: table.Version,
		Origin:  table.Origin,
		Columns: columns,
		Records: records,
	}, nil
}

func normalizeIdentity(column, raw string) string {
	switch column {
	case player.ColumnNation:
		return NationName(raw)
	case player.ColumnPosition:
		return PrimaryPosition(raw)
	default:
		return strings.TrimSpace(raw)
	}
}

func orderedColumns(indexByColumn map[string]int) []string {
	out := make([]string, 0, len(indexByColumn))
	for _, column := range player.IdentityColumns {
		if _, ok := indexByColumn[column]; ok {
			out = append(out, column)
		}
	}
	for _, s := range player.Stats() {
		if _, ok := indexByColumn[s.Column]; ok {
			out = append(out, s.Column)
		}
	}
	return out
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ParseNumber parses a numeric cell. Blank and placeholder cells ("NaN", "-",
// "N/A") are treated as zero, thousands separators are accepted and the result
// is rounded to 2 decimals.
func ParseNumber(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	switch strings.ToLower(value) {
	case "", "nan", "-", "n/a", "na", "null":
		return 0, nil
	}
	value = strings.ReplaceAll(value, ",", "")

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, crerr.Wrapf(err, "parse number %q", raw)
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, crerr.Newf("non-finite number %q", raw)
	}
	return Round2(out), nil
}

// Round2 rounds v half away from zero to 2 decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
