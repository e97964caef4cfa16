package httpapi

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/riskibarqy/player-insights/internal/domain/player"
	"github.com/riskibarqy/player-insights/internal/domain/ranking"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
	"github.com/valyala/bytebufferpool"
)

var rankingCSVHeader = []string{"Rank", player.ColumnPlayer, player.ColumnSquad, player.ColumnPosition, player.ColumnMinutesPlayed}

// writeRankingCSV renders entries fully into a pooled buffer first so a
// failure never leaves a half-written body behind a 200 status.
func writeRankingCSV(w http.ResponseWriter, metricName string, entries []ranking.Entry) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := encodeRankingCSV(buf, metricName, entries); err != nil {
		writeInternalError(w)
		return err
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="rankings.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(buf.B)
	return err
}

func encodeRankingCSV(buf *bytebufferpool.ByteBuffer, metricName string, entries []ranking.Entry) error {
	cw := csv.NewWriter(buf)
	if err := cw.Write(append(append([]string(nil), rankingCSVHeader...), metricName)); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.Rank),
			e.Record.Player,
			e.Record.Squad,
			e.Record.Position,
			schema.FormatNumber(e.Record.MinutesPlayed),
			schema.FormatNumber(e.Value),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
