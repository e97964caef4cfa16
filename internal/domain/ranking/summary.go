package ranking

import (
	"github.com/riskibarqy/player-insights/internal/domain/metric"
	"github.com/riskibarqy/player-insights/internal/domain/player"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
)

// SquadSummary aggregates one metric over a squad's players.
type SquadSummary struct {
	Squad   string
	Metric  string
	Players int
	Minutes float64
	Total   float64
	Average float64
	Max     float64
	Leader  string
}

// Summarize aggregates metric over the players of squad that pass minMinutes.
// A squad with no matching players yields a zero summary.
func Summarize(ds *player.Dataset, reg *metric.Registry, squad, metricName string, minMinutes float64) (SquadSummary, error) {
	m, err := reg.Lookup(metricName)
	if err != nil {
		return SquadSummary{}, err
	}

	out := SquadSummary{Squad: squad, Metric: m.Name}
	filter := Filter{Squad: squad, MinMinutes: minMinutes}
	for _, r := range filter.Apply(ds) {
		v := m.Value(r)
		if out.Players == 0 || v > out.Max {
			out.Max = v
			out.Leader = r.Player
		}
		out.Players++
		out.Minutes += r.MinutesPlayed
		out.Total += v
	}
	if out.Players > 0 {
		out.Average = out.Total / float64(out.Players)
	}

	out.Minutes = schema.Round2(out.Minutes)
	out.Total = schema.Round2(out.Total)
	out.Average = schema.Round2(out.Average)
	return out, nil
}
