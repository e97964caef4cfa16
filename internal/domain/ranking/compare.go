package ranking

import (
	"strings"

	"github.com/riskibarqy/player-insights/internal/domain/metric"
	"github.com/riskibarqy/player-insights/internal/domain/player"
)

// Request selects players to compare on one metric.
type Request struct {
	Players []string
	Metric  string
}

// Point is one bar of a comparison series.
type Point struct {
	Player string
	Squad  string
	Value  float64
}

// Compare returns one point per requested player in request order. Names not
// in the dataset are skipped, repeated names are reported once, and when the
// dataset holds several rows for a name the first one is used.
func Compare(ds *player.Dataset, reg *metric.Registry, req Request) ([]Point, error) {
	if len(req.Players) == 0 {
		return nil, ErrEmptySelection
	}
	m, err := reg.Lookup(req.Metric)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(req.Players))
	out := make([]Point, 0, len(req.Players))
	for _, raw := range req.Players {
		name := strings.TrimSpace(raw)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		r, ok := ds.Find(name)
		if !ok {
			continue
		}
		out = append(out, Point{Player: r.Player, Squad: r.Squad, Value: m.Value(r)})
	}
	return out, nil
}
