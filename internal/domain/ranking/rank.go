package ranking

import (
	"sort"

	"github.com/riskibarqy/player-insights/internal/domain/metric"
	"github.com/riskibarqy/player-insights/internal/domain/player"
)

// Entry is a ranked record with the value it was ordered by.
type Entry struct {
	Rank   int
	Value  float64
	Record player.Record
}

// Rank filters ds by p, orders the matches by p.Metric descending and keeps
// the first TopN. Ties keep dataset order. An empty match set is not an error.
func Rank(ds *player.Dataset, reg *metric.Registry, p Params) ([]Entry, error) {
	m, err := reg.Lookup(p.Metric)
	if err != nil {
		return nil, err
	}

	filter := Filter{Squad: p.Squad, Position: p.Position, MinMinutes: p.MinMinutes}
	matches := filter.Apply(ds)

	entries := make([]Entry, len(matches))
	for i, r := range matches {
		entries[i] = Entry{Value: m.Value(r), Record: r}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	if n := p.topN(); len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Records strips the ranking metadata from entries.
func Records(entries []Entry) []player.Record {
	out := make([]player.Record, len(entries))
	for i, e := range entries {
		out[i] = e.Record
	}
	return out
}
