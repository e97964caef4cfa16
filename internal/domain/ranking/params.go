package ranking

import (
	"errors"

	"github.com/riskibarqy/player-insights/internal/domain/player"
)

// All disables the squad or position filter.
const All = "All"

// DefaultTopN is used when Params.TopN is not positive.
const DefaultTopN = 10

// ErrEmptySelection is returned by Compare when no players are requested.
var ErrEmptySelection = errors.New("no players selected")

// Params selects and orders records for a ranking.
type Params struct {
	Squad      string
	Position   string
	MinMinutes float64
	Metric     string
	TopN       int
}

func (p Params) topN() int {
	if p.TopN <= 0 {
		return DefaultTopN
	}
	return p.TopN
}

// Filter holds the record predicates shared by rankings and listings.
type Filter struct {
	Squad      string
	Position   string
	MinMinutes float64
}

// Match reports whether r passes every predicate. Empty and "All" values
// disable the squad and position checks; MinMinutes is inclusive.
func (f Filter) Match(r player.Record) bool {
	if f.Squad != "" && f.Squad != All && r.Squad != f.Squad {
		return false
	}
	if f.Position != "" && f.Position != All && r.Position != f.Position {
		return false
	}
	return r.MinutesPlayed >= f.MinMinutes
}

// Apply returns the records of ds matching f, in dataset order.
func (f Filter) Apply(ds *player.Dataset) []player.Record {
	out := make([]player.Record, 0)
	if ds == nil {
		return out
	}
	ds.Each(func(r player.Record) bool {
		if f.Match(r) {
			out = append(out, r)
		}
		return true
	})
	return out
}

// Options prepends All to a sorted option list.
func Options(values []string) []string {
	out := make([]string, 0, len(values)+1)
	out = append(out, All)
	return append(out, values...)
}
