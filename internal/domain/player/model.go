package player

import (
	"maps"
	"sort"
)

// Record is one player-season row after schema normalization.
//
// Identity fields are plain strings. Numeric fields are rounded to two decimal
// places by the normalizer. Derived metrics are attached through WithDerived and
// never change once a record is built.
type Record struct {
	Player   string
	Nation   string
	Squad    string
	Position string
	Age      string

	Born          float64
	MatchesPlayed float64
	Starts        float64
	MinutesPlayed float64
	Nineties      float64

	Goals              float64
	Assists            float64
	GoalContribution   float64
	NonPenaltyGoals    float64
	PenaltiesMade      float64
	PenaltiesAttempted float64
	YellowCards        float64
	RedCards           float64

	Tackles            float64
	TacklesWon         float64
	Interceptions      float64
	Blocks             float64
	Clearances         float64
	AerialsWon         float64
	AerialsLost        float64
	Touches            float64
	PassesCompleted    float64
	ProgressivePasses  float64
	ProgressiveCarries float64
	ProgressiveRuns    float64
	Pressures          float64

	ExpectedGoals           float64
	NonPenaltyExpectedGoals float64
	ExpectedAssists         float64
	NonPenaltyXGPlusXAG     float64

	derived map[string]float64
}

// WithDerived returns a copy of r carrying the given derived metric values.
func (r Record) WithDerived(values map[string]float64) Record {
	r.derived = maps.Clone(values)
	return r
}

// Derived returns the value of a derived metric and whether it was computed.
func (r Record) Derived(name string) (float64, bool) {
	v, ok := r.derived[name]
	return v, ok
}

// DerivedMetrics returns a copy of all derived metric values.
func (r Record) DerivedMetrics() map[string]float64 {
	if len(r.derived) == 0 {
		return map[string]float64{}
	}
	return maps.Clone(r.derived)
}

// DerivedNames returns the derived metric names in lexical order.
func (r Record) DerivedNames() []string {
	out := make([]string, 0, len(r.derived))
	for name := range r.derived {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
