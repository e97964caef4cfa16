package metric

import (
	"math"

	"github.com/riskibarqy/player-insights/internal/domain/player"
)

// Derived metric names.
const (
	DefensiveImpact       = "Defensive_Impact"
	MidfieldControl       = "Midfield_Control"
	PressingEffectiveness = "Pressing_Effectiveness"
	AerialDominance       = "Aerial_Dominance"
	GoalContribution      = "Goal_Contribution"
	FairContribution      = "Fair_Contribution"
	GoalsPer90            = "Goals_Per90"
	AssistsPer90          = "Assists_Per90"
	ExpectedGoalsPer90    = "xG_Per90"
)

// FairContributionMode selects the playtime normalization used by Fair_Contribution.
type FairContributionMode string

const (
	// FairContributionLog is GC * sqrt(M) / (ln(1+M) + 1).
	FairContributionLog FairContributionMode = "log"
	// FairContributionSaturation is GC * (M / maxM) * (1 - e^(-M/1500)).
	FairContributionSaturation FairContributionMode = "saturation"
)

// saturationMinutes is the time constant of the saturation variant.
const saturationMinutes = 1500.0

// Columns reports which canonical columns the dataset provides.
type Columns func(column string) bool

// Context carries dataset-wide values some metrics need.
type Context struct {
	MaxMinutes float64
	Has        Columns
}

// Definition is a derived metric: a pure function of one record.
type Definition struct {
	Name     string
	Requires []string
	// Available overrides the Requires check when set.
	Available func(has Columns) bool
	Compute   func(r player.Record, c Context) float64
}

func (d Definition) available(has Columns) bool {
	if d.Available != nil {
		return d.Available(has)
	}
	for _, column := range d.Requires {
		if !has(column) {
			return false
		}
	}
	return true
}

func definitions(mode FairContributionMode) []Definition {
	fair := fairContributionLog
	if mode == FairContributionSaturation {
		fair = fairContributionSaturation
	}

	return []Definition{
		{
			Name:     DefensiveImpact,
			Requires: []string{player.ColumnTackles, player.ColumnInterceptions, player.ColumnBlocks, player.ColumnClearances},
			Compute: func(r player.Record, _ Context) float64 {
				return r.Tackles + r.Interceptions + r.Blocks + r.Clearances
			},
		},
		{
			Name:     MidfieldControl,
			Requires: []string{player.ColumnTouches, player.ColumnPassesCompleted, player.ColumnProgressivePasses},
			Compute: func(r player.Record, _ Context) float64 {
				return r.Touches + r.PassesCompleted + r.ProgressivePasses
			},
		},
		{
			Name:     PressingEffectiveness,
			Requires: []string{player.ColumnPressures, player.ColumnTackles, player.ColumnInterceptions},
			Compute: func(r player.Record, _ Context) float64 {
				return ratio(r.Pressures, r.Pressures+r.Tackles+r.Interceptions)
			},
		},
		{
			Name:     AerialDominance,
			Requires: []string{player.ColumnAerialsWon, player.ColumnAerialsLost},
			Compute: func(r player.Record, _ Context) float64 {
				return ratio(r.AerialsWon, r.AerialsWon+r.AerialsLost)
			},
		},
		{
			Name:      GoalContribution,
			Available: hasGoalContribution,
			Compute: func(r player.Record, c Context) float64 {
				return goalContribution(r, c.Has)
			},
		},
		{
			Name: FairContribution,
			Available: func(has Columns) bool {
				return has(player.ColumnMinutesPlayed) && hasGoalContribution(has)
			},
			Compute: fair,
		},
		{
			Name:     GoalsPer90,
			Requires: []string{player.ColumnGoals, player.ColumnMinutesPlayed},
			Compute: func(r player.Record, _ Context) float64 {
				return per90(r.Goals, r.MinutesPlayed)
			},
		},
		{
			Name:     AssistsPer90,
			Requires: []string{player.ColumnAssists, player.ColumnMinutesPlayed},
			Compute: func(r player.Record, _ Context) float64 {
				return per90(r.Assists, r.MinutesPlayed)
			},
		},
		{
			Name:     ExpectedGoalsPer90,
			Requires: []string{player.ColumnExpectedGoals, player.ColumnMinutesPlayed},
			Compute: func(r player.Record, _ Context) float64 {
				return per90(r.ExpectedGoals, r.MinutesPlayed)
			},
		},
	}
}

func hasGoalContribution(has Columns) bool {
	return (has(player.ColumnGoals) && has(player.ColumnAssists)) || has(player.ColumnGoalContribution)
}

// goalContribution prefers Goals + Assists and falls back to the combined column.
func goalContribution(r player.Record, has Columns) float64 {
	if has(player.ColumnGoals) && has(player.ColumnAssists) {
		return r.Goals + r.Assists
	}
	return r.GoalContribution
}

func fairContributionLog(r player.Record, c Context) float64 {
	gc := goalContribution(r, c.Has)
	if gc == 0 {
		return 0
	}
	minutes := math.Max(r.MinutesPlayed, 0)
	return gc * math.Sqrt(minutes) / (math.Log1p(minutes) + 1)
}

func fairContributionSaturation(r player.Record, c Context) float64 {
	gc := goalContribution(r, c.Has)
	if gc == 0 || c.MaxMinutes <= 0 {
		return 0
	}
	minutes := math.Max(r.MinutesPlayed, 0)
	return gc * (minutes / c.MaxMinutes) * (1 - math.Exp(-minutes/saturationMinutes))
}

// ratio is part / (whole + 1); whole includes part so the result stays in
// [0, 1). It is truncated to 2 decimals because rounding half up would turn
// 0.995 and above into 1.
func ratio(part, whole float64) float64 {
	v := math.Max(part, 0) / (math.Max(whole, 0) + 1)
	return math.Floor(v*100) / 100
}

func per90(value, minutes float64) float64 {
	return 90 * value / (math.Max(minutes, 0) + 1)
}
