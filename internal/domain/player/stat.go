package player

// Stat describes one numeric base column of Record.
type Stat struct {
	Column string
	Value  func(Record) float64
	set    func(*Record, float64)
}

// Set writes v into the field backing the stat.
func (s Stat) Set(r *Record, v float64) {
	s.set(r, v)
}

var stats = []Stat{
	{ColumnBorn, func(r Record) float64 { return r.Born }, func(r *Record, v float64) { r.Born = v }},
	{ColumnMatchesPlayed, func(r Record) float64 { return r.MatchesPlayed }, func(r *Record, v float64) { r.MatchesPlayed = v }},
	{ColumnStarts, func(r Record) float64 { return r.Starts }, func(r *Record, v float64) { r.Starts = v }},
	{ColumnMinutesPlayed, func(r Record) float64 { return r.MinutesPlayed }, func(r *Record, v float64) { r.MinutesPlayed = v }},
	{ColumnNineties, func(r Record) float64 { return r.Nineties }, func(r *Record, v float64) { r.Nineties = v }},
	{ColumnGoals, func(r Record) float64 { return r.Goals }, func(r *Record, v float64) { r.Goals = v }},
	{ColumnAssists, func(r Record) float64 { return r.Assists }, func(r *Record, v float64) { r.Assists = v }},
	{ColumnGoalContribution, func(r Record) float64 { return r.GoalContribution }, func(r *Record, v float64) { r.GoalContribution = v }},
	{ColumnNonPenaltyGoals, func(r Record) float64 { return r.NonPenaltyGoals }, func(r *Record, v float64) { r.NonPenaltyGoals = v }},
	{ColumnPenaltiesMade, func(r Record) float64 { return r.PenaltiesMade }, func(r *Record, v float64) { r.PenaltiesMade = v }},
	{ColumnPenaltiesAttempted, func(r Record) float64 { return r.PenaltiesAttempted }, func(r *Record, v float64) { r.PenaltiesAttempted = v }},
	{ColumnYellowCards, func(r Record) float64 { return r.YellowCards }, func(r *Record, v float64) { r.YellowCards = v }},
	{ColumnRedCards, func(r Record) float64 { return r.RedCards }, func(r *Record, v float64) { r.RedCards = v }},
	{ColumnTackles, func(r Record) float64 { return r.Tackles }, func(r *Record, v float64) { r.Tackles = v }},
	{ColumnTacklesWon, func(r Record) float64 { return r.TacklesWon }, func(r *Record, v float64) { r.TacklesWon = v }},
	{ColumnInterceptions, func(r Record) float64 { return r.Interceptions }, func(r *Record, v float64) { r.Interceptions = v }},
	{ColumnBlocks, func(r Record) float64 { return r.Blocks }, func(r *Record, v float64) { r.Blocks = v }},
	{ColumnClearances, func(r Record) float64 { return r.Clearances }, func(r *Record, v float64) { r.Clearances = v }},
	{ColumnAerialsWon, func(r Record) float64 { return r.AerialsWon }, func(r *Record, v float64) { r.AerialsWon = v }},
	{ColumnAerialsLost, func(r Record) float64 { return r.AerialsLost }, func(r *Record, v float64) { r.AerialsLost = v }},
	{ColumnTouches, func(r Record) float64 { return r.Touches }, func(r *Record, v float64) { r.Touches = v }},
	{ColumnPassesCompleted, func(r Record) float64 { return r.PassesCompleted }, func(r *Record, v float64) { r.PassesCompleted = v }},
	{ColumnProgressivePasses, func(r Record) float64 { return r.ProgressivePasses }, func(r *Record, v float64) { r.ProgressivePasses = v }},
	{ColumnProgressiveCarries, func(r Record) float64 { return r.ProgressiveCarries }, func(r *Record, v float64) { r.ProgressiveCarries = v }},
	{ColumnProgressiveRuns, func(r Record) float64 { return r.ProgressiveRuns }, func(r *Record, v float64) { r.ProgressiveRuns = v }},
	{ColumnPressures, func(r Record) float64 { return r.Pressures }, func(r *Record, v float64) { r.Pressures = v }},
	{ColumnExpectedGoals, func(r Record) float64 { return r.ExpectedGoals }, func(r *Record, v float64) { r.ExpectedGoals = v }},
	{ColumnNonPenaltyExpectedGoals, func(r Record) float64 { return r.NonPenaltyExpectedGoals }, func(r *Record, v float64) { r.NonPenaltyExpectedGoals = v }},
	{ColumnExpectedAssists, func(r Record) float64 { return r.ExpectedAssists }, func(r *Record, v float64) { r.ExpectedAssists = v }},
	{ColumnNonPenaltyXGPlusXAG, func(r Record) float64 { return r.NonPenaltyXGPlusXAG }, func(r *Record, v float64) { r.NonPenaltyXGPlusXAG = v }},
}

// Stats returns the numeric base columns in catalog order.
func Stats() []Stat {
	out := make([]Stat, len(stats))
	copy(out, stats)
	return out
}

// LookupStat returns the stat for a canonical column name.
func LookupStat(column string) (Stat, bool) {
	for _, s := range stats {
		if s.Column == column {
			return s, true
		}
	}
	return Stat{}, false
}

// Identity returns the value of an identity column.
func (r Record) Identity(column string) string {
	switch column {
	case ColumnPlayer:
		return r.Player
	case ColumnNation:
		return r.Nation
	case ColumnSquad:
		return r.Squad
	case ColumnPosition:
		return r.Position
	case ColumnAge:
		return r.Age
	default:
		return ""
	}
}

// SetIdentity writes an identity column value.
func (r *Record) SetIdentity(column, value string) {
	switch column {
	case ColumnPlayer:
		r.Player = value
	case ColumnNation:
		r.Nation = value
	case ColumnSquad:
		r.Squad = value
	case ColumnPosition:
		r.Position = value
	case ColumnAge:
		r.Age = value
	}
}
