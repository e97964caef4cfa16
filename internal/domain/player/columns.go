package player

import "strings"

// Canonical column names used after schema normalization.
const (
	ColumnPlayer   = "Player"
	ColumnNation   = "Nation"
	ColumnSquad    = "Squad"
	ColumnPosition = "Pos"
	ColumnAge      = "Age"

	ColumnBorn          = "Born"
	ColumnMatchesPlayed = "Matches Played"
	ColumnStarts        = "Starts"
	ColumnMinutesPlayed = "Minutes Played"
	ColumnNineties      = "90s Played"

	ColumnGoals              = "Goals"
	ColumnAssists            = "Assists"
	ColumnGoalContribution   = "Goal Contribution"
	ColumnNonPenaltyGoals    = "Non-Penalty Goals"
	ColumnPenaltiesMade      = "Penalties Made"
	ColumnPenaltiesAttempted = "Penalties Attempted"
	ColumnYellowCards        = "Yellow Cards"
	ColumnRedCards           = "Red Cards"

	ColumnTackles            = "Tackles"
	ColumnTacklesWon         = "Tackles Won"
	ColumnInterceptions      = "Interceptions"
	ColumnBlocks             = "Blocks"
	ColumnClearances         = "Clearances"
	ColumnAerialsWon         = "Aerials Won"
	ColumnAerialsLost        = "Aerials Lost"
	ColumnTouches            = "Touches"
	ColumnPassesCompleted    = "Passes Completed"
	ColumnProgressivePasses  = "Progressive Passes"
	ColumnProgressiveCarries = "Progressive Carries"
	ColumnProgressiveRuns    = "Progressive Runs"
	ColumnPressures          = "Pressures"

	ColumnExpectedGoals           = "Expected Goals"
	ColumnNonPenaltyExpectedGoals = "Non-Penalty xG"
	ColumnExpectedAssists         = "Expected Assists"
	ColumnNonPenaltyXGPlusXAG     = "npxG + xAG"
)

// RequiredColumns must be present in every dataset.
var RequiredColumns = []string{
	ColumnPlayer,
	ColumnSquad,
	ColumnPosition,
	ColumnMinutesPlayed,
}

// IdentityColumns are the non-numeric columns, in display order.
var IdentityColumns = []string{
	ColumnPlayer,
	ColumnNation,
	ColumnSquad,
	ColumnPosition,
	ColumnAge,
}

// rawColumnAliases maps source abbreviations (FBref style exports) to canonical names.
// Keys are lower-case with single spaces.
var rawColumnAliases = map[string]string{
	"name":         ColumnPlayer,
	"nationality":  ColumnNation,
	"team":         ColumnSquad,
	"club":         ColumnSquad,
	"position":     ColumnPosition,
	"mp":           ColumnMatchesPlayed,
	"matches":      ColumnMatchesPlayed,
	"min":          ColumnMinutesPlayed,
	"mins":         ColumnMinutesPlayed,
	"minutes":      ColumnMinutesPlayed,
	"90s":          ColumnNineties,
	"gls":          ColumnGoals,
	"ast":          ColumnAssists,
	"g+a":          ColumnGoalContribution,
	"g-pk":         ColumnNonPenaltyGoals,
	"pk":           ColumnPenaltiesMade,
	"pkatt":        ColumnPenaltiesAttempted,
	"crdy":         ColumnYellowCards,
	"crdr":         ColumnRedCards,
	"tkl":          ColumnTackles,
	"tklw":         ColumnTacklesWon,
	"int":          ColumnInterceptions,
	"blocks":       ColumnBlocks,
	"clr":          ColumnClearances,
	"won":          ColumnAerialsWon,
	"lost":         ColumnAerialsLost,
	"cmp":          ColumnPassesCompleted,
	"prgp":         ColumnProgressivePasses,
	"prgc":         ColumnProgressiveCarries,
	"prgr":         ColumnProgressiveRuns,
	"press":        ColumnPressures,
	"xg":           ColumnExpectedGoals,
	"npxg":         ColumnNonPenaltyExpectedGoals,
	"xag":          ColumnExpectedAssists,
	"npxg+xag":     ColumnNonPenaltyXGPlusXAG,
	"npxg + xag":   ColumnNonPenaltyXGPlusXAG,
	"90s played":   ColumnNineties,
	"goals+assist": ColumnGoalContribution,
}

var columnIndex = buildColumnIndex()

func buildColumnIndex() map[string]string {
	out := make(map[string]string, len(rawColumnAliases)+len(stats)+len(IdentityColumns))
	for alias, canonical := range rawColumnAliases {
		out[alias] = canonical
	}
	// Canonical names resolve to themselves so renaming is safe to repeat.
	for _, name := range IdentityColumns {
		out[columnKey(name)] = name
	}
	for _, s := range stats {
		out[columnKey(s.Column)] = s.Column
	}
	return out
}

// CanonicalColumn resolves a raw or canonical header to its canonical name.
func CanonicalColumn(header string) (string, bool) {
	name, ok := columnIndex[columnKey(header)]
	return name, ok
}

// IsIdentityColumn reports whether column holds text rather than a number.
func IsIdentityColumn(column string) bool {
	for _, c := range IdentityColumns {
		if c == column {
			return true
		}
	}
	return false
}

func columnKey(header string) string {
	header = strings.TrimPrefix(header, "\ufeff")
	return strings.ToLower(strings.Join(strings.Fields(header), " "))
}
