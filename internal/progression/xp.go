// Package progression holds the pure XP, leveling and streak math. Nothing in
// here touches storage; the engine owns persistence.
package progression

import (
	"fmt"
	"math"

	"github.com/emberhq/ember/internal/constants"
	"github.com/emberhq/ember/internal/errors"
	"github.com/emberhq/ember/internal/models"
)

// BaseXP is the fixed per-difficulty XP table.
var BaseXP = map[models.Difficulty]int{
	models.DifficultyEasy:   10,
	models.DifficultyMedium: 25,
	models.DifficultyHard:   50,
}

const (
	// StreakBonusPerDay is the multiplier added per day of streak.
	StreakBonusPerDay = 0.05
	// StreakBonusCap caps the streak multiplier at 50%.
	StreakBonusCap = 0.5
	// MorningBonus is awarded for completions before constants.MorningBonusHour.
	MorningBonus = 0.10
)

// Breakdown is the XP awarded for a single completion, split into its parts.
type Breakdown struct {
	Base        int
	StreakBonus float64
	TimeBonus   float64
	Total       int
}

// ComputeCompletionXP maps (difficulty, streak, hour) to awarded XP:
// total = round(base * (1 + streakBonus + timeBonus)).
func ComputeCompletionXP(difficulty models.Difficulty, currentStreak, completionHour int) (Breakdown, error) {
	base, ok := BaseXP[difficulty]
	if !ok {
		return Breakdown{}, fmt.Errorf("unknown difficulty %q: %w", difficulty, errors.ErrInvalidInput)
	}

	streakBonus := math.Min(float64(currentStreak)*StreakBonusPerDay, StreakBonusCap)
	timeBonus := 0.0
	if completionHour < constants.MorningBonusHour {
		timeBonus = MorningBonus
	}

	return Breakdown{
		Base:        base,
		StreakBonus: streakBonus,
		TimeBonus:   timeBonus,
		Total:       int(math.Round(float64(base) * (1 + streakBonus + timeBonus))),
	}, nil
}
