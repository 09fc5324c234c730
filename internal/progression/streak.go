package progression

import (
	"time"

	"github.com/emberhq/ember/internal/models"
	"github.com/emberhq/ember/internal/utils"
)

// StreakUpdate is the result of advancing a habit's streak for a completion.
type StreakUpdate struct {
	Current       int
	Best          int
	LastCompleted string
	// Reset reports that the chain was broken and restarted at 1.
	Reset bool
	// FreezeConsumed reports that a streak freeze covered the missed window.
	FreezeConsumed bool
}

// AdvanceStreak computes the habit's streak state after completing it on day.
// The chain continues when the last completion falls on or after the habit's
// previous due date; otherwise one streak freeze (if available) is consumed to
// bridge the gap, and failing that the streak resets to 1. Pure: the caller
// persists the result.
func AdvanceStreak(habit models.Habit, day time.Time, freezesAvailable int) StreakUpdate {
	update := StreakUpdate{LastCompleted: utils.DateKey(day)}

	switch {
	case habit.CurrentStreak == 0 || habit.LastCompleted == "":
		update.Current = 1
	case streakIntact(habit, day):
		update.Current = habit.CurrentStreak + 1
	case freezesAvailable > 0:
		update.Current = habit.CurrentStreak + 1
		update.FreezeConsumed = true
	default:
		update.Current = 1
		update.Reset = true
	}

	update.Best = habit.BestStreak
	if update.Current > update.Best {
		update.Best = update.Current
	}
	return update
}

func streakIntact(habit models.Habit, day time.Time) bool {
	last, err := utils.ParseDateKey(habit.LastCompleted)
	if err != nil {
		return false
	}
	prevDue := utils.PreviousDueDate(habit.Frequency, day)
	return !last.Before(prevDue)
}
