package cli

import (
	"fmt"

	"github.com/emberhq/ember/internal/engine"
)

// PrintCompletionResult renders the outcome of a habit completion.
func PrintCompletionResult(result engine.CompletionResult) {
	fmt.Printf("✔ %s done!  +%d XP", result.Habit.Name, result.XP.Total)
	if result.XP.StreakBonus > 0 || result.XP.TimeBonus > 0 {
		fmt.Printf(" (base %d", result.XP.Base)
		if result.XP.StreakBonus > 0 {
			fmt.Printf(", streak +%.0f%%", result.XP.StreakBonus*100)
		}
		if result.XP.TimeBonus > 0 {
			fmt.Printf(", morning +%.0f%%", result.XP.TimeBonus*100)
		}
		fmt.Print(")")
	}
	fmt.Println()

	switch {
	case result.Streak.FreezeConsumed:
		fmt.Printf("🔥 Streak: %d days (a streak freeze kept it alive)\n", result.Streak.Current)
	case result.Streak.Reset:
		fmt.Println("🔥 Streak restarted at 1. Back at it.")
	default:
		fmt.Printf("🔥 Streak: %d days (best %d)\n", result.Streak.Current, result.Streak.Best)
	}

	if result.LeveledUp {
		fmt.Printf("⬆ Level up! You are now level %d\n", result.Level.Level)
	}

	for _, update := range result.Quests {
		if update.Completed {
			fmt.Printf("🗺 Quest complete: %s — claim it with 'ember quest claim'\n", update.Template.Title)
		} else {
			fmt.Printf("🗺 %s: %d/%d\n", update.Template.Title, update.Quest.Progress, update.Template.Requirement.Target)
		}
	}

	for _, def := range result.Unlocked {
		fmt.Printf("🏆 Achievement unlocked: %s (+%d XP) — %s\n", def.Title, def.XPReward, def.Description)
	}

	for _, warning := range result.Warnings {
		fmt.Printf("⚠ %s\n", warning)
	}
}
