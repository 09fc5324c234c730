package cli

import (
	"fmt"
	"strings"

	"github.com/emberhq/ember/internal/progression"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}

	level := progression.Progress(profile.TotalXP)

	fmt.Printf("Level %d  (%d XP total)\n", level.Level, profile.TotalXP)
	fmt.Printf("%s  %d/%d XP to level %d\n",
		progressBar(level.Progress, 30), level.CurrentLevelXP, level.NextLevelXP, level.Level+1)
	fmt.Printf("Streak freezes: %d\n", profile.StreakFreezes)
	if profile.Premium {
		fmt.Println("Premium: legendary quests unlocked")
	}

	habits, err := ctx.Store.GetAllHabits(false, false)
	if err != nil {
		return err
	}
	if len(habits) > 0 {
		fmt.Println("\nStreaks:")
		for _, habit := range habits {
			fmt.Printf("  %-24s 🔥%-4d best %d\n", habit.Name, habit.CurrentStreak, habit.BestStreak)
		}
	}

	total, err := ctx.Store.CountCompletions()
	if err != nil {
		return err
	}
	fmt.Printf("\nTotal completions: %d\n", total)
	return nil
}

func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
