// Package achievements evaluates unlock predicates over a snapshot of user
// state. Evaluation is pure; the engine persists unlocks and awards bonuses.
package achievements

import (
	"github.com/emberhq/ember/internal/constants"
	"github.com/emberhq/ember/internal/models"
)

// Context is the aggregated snapshot predicates run against. The engine
// assembles it once per probe; predicates must not mutate it.
type Context struct {
	Habits           []models.Habit
	TotalCompletions int
	CompletionsToday []models.Completion
	Unlocked         map[models.AchievementType]bool
	TotalXP          int
	Level            int
	CompletedToday   int
	TotalHabitsToday int
	CurrentHour      int
}

// Definition is one registry entry: a named predicate with its reward.
type Definition struct {
	Type        models.AchievementType
	Title       string
	Description string
	XPReward    int
	Check       func(Context) bool
}

// Registry is the fixed achievement catalogue, in display order.
var Registry = []Definition{
	{
		Type:        models.AchievementFirstStep,
		Title:       "First Step",
		Description: "Complete your first habit.",
		XPReward:    25,
		Check:       func(ctx Context) bool { return ctx.TotalCompletions >= 1 },
	},
	{
		Type:        models.AchievementHabitBuilder,
		Title:       "Habit Builder",
		Description: "Track five habits at once.",
		XPReward:    50,
		Check:       func(ctx Context) bool { return len(ctx.Habits) >= 5 },
	},
	{
		Type:        models.AchievementWeekWarrior,
		Title:       "Week Warrior",
		Description: "Hold a 7-day streak on any habit.",
		XPReward:    100,
		Check:       func(ctx Context) bool { return bestStreak(ctx) >= 7 },
	},
	{
		Type:        models.AchievementUnstoppable,
		Title:       "Unstoppable",
		Description: "Hold a 30-day streak on any habit.",
		XPReward:    500,
		Check:       func(ctx Context) bool { return bestStreak(ctx) >= 30 },
	},
	{
		Type:        models.AchievementPerfectDay,
		Title:       "Perfect Day",
		Description: "Complete every habit due in one day.",
		XPReward:    75,
		Check: func(ctx Context) bool {
			return ctx.TotalHabitsToday > 0 && ctx.CompletedToday == ctx.TotalHabitsToday
		},
	},
	{
		Type:        models.AchievementCenturion,
		Title:       "Centurion",
		Description: "Log 100 completions.",
		XPReward:    250,
		Check:       func(ctx Context) bool { return ctx.TotalCompletions >= 100 },
	},
	{
		Type:        models.AchievementLevel5,
		Title:       "Seasoned",
		Description: "Reach level 5.",
		XPReward:    100,
		Check:       func(ctx Context) bool { return ctx.Level >= 5 },
	},
	{
		Type:        models.AchievementLevel10,
		Title:       "Veteran",
		Description: "Reach level 10.",
		XPReward:    300,
		Check:       func(ctx Context) bool { return ctx.Level >= 10 },
	},
	{
		Type:        models.AchievementEarlyBird,
		Title:       "Early Bird",
		Description: "Complete a habit before 6 AM.",
		XPReward:    50,
		Check: func(ctx Context) bool {
			for _, c := range ctx.CompletionsToday {
				if c.Hour < constants.EarlyBirdHour {
					return true
				}
			}
			return false
		},
	},
	{
		Type:        models.AchievementNightOwl,
		Title:       "Night Owl",
		Description: "Complete a habit after 10 PM.",
		XPReward:    50,
		Check: func(ctx Context) bool {
			for _, c := range ctx.CompletionsToday {
				if c.Hour >= constants.NightOwlHour {
					return true
				}
			}
			return false
		},
	},
}

// Lookup returns the registry entry for a type.
func Lookup(t models.AchievementType) (Definition, bool) {
	for _, def := range Registry {
		if def.Type == t {
			return def, true
		}
	}
	return Definition{}, false
}

// Evaluate returns the types whose predicates hold and that are not already
// unlocked, in registry order. Side-effect free.
func Evaluate(ctx Context) []models.AchievementType {
	var unlocked []models.AchievementType
	for _, def := range Registry {
		if ctx.Unlocked[def.Type] {
			continue
		}
		if def.Check(ctx) {
			unlocked = append(unlocked, def.Type)
		}
	}
	return unlocked
}

func bestStreak(ctx Context) int {
	best := 0
	for _, h := range ctx.Habits {
		if h.CurrentStreak > best {
			best = h.CurrentStreak
		}
	}
	return best
}
