// Package quests holds the quest template catalogue, the deterministic
// per-period selector, and the quest instance state machine.
package quests

import "github.com/emberhq/ember/internal/models"

// The static template pool, partitioned by tier. Template IDs are stable
// slugs; stored instances reference them across restarts.
var dailyTemplates = []models.QuestTemplate{
	{
		ID: "daily-dawn-patrol", Tier: models.TierDaily,
		Title:       "Dawn Patrol",
		Description: "Complete a habit before 9 AM.",
		Requirement: models.Requirement{Type: models.RequireCompleteBeforeTime, Target: 1, Hour: 9},
		Reward:      models.Reward{XP: 30},
	},
	{
		ID: "daily-triple-threat", Tier: models.TierDaily,
		Title:       "Triple Threat",
		Description: "Complete three habits today.",
		Requirement: models.Requirement{Type: models.RequireCompleteAny, Target: 3},
		Reward:      models.Reward{XP: 50},
	},
	{
		ID: "daily-double-down", Tier: models.TierDaily,
		Title:       "Double Down",
		Description: "Complete two habits today.",
		Requirement: models.Requirement{Type: models.RequireCompleteAny, Target: 2},
		Reward:      models.Reward{XP: 30},
	},
	{
		ID: "daily-night-shift", Tier: models.TierDaily,
		Title:       "Night Shift",
		Description: "Complete a habit after 8 PM.",
		Requirement: models.Requirement{Type: models.RequireCompleteAfterTime, Target: 1, Hour: 20},
		Reward:      models.Reward{XP: 30},
	},
	{
		ID: "daily-iron-body", Tier: models.TierDaily,
		Title:       "Iron Body",
		Description: "Complete a fitness habit.",
		Requirement: models.Requirement{Type: models.RequireCompleteCategory, Target: 1, Category: models.CategoryFitness},
		Reward:      models.Reward{XP: 25},
	},
	{
		ID: "daily-still-mind", Tier: models.TierDaily,
		Title:       "Still Mind",
		Description: "Complete a mindfulness habit.",
		Requirement: models.Requirement{Type: models.RequireCompleteCategory, Target: 1, Category: models.CategoryMindfulness},
		Reward:      models.Reward{XP: 25},
	},
	{
		ID: "daily-bookworm", Tier: models.TierDaily,
		Title:       "Bookworm",
		Description: "Complete a learning habit.",
		Requirement: models.Requirement{Type: models.RequireCompleteCategory, Target: 1, Category: models.CategoryLearning},
		Reward:      models.Reward{XP: 25},
	},
	{
		ID: "daily-no-excuses", Tier: models.TierDaily,
		Title:       "No Excuses",
		Description: "Complete a hard habit.",
		Requirement: models.Requirement{Type: models.RequireCompleteDifficulty, Target: 1, Difficulty: models.DifficultyHard},
		Reward:      models.Reward{XP: 40},
	},
	{
		ID: "daily-clean-sweep", Tier: models.TierDaily,
		Title:       "Clean Sweep",
		Description: "Complete every habit due today.",
		Requirement: models.Requirement{Type: models.RequirePerfectDay, Target: 1},
		Reward:      models.Reward{XP: 60},
	},
	{
		ID: "daily-xp-rush", Tier: models.TierDaily,
		Title:       "XP Rush",
		Description: "Earn 100 XP from completions today.",
		Requirement: models.Requirement{Type: models.RequireXPEarn, Target: 100},
		Reward:      models.Reward{XP: 45},
	},
}

var weeklyTemplates = []models.QuestTemplate{
	{
		ID: "weekly-grinder", Tier: models.TierWeekly,
		Title:       "The Grinder",
		Description: "Complete 15 habits this week.",
		Requirement: models.Requirement{Type: models.RequireCompleteAny, Target: 15},
		Reward:      models.Reward{XP: 150, StreakFreezes: 1},
	},
	{
		ID: "weekly-streak-keeper", Tier: models.TierWeekly,
		Title:       "Streak Keeper",
		Description: "Reach a 7-day streak on any habit.",
		Requirement: models.Requirement{Type: models.RequireStreakReach, Target: 7},
		Reward:      models.Reward{XP: 200, StreakFreezes: 1},
	},
	{
		ID: "weekly-perfectionist", Tier: models.TierWeekly,
		Title:       "Perfectionist",
		Description: "Have three perfect days this week.",
		Requirement: models.Requirement{Type: models.RequirePerfectDay, Target: 3},
		Reward:      models.Reward{XP: 250},
	},
	{
		ID: "weekly-xp-hoarder", Tier: models.TierWeekly,
		Title:       "XP Hoarder",
		Description: "Earn 500 XP from completions this week.",
		Requirement: models.Requirement{Type: models.RequireXPEarn, Target: 500},
		Reward:      models.Reward{XP: 200},
	},
	{
		ID: "weekly-iron-will", Tier: models.TierWeekly,
		Title:       "Iron Will",
		Description: "Complete five hard habits this week.",
		Requirement: models.Requirement{Type: models.RequireCompleteDifficulty, Target: 5, Difficulty: models.DifficultyHard},
		Reward:      models.Reward{XP: 180},
	},
	{
		ID: "weekly-daily-devotion", Tier: models.TierWeekly,
		Title:       "Daily Devotion",
		Description: "Stay active five days in a row.",
		Requirement: models.Requirement{Type: models.RequireConsecutiveDays, Target: 5},
		Reward:      models.Reward{XP: 160, StreakFreezes: 1},
	},
}

var legendaryTemplates = []models.QuestTemplate{
	{
		ID: "legendary-ascendant", Tier: models.TierLegendary,
		Title:       "The Ascendant",
		Description: "Earn 1500 XP from completions this week.",
		Requirement: models.Requirement{Type: models.RequireXPEarn, Target: 1500},
		Reward:      models.Reward{XP: 500, Badge: "ascendant"},
	},
	{
		ID: "legendary-unbroken", Tier: models.TierLegendary,
		Title:       "Unbroken",
		Description: "Reach a 21-day streak on any habit.",
		Requirement: models.Requirement{Type: models.RequireStreakReach, Target: 21},
		Reward:      models.Reward{XP: 600, StreakFreezes: 2, Badge: "unbroken"},
	},
	{
		ID: "legendary-flawless-week", Tier: models.TierLegendary,
		Title:       "Flawless Week",
		Description: "Have a perfect day every day this week.",
		Requirement: models.Requirement{Type: models.RequirePerfectDay, Target: 7},
		Reward:      models.Reward{XP: 750, Badge: "flawless"},
	},
	{
		ID: "legendary-relentless", Tier: models.TierLegendary,
		Title:       "Relentless",
		Description: "Stay active fourteen days in a row.",
		Requirement: models.Requirement{Type: models.RequireConsecutiveDays, Target: 14},
		Reward:      models.Reward{XP: 650, StreakFreezes: 1, Badge: "relentless"},
	},
}

// Pool returns the template pool for a tier. The returned slice is shared;
// callers must not modify it.
func Pool(tier models.QuestTier) []models.QuestTemplate {
	switch tier {
	case models.TierDaily:
		return dailyTemplates
	case models.TierWeekly:
		return weeklyTemplates
	case models.TierLegendary:
		return legendaryTemplates
	default:
		return nil
	}
}

// TemplateByID looks a template up across all tiers.
func TemplateByID(id string) (models.QuestTemplate, bool) {
	for _, tier := range []models.QuestTier{models.TierDaily, models.TierWeekly, models.TierLegendary} {
		for _, tmpl := range Pool(tier) {
			if tmpl.ID == id {
				return tmpl, true
			}
		}
	}
	return models.QuestTemplate{}, false
}
