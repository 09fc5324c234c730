package models

import "time"

// Profile is the single local user's progression state. Level is always
// derived from TotalXP and never stored.
type Profile struct {
	ID            string    `json:"id"`
	TotalXP       int       `json:"total_xp"`
	StreakFreezes int       `json:"streak_freezes"`
	Premium       bool      `json:"premium"`
	CreatedAt     time.Time `json:"created_at"`
}

type AchievementType string

const (
	AchievementFirstStep    AchievementType = "first_step"
	AchievementHabitBuilder AchievementType = "habit_builder"
	AchievementWeekWarrior  AchievementType = "week_warrior"
	AchievementUnstoppable  AchievementType = "unstoppable"
	AchievementPerfectDay   AchievementType = "perfect_day"
	AchievementCenturion    AchievementType = "centurion"
	AchievementLevel5       AchievementType = "level_5"
	AchievementLevel10      AchievementType = "level_10"
	AchievementEarlyBird    AchievementType = "early_bird"
	AchievementNightOwl     AchievementType = "night_owl"
)

// Achievement is a one-time permanent unlock. At most one row exists per type.
type Achievement struct {
	Type       AchievementType `json:"type"`
	UnlockedAt time.Time       `json:"unlocked_at"`
}
