package models

import "time"

type Category string

const (
	CategoryHealth       Category = "health"
	CategoryFitness      Category = "fitness"
	CategoryMindfulness  Category = "mindfulness"
	CategoryProductivity Category = "productivity"
	CategoryLearning     Category = "learning"
	CategorySocial       Category = "social"
	CategoryCreativity   Category = "creativity"
	CategoryOther        Category = "other"
)

// Categories lists every valid habit category in display order.
var Categories = []Category{
	CategoryHealth,
	CategoryFitness,
	CategoryMindfulness,
	CategoryProductivity,
	CategoryLearning,
	CategorySocial,
	CategoryCreativity,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

type FrequencyType string

const (
	FrequencyDaily    FrequencyType = "daily"
	FrequencyWeekdays FrequencyType = "weekdays"
	FrequencyWeekends FrequencyType = "weekends"
	FrequencyCustom   FrequencyType = "custom"
)

// Frequency describes which days a habit is due.
type Frequency struct {
	Type       FrequencyType  `json:"type"`
	CustomDays []time.Weekday `json:"custom_days,omitempty"`
}

// DueOn reports whether a habit with this frequency is due on the given day.
// A custom frequency with no days behaves like daily.
func (f Frequency) DueOn(day time.Time) bool {
	switch f.Type {
	case FrequencyDaily:
		return true
	case FrequencyWeekdays:
		wd := day.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	case FrequencyWeekends:
		wd := day.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	case FrequencyCustom:
		if len(f.CustomDays) == 0 {
			return true
		}
		for _, wd := range f.CustomDays {
			if wd == day.Weekday() {
				return true
			}
		}
		return false
	default:
		return true
	}
}

type Habit struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      Category   `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	Frequency     Frequency  `json:"frequency"`
	CurrentStreak int        `json:"current_streak"`
	BestStreak    int        `json:"best_streak"`
	LastCompleted string     `json:"last_completed,omitempty"` // YYYY-MM-DD format
	CreatedAt     time.Time  `json:"created_at"`
	ArchivedAt    *time.Time `json:"archived_at,omitempty"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

// Completion records that a habit was done on one calendar day. At most one
// exists per (habit, day); the store enforces this.
type Completion struct {
	ID          string    `json:"id"`
	HabitID     string    `json:"habit_id"`
	Day         string    `json:"day"` // YYYY-MM-DD format
	Hour        int       `json:"hour"`
	BaseXP      int       `json:"base_xp"`
	StreakBonus float64   `json:"streak_bonus"`
	TimeBonus   float64   `json:"time_bonus"`
	TotalXP     int       `json:"total_xp"`
	CreatedAt   time.Time `json:"created_at"`
}
