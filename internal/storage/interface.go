package storage

import "github.com/emberhq/ember/internal/models"

// Provider is the persistence service the engine talks to. Implementations
// must enforce three uniqueness constraints: (habit_id, day) on completions,
// (type) on achievements, and (template_id, period_key) on active quests.
// Conflict-aware writes report conflicts through their return values so the
// engine can map them onto its error taxonomy.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile
	GetProfile() (models.Profile, error)
	SaveProfile(models.Profile) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Completions. AddCompletion returns (false, nil) when a completion for
	// the same (habit, day) already exists; nothing is written in that case.
	AddCompletion(models.Completion) (bool, error)
	GetCompletion(habitID, day string) (models.Completion, error)
	GetCompletionsForDay(day string) ([]models.Completion, error)
	GetCompletionsForHabit(habitID, startDay, endDay string) ([]models.Completion, error)
	CountCompletions() (int, error)
	// GetCompletionDays returns distinct completion days, newest first.
	GetCompletionDays(limit int) ([]string, error)

	// Achievements. AddAchievement is idempotent: inserting an already
	// unlocked type returns (false, nil).
	AddAchievement(models.Achievement) (bool, error)
	GetAchievements() ([]models.Achievement, error)

	// Quests. UpsertActiveQuest is a conditional insert keyed on
	// (template_id, period_key): it returns (false, nil) when an instance for
	// that template and period already exists.
	UpsertActiveQuest(models.ActiveQuest) (bool, error)
	GetActiveQuest(id string) (models.ActiveQuest, error)
	GetActiveQuests(statuses ...models.QuestStatus) ([]models.ActiveQuest, error)
	UpdateActiveQuest(models.ActiveQuest) error
	AddQuestCompletion(models.QuestCompletion) error
	GetQuestCompletions() ([]models.QuestCompletion, error)

	// Utils
	GetConfigPath() string
}
