// Package engine orchestrates the progression rules: on a habit completion it
// computes XP, advances the streak, moves active quests, and probes for
// achievement unlocks, persisting through a storage.Provider. The engine is
// synchronous; correctness under concurrent refreshes rests on the store's
// unique constraints.
package engine

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emberhq/ember/internal/achievements"
	"github.com/emberhq/ember/internal/constants"
	"github.com/emberhq/ember/internal/errors"
	"github.com/emberhq/ember/internal/logger"
	"github.com/emberhq/ember/internal/models"
	"github.com/emberhq/ember/internal/progression"
	"github.com/emberhq/ember/internal/quests"
	"github.com/emberhq/ember/internal/storage"
	"github.com/emberhq/ember/internal/utils"
)

type Engine struct {
	store storage.Provider
}

func New(store storage.Provider) *Engine {
	return &Engine{store: store}
}

// QuestUpdate pairs a changed quest instance with its template for display.
type QuestUpdate struct {
	Quest    models.ActiveQuest
	Template models.QuestTemplate
	// Completed reports that this event pushed the quest to completed.
	Completed bool
}

// CompletionResult is everything a caller needs to present one completion.
type CompletionResult struct {
	Habit      models.Habit
	Completion models.Completion
	XP         progression.Breakdown
	Streak     progression.StreakUpdate
	Level      progression.LevelProgress
	LeveledUp  bool
	Unlocked   []achievements.Definition
	Quests     []QuestUpdate
	// Warnings carries non-fatal quest/achievement evaluation failures.
	Warnings []string
}

// ClaimResult describes a claimed quest reward.
type ClaimResult struct {
	Quest     models.ActiveQuest
	Template  models.QuestTemplate
	XPAwarded int
	Freezes   int
	Badge     string
	Level     progression.LevelProgress
	LeveledUp bool
}

// CompleteHabit records one habit completion at the given time and runs the
// full progression pipeline. A duplicate completion for the same day returns
// ErrAlreadyCompletedToday and changes nothing. Quest and achievement
// failures never roll back the completion; they surface as warnings.
func (e *Engine) CompleteHabit(habitID string, at time.Time) (CompletionResult, error) {
	var result CompletionResult

	profile, err := e.store.GetProfile()
	if err != nil {
		return result, errors.Persistence("load profile", err)
	}

	habit, err := e.store.GetHabit(habitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result, errors.ErrHabitNotFound
		}
		return result, errors.Persistence("load habit", err)
	}

	streak := progression.AdvanceStreak(habit, at, profile.StreakFreezes)
	xp, err := progression.ComputeCompletionXP(habit.Difficulty, streak.Current, at.Hour())
	if err != nil {
		return result, err
	}

	completion := models.Completion{
		ID:          uuid.New().String(),
		HabitID:     habit.ID,
		Day:         utils.DateKey(at),
		Hour:        at.Hour(),
		BaseXP:      xp.Base,
		StreakBonus: xp.StreakBonus,
		TimeBonus:   xp.TimeBonus,
		TotalXP:     xp.Total,
		CreatedAt:   at,
	}

	inserted, err := e.store.AddCompletion(completion)
	if err != nil {
		return result, errors.Persistence("insert completion", err)
	}
	if !inserted {
		return result, errors.ErrAlreadyCompletedToday
	}

	prevLevel := progression.Level(profile.TotalXP)

	habit.CurrentStreak = streak.Current
	habit.BestStreak = streak.Best
	habit.LastCompleted = streak.LastCompleted
	if err := e.store.UpdateHabit(habit); err != nil {
		return result, errors.Persistence("update streak", err)
	}

	if streak.FreezeConsumed {
		profile.StreakFreezes--
		logger.Info("Streak freeze consumed", "habit", habit.Name, "remaining", profile.StreakFreezes)
	}
	profile.TotalXP += xp.Total
	if err := e.store.SaveProfile(profile); err != nil {
		return result, errors.Persistence("save profile", err)
	}

	result.Habit = habit
	result.Completion = completion
	result.XP = xp
	result.Streak = streak

	// Quest and achievement evaluation are best-effort from here on.
	questUpdates, err := e.advanceQuests(profile, habit, streak.Current, xp.Total, at)
	if err != nil {
		logger.Warn("Quest evaluation failed", "error", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("quest progress not updated: %v", err))
	}
	result.Quests = questUpdates

	unlocked, bonusXP, err := e.probeAchievements(at)
	if err != nil {
		logger.Warn("Achievement evaluation failed", "error", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("achievements not evaluated: %v", err))
	}
	result.Unlocked = unlocked

	if bonusXP > 0 {
		profile.TotalXP += bonusXP
		if err := e.store.SaveProfile(profile); err != nil {
			logger.Warn("Achievement XP award failed", "error", err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("achievement XP not awarded: %v", err))
		}
	}

	result.Level = progression.Progress(profile.TotalXP)
	result.LeveledUp = result.Level.Level > prevLevel
	return result, nil
}

// RefreshQuests expires stale active quests and generates any missing
// instances for the current periods. Generation is idempotent: the selector
// is deterministic and the store's conditional insert collapses duplicates.
func (e *Engine) RefreshQuests(now time.Time) ([]models.ActiveQuest, error) {
	profile, err := e.store.GetProfile()
	if err != nil {
		return nil, errors.Persistence("load profile", err)
	}

	if err := e.expireStale(now); err != nil {
		return nil, err
	}

	dateKey := utils.DateKey(now)
	weekKey := utils.WeekKey(now)

	type batch struct {
		templates []models.QuestTemplate
		periodKey string
		expiresAt time.Time
	}
	batches := []batch{
		{quests.SelectDaily(profile.ID, dateKey, constants.DailyQuestCount), dateKey, utils.EndOfDay(now)},
		{quests.SelectWeekly(profile.ID, weekKey), weekKey, utils.EndOfWeek(now)},
	}
	if profile.Premium {
		batches = append(batches, batch{quests.SelectLegendary(profile.ID, weekKey), weekKey, utils.EndOfWeek(now)})
	}

	for _, b := range batches {
		for _, tmpl := range b.templates {
			quest := models.ActiveQuest{
				ID:          uuid.New().String(),
				TemplateID:  tmpl.ID,
				Tier:        tmpl.Tier,
				PeriodKey:   b.periodKey,
				Status:      models.QuestActive,
				ActivatedAt: now,
				ExpiresAt:   b.expiresAt,
			}
			if _, err := e.store.UpsertActiveQuest(quest); err != nil {
				return nil, errors.Persistence("generate quest", err)
			}
		}
	}

	current, err := e.store.GetActiveQuests(models.QuestActive, models.QuestCompleted)
	if err != nil {
		return nil, errors.Persistence("list quests", err)
	}
	return current, nil
}

// ClaimQuest pays out a completed quest: reward XP and streak freezes go to
// the profile, a QuestCompletion is recorded, and the instance leaves the
// active set.
func (e *Engine) ClaimQuest(questID string, now time.Time) (ClaimResult, error) {
	var result ClaimResult

	quest, err := e.store.GetActiveQuest(questID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result, errors.ErrQuestNotFound
		}
		return result, errors.Persistence("load quest", err)
	}
	if quest.Status != models.QuestCompleted {
		return result, errors.ErrQuestNotReadyToClaim
	}

	tmpl, ok := quests.TemplateByID(quest.TemplateID)
	if !ok {
		return result, fmt.Errorf("unknown quest template %q: %w", quest.TemplateID, errors.ErrInvalidInput)
	}

	profile, err := e.store.GetProfile()
	if err != nil {
		return result, errors.Persistence("load profile", err)
	}
	prevLevel := progression.Level(profile.TotalXP)

	quest.Status = models.QuestClaimed
	claimed := now
	quest.ClaimedAt = &claimed
	if err := e.store.UpdateActiveQuest(quest); err != nil {
		return result, errors.Persistence("claim quest", err)
	}

	profile.TotalXP += tmpl.Reward.XP
	profile.StreakFreezes += tmpl.Reward.StreakFreezes
	if err := e.store.SaveProfile(profile); err != nil {
		return result, errors.Persistence("award reward", err)
	}

	record := models.QuestCompletion{
		ID:             uuid.New().String(),
		TemplateID:     tmpl.ID,
		Tier:           tmpl.Tier,
		PeriodKey:      quest.PeriodKey,
		XPAwarded:      tmpl.Reward.XP,
		FreezesAwarded: tmpl.Reward.StreakFreezes,
		Badge:          tmpl.Reward.Badge,
		ClaimedAt:      now,
	}
	if err := e.store.AddQuestCompletion(record); err != nil {
		return result, errors.Persistence("record quest completion", err)
	}

	result.Quest = quest
	result.Template = tmpl
	result.XPAwarded = tmpl.Reward.XP
	result.Freezes = tmpl.Reward.StreakFreezes
	result.Badge = tmpl.Reward.Badge
	result.Level = progression.Progress(profile.TotalXP)
	result.LeveledUp = result.Level.Level > prevLevel
	return result, nil
}

func (e *Engine) expireStale(now time.Time) error {
	active, err := e.store.GetActiveQuests(models.QuestActive)
	if err != nil {
		return errors.Persistence("list quests", err)
	}
	for i := range active {
		if quests.Advance(&active[i], now) {
			if err := e.store.UpdateActiveQuest(active[i]); err != nil {
				return errors.Persistence("expire quest", err)
			}
			logger.Debug("Quest expired", "quest", active[i].TemplateID, "period", active[i].PeriodKey)
		}
	}
	return nil
}

// advanceQuests refreshes the quest set and applies one completion event to
// every active quest.
func (e *Engine) advanceQuests(profile models.Profile, habit models.Habit, streak, xpEarned int, at time.Time) ([]QuestUpdate, error) {
	if _, err := e.RefreshQuests(at); err != nil {
		return nil, err
	}

	completedToday, dueToday, err := e.dayCounts(at)
	if err != nil {
		return nil, err
	}
	consecutive, err := e.consecutiveDays(at)
	if err != nil {
		return nil, err
	}

	event := quests.Event{
		Category:        habit.Category,
		Difficulty:      habit.Difficulty,
		Hour:            at.Hour(),
		CompletedToday:  completedToday,
		DueToday:        dueToday,
		CurrentStreak:   streak,
		XPEarned:        xpEarned,
		ConsecutiveDays: consecutive,
	}

	active, err := e.store.GetActiveQuests(models.QuestActive)
	if err != nil {
		return nil, errors.Persistence("list quests", err)
	}

	var updates []QuestUpdate
	for i := range active {
		tmpl, ok := quests.TemplateByID(active[i].TemplateID)
		if !ok {
			logger.Warn("Skipping quest with unknown template", "template", active[i].TemplateID)
			continue
		}
		if !quests.ApplyEvent(&active[i], tmpl.Requirement, event, at) {
			continue
		}
		if err := e.store.UpdateActiveQuest(active[i]); err != nil {
			return updates, errors.Persistence("update quest", err)
		}
		updates = append(updates, QuestUpdate{
			Quest:     active[i],
			Template:  tmpl,
			Completed: active[i].Status == models.QuestCompleted,
		})
	}
	return updates, nil
}

// probeAchievements evaluates the registry against a fresh snapshot and
// persists new unlocks. Returns the unlocked definitions and their total XP
// bonus. Unlock inserts are idempotent at the store, so concurrent probes
// cannot double-award.
func (e *Engine) probeAchievements(at time.Time) ([]achievements.Definition, int, error) {
	ctx, err := e.snapshot(at)
	if err != nil {
		return nil, 0, err
	}

	var unlocked []achievements.Definition
	bonusXP := 0
	for _, t := range achievements.Evaluate(ctx) {
		def, ok := achievements.Lookup(t)
		if !ok {
			continue
		}
		inserted, err := e.store.AddAchievement(models.Achievement{Type: t, UnlockedAt: at})
		if err != nil {
			return unlocked, bonusXP, errors.Persistence("unlock achievement", err)
		}
		if !inserted {
			// Another refresh beat us to it.
			continue
		}
		logger.Info("Achievement unlocked", "type", t)
		unlocked = append(unlocked, def)
		bonusXP += def.XPReward
	}
	return unlocked, bonusXP, nil
}

// snapshot aggregates the achievement evaluation context.
func (e *Engine) snapshot(at time.Time) (achievements.Context, error) {
	var ctx achievements.Context

	habits, err := e.store.GetAllHabits(false, false)
	if err != nil {
		return ctx, errors.Persistence("list habits", err)
	}
	total, err := e.store.CountCompletions()
	if err != nil {
		return ctx, errors.Persistence("count completions", err)
	}
	today, err := e.store.GetCompletionsForDay(utils.DateKey(at))
	if err != nil {
		return ctx, errors.Persistence("list completions", err)
	}
	records, err := e.store.GetAchievements()
	if err != nil {
		return ctx, errors.Persistence("list achievements", err)
	}
	profile, err := e.store.GetProfile()
	if err != nil {
		return ctx, errors.Persistence("load profile", err)
	}

	unlocked := make(map[models.AchievementType]bool, len(records))
	for _, a := range records {
		unlocked[a.Type] = true
	}

	_, dueToday, err := e.dayCounts(at)
	if err != nil {
		return ctx, err
	}

	ctx = achievements.Context{
		Habits:           habits,
		TotalCompletions: total,
		CompletionsToday: today,
		Unlocked:         unlocked,
		TotalXP:          profile.TotalXP,
		Level:            progression.Level(profile.TotalXP),
		CompletedToday:   len(today),
		TotalHabitsToday: dueToday,
		CurrentHour:      at.Hour(),
	}
	return ctx, nil
}

// dayCounts returns how many habits were completed today and how many are due.
func (e *Engine) dayCounts(at time.Time) (completed, due int, err error) {
	today, err := e.store.GetCompletionsForDay(utils.DateKey(at))
	if err != nil {
		return 0, 0, errors.Persistence("list completions", err)
	}
	habits, err := e.store.GetAllHabits(false, false)
	if err != nil {
		return 0, 0, errors.Persistence("list habits", err)
	}
	for _, h := range habits {
		if h.Frequency.DueOn(at) {
			due++
		}
	}
	return len(today), due, nil
}

// consecutiveDays counts the run of consecutive calendar days with at least
// one completion, ending today.
func (e *Engine) consecutiveDays(at time.Time) (int, error) {
	days, err := e.store.GetCompletionDays(366)
	if err != nil {
		return 0, errors.Persistence("list completion days", err)
	}

	seen := make(map[string]bool, len(days))
	for _, d := range days {
		seen[d] = true
	}

	count := 0
	day := at
	for seen[utils.DateKey(day)] {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count, nil
}
