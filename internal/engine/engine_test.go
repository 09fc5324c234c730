package engine

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/emberhq/ember/internal/errors"
	"github.com/emberhq/ember/internal/models"
	"github.com/emberhq/ember/internal/quests"
	"github.com/emberhq/ember/internal/storage/sqlite"
)

func setupEngine(t *testing.T, premium bool) (*sqlite.Store, *Engine) {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "ember.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	profile := models.Profile{
		ID:        "user-1",
		Premium:   premium,
		CreatedAt: time.Now(),
	}
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}

	return store, New(store)
}

func addHabit(t *testing.T, store *sqlite.Store, id string, difficulty models.Difficulty) models.Habit {
	t.Helper()
	habit := models.Habit{
		ID:         id,
		Name:       "habit " + id,
		Category:   models.CategoryFitness,
		Difficulty: difficulty,
		Frequency:  models.Frequency{Type: models.FrequencyDaily},
		CreatedAt:  time.Now(),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	return habit
}

func TestCompleteHabitFullFlow(t *testing.T) {
	store, eng := setupEngine(t, false)
	habit := addHabit(t, store, "h1", models.DifficultyEasy)

	at := time.Date(2026, 3, 10, 6, 30, 0, 0, time.Local)
	result, err := eng.CompleteHabit(habit.ID, at)
	if err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	// Easy base 10, 1-day streak bonus 0.05, morning bonus 0.10.
	if result.XP.Total != 12 {
		t.Errorf("XP.Total = %d, want 12", result.XP.Total)
	}
	if result.Streak.Current != 1 || result.Streak.Best != 1 {
		t.Errorf("streak = %d/%d, want 1/1", result.Streak.Current, result.Streak.Best)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	// First completion of the only due habit unlocks First Step and Perfect
	// Day for 25 + 75 bonus XP.
	unlockedTypes := map[models.AchievementType]bool{}
	for _, def := range result.Unlocked {
		unlockedTypes[def.Type] = true
	}
	if !unlockedTypes[models.AchievementFirstStep] {
		t.Error("first_step not unlocked")
	}
	if !unlockedTypes[models.AchievementPerfectDay] {
		t.Error("perfect_day not unlocked")
	}

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if want := 12 + 25 + 75; profile.TotalXP != want {
		t.Errorf("TotalXP = %d, want %d", profile.TotalXP, want)
	}
	if result.Level.Level != 2 || !result.LeveledUp {
		t.Errorf("Level = %d (leveledUp=%v), want level 2 with level-up", result.Level.Level, result.LeveledUp)
	}

	stored, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if stored.CurrentStreak != 1 || stored.LastCompleted != "2026-03-10" {
		t.Errorf("persisted habit streak=%d last=%q", stored.CurrentStreak, stored.LastCompleted)
	}
}

func TestCompleteHabitTwiceSameDay(t *testing.T) {
	store, eng := setupEngine(t, false)
	habit := addHabit(t, store, "h1", models.DifficultyMedium)

	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	if _, err := eng.CompleteHabit(habit.ID, at); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}

	before, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}

	_, err = eng.CompleteHabit(habit.ID, at.Add(2*time.Hour))
	if !errors.Is(err, errors.ErrAlreadyCompletedToday) {
		t.Fatalf("expected ErrAlreadyCompletedToday, got %v", err)
	}

	after, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if after.TotalXP != before.TotalXP {
		t.Errorf("duplicate completion changed TotalXP: %d -> %d", before.TotalXP, after.TotalXP)
	}

	stored, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if stored.CurrentStreak != 1 {
		t.Errorf("duplicate completion changed streak to %d", stored.CurrentStreak)
	}
}

func TestCompleteHabitNextDayExtendsStreak(t *testing.T) {
	store, eng := setupEngine(t, false)
	habit := addHabit(t, store, "h1", models.DifficultyEasy)

	day1 := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	if _, err := eng.CompleteHabit(habit.ID, day1); err != nil {
		t.Fatalf("day 1 failed: %v", err)
	}
	result, err := eng.CompleteHabit(habit.ID, day1.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("day 2 failed: %v", err)
	}
	if result.Streak.Current != 2 {
		t.Errorf("streak = %d, want 2", result.Streak.Current)
	}
}

func TestCompleteHabitUnknownHabit(t *testing.T) {
	_, eng := setupEngine(t, false)

	_, err := eng.CompleteHabit("missing", time.Now())
	if !errors.Is(err, errors.ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestRefreshQuestsIdempotent(t *testing.T) {
	_, eng := setupEngine(t, false)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	first, err := eng.RefreshQuests(now)
	if err != nil {
		t.Fatalf("RefreshQuests failed: %v", err)
	}
	// 3 daily + 1 weekly; no legendary without premium.
	if len(first) != 4 {
		t.Fatalf("expected 4 quests, got %d", len(first))
	}

	second, err := eng.RefreshQuests(now.Add(time.Hour))
	if err != nil {
		t.Fatalf("RefreshQuests (2nd) failed: %v", err)
	}
	if len(second) != 4 {
		t.Errorf("second refresh produced %d quests, want 4", len(second))
	}

	firstIDs := map[string]bool{}
	for _, q := range first {
		firstIDs[q.TemplateID] = true
	}
	for _, q := range second {
		if !firstIDs[q.TemplateID] {
			t.Errorf("second refresh introduced new template %q", q.TemplateID)
		}
	}
}

func TestRefreshQuestsPremiumGetsLegendary(t *testing.T) {
	_, eng := setupEngine(t, true)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	current, err := eng.RefreshQuests(now)
	if err != nil {
		t.Fatalf("RefreshQuests failed: %v", err)
	}
	if len(current) != 5 {
		t.Fatalf("expected 5 quests for premium, got %d", len(current))
	}

	hasLegendary := false
	for _, q := range current {
		if q.Tier == models.TierLegendary {
			hasLegendary = true
		}
	}
	if !hasLegendary {
		t.Error("no legendary quest generated for premium profile")
	}
}

func TestRefreshQuestsExpiresStale(t *testing.T) {
	_, eng := setupEngine(t, false)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	if _, err := eng.RefreshQuests(now); err != nil {
		t.Fatalf("RefreshQuests failed: %v", err)
	}

	// Two days later every daily quest from the 10th is past its deadline and
	// a fresh set is generated for the new day.
	later := now.AddDate(0, 0, 2)
	current, err := eng.RefreshQuests(later)
	if err != nil {
		t.Fatalf("RefreshQuests (later) failed: %v", err)
	}
	for _, q := range current {
		if !q.ExpiresAt.After(later) {
			t.Errorf("stale quest %q still in the active set", q.TemplateID)
		}
	}
}

func TestClaimQuest(t *testing.T) {
	store, eng := setupEngine(t, false)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	current, err := eng.RefreshQuests(now)
	if err != nil {
		t.Fatalf("RefreshQuests failed: %v", err)
	}

	quest := current[0]
	if _, err := eng.ClaimQuest(quest.ID, now); !errors.Is(err, errors.ErrQuestNotReadyToClaim) {
		t.Fatalf("claiming an unfinished quest: expected ErrQuestNotReadyToClaim, got %v", err)
	}

	tmpl, ok := quests.TemplateByID(quest.TemplateID)
	if !ok {
		t.Fatalf("unknown template %q", quest.TemplateID)
	}

	quest.Status = models.QuestCompleted
	completed := now
	quest.CompletedAt = &completed
	quest.Progress = tmpl.Requirement.Target
	if err := store.UpdateActiveQuest(quest); err != nil {
		t.Fatalf("UpdateActiveQuest failed: %v", err)
	}

	result, err := eng.ClaimQuest(quest.ID, now)
	if err != nil {
		t.Fatalf("ClaimQuest failed: %v", err)
	}
	if result.XPAwarded != tmpl.Reward.XP {
		t.Errorf("XPAwarded = %d, want %d", result.XPAwarded, tmpl.Reward.XP)
	}

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile.TotalXP != tmpl.Reward.XP {
		t.Errorf("TotalXP = %d, want %d", profile.TotalXP, tmpl.Reward.XP)
	}
	if profile.StreakFreezes != tmpl.Reward.StreakFreezes {
		t.Errorf("StreakFreezes = %d, want %d", profile.StreakFreezes, tmpl.Reward.StreakFreezes)
	}

	// Claiming again fails and the quest leaves the active set.
	if _, err := eng.ClaimQuest(quest.ID, now); !errors.Is(err, errors.ErrQuestNotReadyToClaim) {
		t.Errorf("double claim: expected ErrQuestNotReadyToClaim, got %v", err)
	}
	remaining, err := store.GetActiveQuests(models.QuestActive, models.QuestCompleted)
	if err != nil {
		t.Fatalf("GetActiveQuests failed: %v", err)
	}
	for _, q := range remaining {
		if q.ID == quest.ID {
			t.Error("claimed quest still listed as active or completed")
		}
	}

	history, err := store.GetQuestCompletions()
	if err != nil {
		t.Fatalf("GetQuestCompletions failed: %v", err)
	}
	if len(history) != 1 || history[0].TemplateID != tmpl.ID {
		t.Errorf("quest completion record missing or wrong: %+v", history)
	}
}

func TestClaimQuestUnknown(t *testing.T) {
	_, eng := setupEngine(t, false)
	if _, err := eng.ClaimQuest("missing", time.Now()); !errors.Is(err, errors.ErrQuestNotFound) {
		t.Fatalf("expected ErrQuestNotFound, got %v", err)
	}
}

func TestCompleteHabitAdvancesMatchingQuests(t *testing.T) {
	store, eng := setupEngine(t, false)
	habit := addHabit(t, store, "h1", models.DifficultyEasy)

	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	if _, err := eng.CompleteHabit(habit.ID, at); err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	current, err := store.GetActiveQuests(models.QuestActive, models.QuestCompleted)
	if err != nil {
		t.Fatalf("GetActiveQuests failed: %v", err)
	}

	// Every quest whose requirement the completion satisfied must show
	// progress; a complete_any quest in particular counts the event.
	for _, q := range current {
		tmpl, ok := quests.TemplateByID(q.TemplateID)
		if !ok {
			t.Fatalf("unknown template %q", q.TemplateID)
		}
		if tmpl.Requirement.Type == models.RequireCompleteAny && q.Progress < 1 {
			t.Errorf("complete_any quest %q has no progress", q.TemplateID)
		}
		if tmpl.Requirement.Type == models.RequireXPEarn && q.Progress < 1 {
			t.Errorf("xp_earn quest %q has no progress", q.TemplateID)
		}
	}
}
