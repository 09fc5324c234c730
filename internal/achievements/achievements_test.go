package achievements

import (
	"testing"

	"github.com/emberhq/ember/internal/models"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want []models.AchievementType
	}{
		{
			name: "empty snapshot unlocks nothing",
			ctx:  Context{},
			want: nil,
		},
		{
			name: "first completion",
			ctx:  Context{TotalCompletions: 1},
			want: []models.AchievementType{models.AchievementFirstStep},
		},
		{
			name: "five habits tracked",
			ctx: Context{
				Habits: make([]models.Habit, 5),
			},
			want: []models.AchievementType{models.AchievementHabitBuilder},
		},
		{
			name: "seven day streak",
			ctx: Context{
				Habits: []models.Habit{{CurrentStreak: 7}},
			},
			want: []models.AchievementType{models.AchievementWeekWarrior},
		},
		{
			name: "thirty day streak unlocks both streak tiers",
			ctx: Context{
				Habits: []models.Habit{{CurrentStreak: 30}},
			},
			want: []models.AchievementType{
				models.AchievementWeekWarrior,
				models.AchievementUnstoppable,
			},
		},
		{
			name: "perfect day requires at least one due habit",
			ctx:  Context{CompletedToday: 0, TotalHabitsToday: 0},
			want: nil,
		},
		{
			name: "perfect day",
			ctx:  Context{CompletedToday: 3, TotalHabitsToday: 3},
			want: []models.AchievementType{models.AchievementPerfectDay},
		},
		{
			name: "hundred completions includes first step",
			ctx:  Context{TotalCompletions: 100},
			want: []models.AchievementType{
				models.AchievementFirstStep,
				models.AchievementCenturion,
			},
		},
		{
			name: "level milestones",
			ctx:  Context{Level: 10},
			want: []models.AchievementType{
				models.AchievementLevel5,
				models.AchievementLevel10,
			},
		},
		{
			name: "early bird checks completion hour",
			ctx: Context{
				CompletionsToday: []models.Completion{{Hour: 5}},
			},
			want: []models.AchievementType{models.AchievementEarlyBird},
		},
		{
			name: "six am is not early bird",
			ctx: Context{
				CompletionsToday: []models.Completion{{Hour: 6}},
			},
			want: nil,
		},
		{
			name: "night owl at ten pm",
			ctx: Context{
				CompletionsToday: []models.Completion{{Hour: 22}},
			},
			want: []models.AchievementType{models.AchievementNightOwl},
		},
		{
			name: "already unlocked types are skipped",
			ctx: Context{
				TotalCompletions: 100,
				Unlocked: map[models.AchievementType]bool{
					models.AchievementFirstStep: true,
				},
			},
			want: []models.AchievementType{models.AchievementCenturion},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.ctx)
			if len(got) != len(tt.want) {
				t.Fatalf("Evaluate() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Evaluate()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	ctx := Context{
		TotalCompletions: 1,
		Unlocked:         map[models.AchievementType]bool{},
	}
	first := Evaluate(ctx)
	second := Evaluate(ctx)
	if len(first) != len(second) {
		t.Fatalf("repeated evaluation differs: %v vs %v", first, second)
	}
	if len(ctx.Unlocked) != 0 {
		t.Errorf("Evaluate mutated the unlocked set: %v", ctx.Unlocked)
	}
}

func TestRegistryLookup(t *testing.T) {
	for _, def := range Registry {
		got, ok := Lookup(def.Type)
		if !ok {
			t.Errorf("Lookup(%q) not found", def.Type)
			continue
		}
		if got.Title != def.Title {
			t.Errorf("Lookup(%q).Title = %q, want %q", def.Type, got.Title, def.Title)
		}
		if def.XPReward <= 0 {
			t.Errorf("%q has non-positive XP reward %d", def.Type, def.XPReward)
		}
	}

	if _, ok := Lookup(models.AchievementType("nope")); ok {
		t.Error("Lookup of unknown type should fail")
	}
}
