package progression

import (
	"testing"
	"time"

	"github.com/emberhq/ember/internal/models"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAdvanceStreak(t *testing.T) {
	daily := models.Frequency{Type: models.FrequencyDaily}

	tests := []struct {
		name        string
		habit       models.Habit
		day         time.Time
		freezes     int
		wantCurrent int
		wantBest    int
		wantReset   bool
		wantFreeze  bool
	}{
		{
			name:        "first ever completion",
			habit:       models.Habit{Frequency: daily},
			day:         day("2026-03-10"),
			wantCurrent: 1,
			wantBest:    1,
		},
		{
			name: "consecutive day extends the chain",
			habit: models.Habit{
				Frequency:     daily,
				CurrentStreak: 4,
				BestStreak:    6,
				LastCompleted: "2026-03-09",
			},
			day:         day("2026-03-10"),
			wantCurrent: 5,
			wantBest:    6,
		},
		{
			name: "new best streak",
			habit: models.Habit{
				Frequency:     daily,
				CurrentStreak: 6,
				BestStreak:    6,
				LastCompleted: "2026-03-09",
			},
			day:         day("2026-03-10"),
			wantCurrent: 7,
			wantBest:    7,
		},
		{
			name: "gap without freeze resets to 1",
			habit: models.Habit{
				Frequency:     daily,
				CurrentStreak: 12,
				BestStreak:    12,
				LastCompleted: "2026-03-07",
			},
			day:         day("2026-03-10"),
			wantCurrent: 1,
			wantBest:    12,
			wantReset:   true,
		},
		{
			name: "gap bridged by a streak freeze",
			habit: models.Habit{
				Frequency:     daily,
				CurrentStreak: 12,
				BestStreak:    12,
				LastCompleted: "2026-03-07",
			},
			day:         day("2026-03-10"),
			freezes:     1,
			wantCurrent: 13,
			wantBest:    13,
			wantFreeze:  true,
		},
		{
			name: "weekday habit skips the weekend",
			habit: models.Habit{
				Frequency:     models.Frequency{Type: models.FrequencyWeekdays},
				CurrentStreak: 5,
				BestStreak:    5,
				LastCompleted: "2026-03-06", // Friday
			},
			day:         day("2026-03-09"), // Monday
			wantCurrent: 6,
			wantBest:    6,
		},
		{
			name: "custom-days habit counts from the previous due day",
			habit: models.Habit{
				Frequency: models.Frequency{
					Type:       models.FrequencyCustom,
					CustomDays: []time.Weekday{time.Monday, time.Thursday},
				},
				CurrentStreak: 3,
				BestStreak:    4,
				LastCompleted: "2026-03-05", // Thursday
			},
			day:         day("2026-03-09"), // Monday
			wantCurrent: 4,
			wantBest:    4,
		},
		{
			name: "unparseable last completion resets",
			habit: models.Habit{
				Frequency:     daily,
				CurrentStreak: 3,
				BestStreak:    3,
				LastCompleted: "not-a-date",
			},
			day:         day("2026-03-10"),
			wantCurrent: 1,
			wantBest:    3,
			wantReset:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdvanceStreak(tt.habit, tt.day, tt.freezes)
			if got.Current != tt.wantCurrent {
				t.Errorf("Current = %d, want %d", got.Current, tt.wantCurrent)
			}
			if got.Best != tt.wantBest {
				t.Errorf("Best = %d, want %d", got.Best, tt.wantBest)
			}
			if got.Reset != tt.wantReset {
				t.Errorf("Reset = %v, want %v", got.Reset, tt.wantReset)
			}
			if got.FreezeConsumed != tt.wantFreeze {
				t.Errorf("FreezeConsumed = %v, want %v", got.FreezeConsumed, tt.wantFreeze)
			}
			if want := tt.day.Format("2006-01-02"); got.LastCompleted != want {
				t.Errorf("LastCompleted = %q, want %q", got.LastCompleted, want)
			}
		})
	}
}
