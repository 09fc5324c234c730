package utils

import (
	"testing"
	"time"

	"github.com/emberhq/ember/internal/models"
)

func mustDay(t *testing.T, key string) time.Time {
	t.Helper()
	day, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("ParseDateKey(%q) failed: %v", key, err)
	}
	return day
}

func TestDateKeyRoundTrip(t *testing.T) {
	in := time.Date(2026, 3, 10, 15, 42, 7, 0, time.Local)
	key := DateKey(in)
	if key != "2026-03-10" {
		t.Fatalf("DateKey = %q, want 2026-03-10", key)
	}

	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("ParseDateKey failed: %v", err)
	}
	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Errorf("parsed key is not midnight: %v", parsed)
	}
	if DateKey(parsed) != key {
		t.Errorf("round trip changed the key: %q", DateKey(parsed))
	}
}

func TestParseDateKeyInvalid(t *testing.T) {
	if _, err := ParseDateKey("10/03/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2026-03-09", "2026-03-09"}, // Monday maps to itself
		{"2026-03-10", "2026-03-09"},
		{"2026-03-14", "2026-03-09"}, // Saturday
		{"2026-03-15", "2026-03-09"}, // Sunday still belongs to the Monday week
		{"2026-03-16", "2026-03-16"}, // next Monday
	}

	for _, tt := range tests {
		got := WeekStart(mustDay(t, tt.day))
		if DateKey(got) != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.day, DateKey(got), tt.want)
		}
		if got.Weekday() != time.Monday {
			t.Errorf("WeekStart(%s) is a %v", tt.day, got.Weekday())
		}
	}
}

func TestEndOfDay(t *testing.T) {
	at := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	end := EndOfDay(at)
	if DateKey(end) != "2026-03-11" || end.Hour() != 0 {
		t.Errorf("EndOfDay = %v", end)
	}
}

func TestEndOfWeek(t *testing.T) {
	end := EndOfWeek(mustDay(t, "2026-03-12"))
	if DateKey(end) != "2026-03-16" {
		t.Errorf("EndOfWeek = %s, want 2026-03-16", DateKey(end))
	}
	if end.Weekday() != time.Monday {
		t.Errorf("EndOfWeek is a %v", end.Weekday())
	}
}

func TestPreviousDueDate(t *testing.T) {
	tests := []struct {
		name string
		freq models.Frequency
		from string
		want string
	}{
		{
			name: "daily is yesterday",
			freq: models.Frequency{Type: models.FrequencyDaily},
			from: "2026-03-10",
			want: "2026-03-09",
		},
		{
			name: "weekdays skip the weekend",
			freq: models.Frequency{Type: models.FrequencyWeekdays},
			from: "2026-03-09", // Monday
			want: "2026-03-06", // Friday
		},
		{
			name: "weekends skip the work week",
			freq: models.Frequency{Type: models.FrequencyWeekends},
			from: "2026-03-14", // Saturday
			want: "2026-03-08", // previous Sunday
		},
		{
			name: "custom days",
			freq: models.Frequency{
				Type:       models.FrequencyCustom,
				CustomDays: []time.Weekday{time.Monday, time.Thursday},
			},
			from: "2026-03-12", // Thursday
			want: "2026-03-09", // Monday
		},
		{
			name: "empty custom behaves like daily",
			freq: models.Frequency{Type: models.FrequencyCustom},
			from: "2026-03-10",
			want: "2026-03-09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviousDueDate(tt.freq, mustDay(t, tt.from))
			if DateKey(got) != tt.want {
				t.Errorf("PreviousDueDate = %s, want %s", DateKey(got), tt.want)
			}
		})
	}
}
