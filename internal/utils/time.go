package utils

import (
	"time"

	"github.com/emberhq/ember/internal/constants"
	"github.com/emberhq/ember/internal/models"
)

// DateKey formats a time as the standard YYYY-MM-DD day key.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDateKey parses a YYYY-MM-DD day key in the local timezone.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// WeekStart returns midnight on the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := int(day.Weekday()-time.Monday+7) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekKey returns the day key of the Monday starting t's week. It identifies
// the weekly quest period.
func WeekKey(t time.Time) string {
	return DateKey(WeekStart(t))
}

// EndOfDay returns the first instant of the next day, the deadline for daily
// quests activated on t's day.
func EndOfDay(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, 1)
}

// EndOfWeek returns the first instant of the next week (Monday midnight).
func EndOfWeek(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 7)
}

// PreviousDueDate returns the most recent day strictly before from on which a
// habit with the given frequency was due. A frequency that is never due
// (custom with no matching day) falls back to the previous calendar day.
func PreviousDueDate(freq models.Frequency, from time.Time) time.Time {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for i := 1; i <= 7; i++ {
		prev := day.AddDate(0, 0, -i)
		if freq.DueOn(prev) {
			return prev
		}
	}
	return day.AddDate(0, 0, -1)
}
