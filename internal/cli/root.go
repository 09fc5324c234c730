package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/emberhq/ember/internal/engine"
	"github.com/emberhq/ember/internal/models"
	"github.com/emberhq/ember/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}

// FormatFrequency formats a frequency rule into a human-readable string
func FormatFrequency(freq models.Frequency) string {
	switch freq.Type {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekdays:
		return "weekdays"
	case models.FrequencyWeekends:
		return "weekends"
	case models.FrequencyCustom:
		if len(freq.CustomDays) == 0 {
			return "daily"
		}
		var days []string
		for _, wd := range freq.CustomDays {
			days = append(days, wd.String()[:3])
		}
		return strings.Join(days, ",")
	default:
		return "unknown"
	}
}

// ParseFrequency builds a frequency rule from the --every flag value: one of
// the named rules or a comma-separated weekday list.
func ParseFrequency(s string) (models.Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "daily":
		return models.Frequency{Type: models.FrequencyDaily}, nil
	case "weekdays":
		return models.Frequency{Type: models.FrequencyWeekdays}, nil
	case "weekends":
		return models.Frequency{Type: models.FrequencyWeekends}, nil
	}
	days, err := ParseWeekdays(s)
	if err != nil {
		return models.Frequency{}, err
	}
	return models.Frequency{Type: models.FrequencyCustom, CustomDays: days}, nil
}
