package quests

import (
	"time"

	"github.com/emberhq/ember/internal/models"
)

// Event describes one habit completion as seen by quest progress evaluation.
// The engine builds it once per completion and applies it to every active
// quest.
type Event struct {
	Category        models.Category
	Difficulty      models.Difficulty
	Hour            int
	CompletedToday  int
	DueToday        int
	CurrentStreak   int
	XPEarned        int
	ConsecutiveDays int
}

// Advance applies the time-based transition: an active quest whose deadline
// has passed becomes expired. Returns true if the quest changed.
func Advance(q *models.ActiveQuest, now time.Time) bool {
	if q.Status == models.QuestActive && !now.Before(q.ExpiresAt) {
		q.Status = models.QuestExpired
		return true
	}
	return false
}

// ApplyEvent evaluates the event against an active quest's requirement and
// updates progress. Progress is monotonic non-decreasing and clamped to the
// target; reaching the target completes the quest in the same step. Returns
// true if the quest changed.
func ApplyEvent(q *models.ActiveQuest, req models.Requirement, ev Event, now time.Time) bool {
	if q.Status != models.QuestActive {
		return false
	}

	candidate := candidateProgress(q.Progress, req, ev)
	if candidate > req.Target {
		candidate = req.Target
	}
	if candidate <= q.Progress {
		return false
	}

	q.Progress = candidate
	if q.Progress >= req.Target {
		q.Status = models.QuestCompleted
		completed := now
		q.CompletedAt = &completed
	}
	return true
}

// candidateProgress computes the prospective progress value for one event.
// The switch is exhaustive over the requirement kinds; an unknown kind leaves
// progress untouched.
func candidateProgress(progress int, req models.Requirement, ev Event) int {
	switch req.Type {
	case models.RequireCompleteAny:
		return progress + 1
	case models.RequireCompleteCategory:
		if ev.Category == req.Category {
			return progress + 1
		}
	case models.RequireCompleteBeforeTime:
		if ev.Hour < req.Hour {
			return progress + 1
		}
	case models.RequireCompleteAfterTime:
		if ev.Hour >= req.Hour {
			return progress + 1
		}
	case models.RequirePerfectDay:
		if ev.DueToday > 0 && ev.CompletedToday == ev.DueToday {
			return progress + 1
		}
	case models.RequireStreakReach:
		if ev.CurrentStreak >= req.Target {
			return req.Target
		}
	case models.RequireXPEarn:
		return progress + ev.XPEarned
	case models.RequireCompleteDifficulty:
		if ev.Difficulty == req.Difficulty {
			return progress + 1
		}
	case models.RequireConsecutiveDays:
		if ev.ConsecutiveDays > progress {
			return ev.ConsecutiveDays
		}
	}
	return progress
}
