package models

import "time"

type QuestTier string

const (
	TierDaily     QuestTier = "daily"
	TierWeekly    QuestTier = "weekly"
	TierLegendary QuestTier = "legendary"
)

type QuestStatus string

const (
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
	QuestClaimed   QuestStatus = "claimed"
	QuestExpired   QuestStatus = "expired"
)

// RequirementType is a closed enum; progress evaluation switches over it
// exhaustively so a new kind cannot be added silently.
type RequirementType string

const (
	RequireCompleteAny        RequirementType = "complete_any"
	RequireCompleteCategory   RequirementType = "complete_category"
	RequireCompleteBeforeTime RequirementType = "complete_before_time"
	RequireCompleteAfterTime  RequirementType = "complete_after_time"
	RequirePerfectDay         RequirementType = "perfect_day"
	RequireStreakReach        RequirementType = "streak_reach"
	RequireXPEarn             RequirementType = "xp_earn"
	RequireCompleteDifficulty RequirementType = "complete_difficulty"
	RequireConsecutiveDays    RequirementType = "consecutive_days"
)

func (r RequirementType) Valid() bool {
	switch r {
	case RequireCompleteAny, RequireCompleteCategory, RequireCompleteBeforeTime,
		RequireCompleteAfterTime, RequirePerfectDay, RequireStreakReach,
		RequireXPEarn, RequireCompleteDifficulty, RequireConsecutiveDays:
		return true
	}
	return false
}

// Requirement describes what a quest asks for. Category, Difficulty and Hour
// are only meaningful for the requirement types that use them.
type Requirement struct {
	Type       RequirementType `json:"type"`
	Target     int             `json:"target"`
	Category   Category        `json:"category,omitempty"`
	Difficulty Difficulty      `json:"difficulty,omitempty"`
	Hour       int             `json:"hour,omitempty"`
}

type Reward struct {
	XP            int    `json:"xp"`
	StreakFreezes int    `json:"streak_freezes,omitempty"`
	Badge         string `json:"badge,omitempty"`
}

// QuestTemplate is a static catalogue entry. Templates are identified by a
// stable slug so stored quest instances survive restarts.
type QuestTemplate struct {
	ID          string      `json:"id"`
	Tier        QuestTier   `json:"tier"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Requirement Requirement `json:"requirement"`
	Reward      Reward      `json:"reward"`
}

// ActiveQuest is one user's instance of a template for one period.
type ActiveQuest struct {
	ID          string      `json:"id"`
	TemplateID  string      `json:"template_id"`
	Tier        QuestTier   `json:"tier"`
	PeriodKey   string      `json:"period_key"`
	Progress    int         `json:"progress"`
	Status      QuestStatus `json:"status"`
	ActivatedAt time.Time   `json:"activated_at"`
	ExpiresAt   time.Time   `json:"expires_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	ClaimedAt   *time.Time  `json:"claimed_at,omitempty"`
}

// QuestCompletion is the immutable record written when a reward is claimed.
type QuestCompletion struct {
	ID             string    `json:"id"`
	TemplateID     string    `json:"template_id"`
	Tier           QuestTier `json:"tier"`
	PeriodKey      string    `json:"period_key"`
	XPAwarded      int       `json:"xp_awarded"`
	FreezesAwarded int       `json:"freezes_awarded"`
	Badge          string    `json:"badge,omitempty"`
	ClaimedAt      time.Time `json:"claimed_at"`
}
