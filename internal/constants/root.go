package constants

const (
	AppName            = "ember"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/ember/ember.db"
	Version            = "v0.3.0"

	// ConnectionEnvVar overrides the storage location when set. A postgres://
	// value selects the PostgreSQL store.
	ConnectionEnvVar = "EMBER_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Quest period sizing
	DailyQuestCount     = 3
	WeeklyQuestCount    = 1
	LegendaryQuestCount = 1

	// Time-of-day cutoffs (hours) used by XP bonuses and achievements
	MorningBonusHour = 9
	EarlyBirdHour    = 6
	NightOwlHour     = 22
)
