package constants

const (
	// AppName is the application identifier used for config paths,
	// keyring entries and log prefixes.
	AppName = "daftar"

	// DateFormat is the calendar-day key format used across all
	// persisted collections.
	DateFormat = "2006-01-02"

	// TimeFormat is the wall-clock format for reminder times and
	// drink timestamps.
	TimeFormat = "15:04"

	// DefaultWaterGoal is the number of water cups that counts as a
	// complete day.
	DefaultWaterGoal = 8

	// DefaultCycleLength and DefaultPeriodLength seed the period
	// tracking singleton.
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	// TaskSlots is the fixed number of daily task slots.
	TaskSlots = 3

	// DefaultKeyringUser is the keyring account name under which the
	// AI service API key is stored.
	DefaultKeyringUser = "advisor-api-key"

	// NotifierLockfileName is the lockfile written by the tray
	// application that delivers desktop notifications.
	NotifierLockfileName = "daftar-tray.lock"

	// TrayAppIdentifier is the config directory name of the tray app.
	TrayAppIdentifier = "daftar-tray"

	// NotificationDurationMs is how long a reminder notification stays
	// on screen.
	NotificationDurationMs uint32 = 8000
)
