package constants

const (
	// Setting keys
	SettingTimezone                 = "timezone"
	SettingNotificationsEnabled     = "notifications_enabled"
	SettingDefaultReminderOffsetMin = "default_reminder_offset_min"
	SettingHistoryPageMonths        = "history_page_months"

	// Default setting values
	DefaultTimezone                 = "Local" // use the system local timezone
	DefaultNotificationsEnabled     = true
	DefaultDefaultReminderOffsetMin = 10
	DefaultHistoryPageMonths        = 3
)
