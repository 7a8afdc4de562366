package models

// Settings represents application-wide settings
type Settings struct {
	Timezone                 string `json:"timezone"`                    // IANA timezone name, or "Local" for the system timezone
	NotificationsEnabled     bool   `json:"notifications_enabled"`       // whether reminder notifications are enabled
	DefaultReminderOffsetMin int    `json:"default_reminder_offset_min"` // minutes before a habit's start time to remind, when the habit sets none
	HistoryPageMonths        int    `json:"history_page_months"`         // months loaded per page when paging back through history
}
