package models

import "time"

// Habit represents a recurring practice to track
type Habit struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Icon              string       `json:"icon,omitempty"`
	Color             string       `json:"color,omitempty"`
	Schedule          Schedule     `json:"schedule"`
	End               EndCondition `json:"end"`
	StartTime         string       `json:"start_time,omitempty"` // HH:MM format
	EndTime           string       `json:"end_time,omitempty"`   // HH:MM format
	ReminderOffsetMin *int         `json:"reminder_offset_min,omitempty"`
	Paused            bool         `json:"paused"`
	PausedAt          *time.Time   `json:"paused_at,omitempty"`
	PauseReason       string       `json:"pause_reason,omitempty"`
	TargetRepeats     int          `json:"target_repeats"`
	NotificationIDs   []string     `json:"notification_ids,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}

// Target returns the number of completions a single date requires, at least 1.
func (h Habit) Target() int {
	if h.TargetRepeats < 1 {
		return 1
	}
	return h.TargetRepeats
}
