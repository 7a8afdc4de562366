package models

import "time"

// HabitLog is the single record of progress for one habit on one date.
// There is at most one row per (habit, date); repeated interactions mutate
// it in place. Done is true iff Progress has reached the habit's target.
type HabitLog struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Done      bool      `json:"done"`
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
