package storage

import (
	"github.com/mtrost/ritual/internal/models"
	"github.com/mtrost/ritual/internal/storage/sqlite"
)

// ErrNotFound is returned when a habit or log id does not resolve.
var ErrNotFound = sqlite.ErrNotFound

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includePaused bool) ([]models.Habit, error)
	// UpdateHabit fully replaces the stored habit definition.
	UpdateHabit(models.Habit) error
	// DeleteHabit removes the habit and cascades deletion of all its logs.
	DeleteHabit(id string) error
	UpdateNotificationIDs(id string, ids []string) error

	// Logs
	GetLogsForDate(date string) ([]models.HabitLog, error)
	GetLogsForHabit(habitID string) ([]models.HabitLog, error)
	GetLogsInRange(startDate, endDate string) ([]models.HabitLog, error)
	// EarliestLogDate returns the oldest logged date across all habits, or
	// "" when no logs exist.
	EarliestLogDate() (string, error)
	// ToggleLog flips the done flag for (habit, date), creating the row if
	// absent. The read and write happen in one transaction.
	ToggleLog(habitID, date string) (models.HabitLog, error)
	// UpsertLog writes the full done/progress state for (habit, date).
	UpsertLog(habitID, date string, done bool, progress int) error
	// IncrementProgress bumps progress by one, clamped at target, and marks
	// the log done once the target is reached. One transaction.
	IncrementProgress(habitID, date string, target int) (models.HabitLog, error)

	// Utils
	GetConfigPath() string
}
