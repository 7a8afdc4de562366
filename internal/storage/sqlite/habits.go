package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mtrost/ritual/internal/models"
)

const habitColumns = `id, name, icon, color, schedule, end_condition,
	start_time, end_time, reminder_offset_min, paused, paused_at,
	pause_reason, target_repeats, notification_ids, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var scheduleJSON, endJSON, createdAt string
	var icon, color, startTime, endTime, pausedAt, pauseReason, notifIDs sql.NullString
	var reminderOffset sql.NullInt64

	err := row.Scan(&h.ID, &h.Name, &icon, &color, &scheduleJSON, &endJSON,
		&startTime, &endTime, &reminderOffset, &h.Paused, &pausedAt,
		&pauseReason, &h.TargetRepeats, &notifIDs, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, ErrNotFound
		}
		return models.Habit{}, err
	}

	// Corrupt schedule or end-condition JSON heals to safe defaults rather
	// than failing the whole read.
	h.Schedule = models.ParseSchedule(scheduleJSON)
	h.End = models.ParseEndCondition(endJSON)
	h.Icon = icon.String
	h.Color = color.String
	h.StartTime = startTime.String
	h.EndTime = endTime.String
	h.PauseReason = pauseReason.String
	if reminderOffset.Valid {
		v := int(reminderOffset.Int64)
		h.ReminderOffsetMin = &v
	}
	if pausedAt.Valid {
		t, err := time.Parse(time.RFC3339, pausedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse paused_at: %w", err)
		}
		h.PausedAt = &t
	}
	if notifIDs.Valid && notifIDs.String != "" {
		if err := json.Unmarshal([]byte(notifIDs.String), &h.NotificationIDs); err != nil {
			h.NotificationIDs = nil
		}
	}
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return h, nil
}

func habitArgs(h models.Habit) ([]any, error) {
	var pausedAt sql.NullString
	if h.PausedAt != nil {
		pausedAt = sql.NullString{String: h.PausedAt.Format(time.RFC3339), Valid: true}
	}
	var reminderOffset sql.NullInt64
	if h.ReminderOffsetMin != nil {
		reminderOffset = sql.NullInt64{Int64: int64(*h.ReminderOffsetMin), Valid: true}
	}
	var notifIDs sql.NullString
	if len(h.NotificationIDs) > 0 {
		b, err := json.Marshal(h.NotificationIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to encode notification ids: %w", err)
		}
		notifIDs = sql.NullString{String: string(b), Valid: true}
	}

	return []any{
		h.ID, h.Name, h.Icon, h.Color, h.Schedule.Encode(), h.End.Encode(),
		h.StartTime, h.EndTime, reminderOffset, h.Paused, pausedAt,
		h.PauseReason, h.Target(), notifIDs, h.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *Store) AddHabit(habit models.Habit) error {
	args, err := habitArgs(habit)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	return err
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE id = ?`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE name = ?`, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(includePaused bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits"
	if !includePaused {
		query += " WHERE paused = 0"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

// UpdateHabit replaces the stored definition wholesale.
func (s *Store) UpdateHabit(habit models.Habit) error {
	args, err := habitArgs(habit)
	if err != nil {
		return err
	}
	result, err := s.db.Exec(`
		UPDATE habits SET
			name = ?, icon = ?, color = ?, schedule = ?, end_condition = ?,
			start_time = ?, end_time = ?, reminder_offset_min = ?, paused = ?,
			paused_at = ?, pause_reason = ?, target_repeats = ?,
			notification_ids = ?, created_at = ?
		WHERE id = ?`,
		append(args[1:], habit.ID)...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit %q: %w", habit.ID, ErrNotFound)
	}

	return nil
}

// DeleteHabit removes the habit and every log it owns in one transaction.
func (s *Store) DeleteHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habit_logs WHERE habit_id = ?", id); err != nil {
		return err
	}

	result, err := tx.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit %q: %w", id, ErrNotFound)
	}

	return tx.Commit()
}

func (s *Store) UpdateNotificationIDs(id string, ids []string) error {
	var notifIDs sql.NullString
	if len(ids) > 0 {
		b, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("failed to encode notification ids: %w", err)
		}
		notifIDs = sql.NullString{String: string(b), Valid: true}
	}

	result, err := s.db.Exec(`UPDATE habits SET notification_ids = ? WHERE id = ?`, notifIDs, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit %q: %w", id, ErrNotFound)
	}
	return nil
}
