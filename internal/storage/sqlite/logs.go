package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mtrost/ritual/internal/models"
)

const logColumns = `id, habit_id, date, done, progress, created_at, updated_at`

func scanLog(row rowScanner) (models.HabitLog, error) {
	var l models.HabitLog
	var createdAt, updatedAt string

	err := row.Scan(&l.ID, &l.HabitID, &l.Date, &l.Done, &l.Progress, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HabitLog{}, ErrNotFound
		}
		return models.HabitLog{}, err
	}

	l.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	l.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return l, nil
}

func (s *Store) queryLogs(query string, args ...any) ([]models.HabitLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.HabitLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

func (s *Store) GetLogsForDate(date string) ([]models.HabitLog, error) {
	return s.queryLogs(`
		SELECT `+logColumns+` FROM habit_logs
		WHERE date = ? ORDER BY habit_id`, date)
}

func (s *Store) GetLogsForHabit(habitID string) ([]models.HabitLog, error) {
	return s.queryLogs(`
		SELECT `+logColumns+` FROM habit_logs
		WHERE habit_id = ? ORDER BY date`, habitID)
}

func (s *Store) GetLogsInRange(startDate, endDate string) ([]models.HabitLog, error) {
	return s.queryLogs(`
		SELECT `+logColumns+` FROM habit_logs
		WHERE date >= ? AND date <= ? ORDER BY date, habit_id`, startDate, endDate)
}

func (s *Store) EarliestLogDate() (string, error) {
	var date sql.NullString
	err := s.db.QueryRow("SELECT MIN(date) FROM habit_logs").Scan(&date)
	if err != nil {
		return "", err
	}
	return date.String, nil
}

// upsertTx writes the full state for (habit, date), creating the row on
// first interaction and mutating it in place thereafter.
func upsertTx(tx *sql.Tx, habitID, date string, done bool, progress int) (models.HabitLog, error) {
	now := time.Now().Format(time.RFC3339)
	l := models.HabitLog{
		ID:       uuid.New().String(),
		HabitID:  habitID,
		Date:     date,
		Done:     done,
		Progress: progress,
	}
	_, err := tx.Exec(`
		INSERT INTO habit_logs (`+logColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, date) DO UPDATE SET
			done = excluded.done,
			progress = excluded.progress,
			updated_at = excluded.updated_at`,
		l.ID, l.HabitID, l.Date, l.Done, l.Progress, now, now)
	if err != nil {
		return models.HabitLog{}, err
	}

	row := tx.QueryRow(`
		SELECT `+logColumns+` FROM habit_logs
		WHERE habit_id = ? AND date = ?`, habitID, date)
	return scanLog(row)
}

func (s *Store) UpsertLog(habitID, date string, done bool, progress int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := upsertTx(tx, habitID, date, done, progress); err != nil {
		return err
	}
	return tx.Commit()
}

// ToggleLog flips the done flag for (habit, date). The read of the current
// row, the habit's target and the write back are a single transaction, so
// two racing togglers cannot lose an update.
func (s *Store) ToggleLog(habitID, date string) (models.HabitLog, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.HabitLog{}, err
	}
	defer tx.Rollback()

	var target int
	err = tx.QueryRow("SELECT target_repeats FROM habits WHERE id = ?", habitID).Scan(&target)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HabitLog{}, fmt.Errorf("habit %q: %w", habitID, ErrNotFound)
		}
		return models.HabitLog{}, err
	}
	if target < 1 {
		target = 1
	}

	var done bool
	err = tx.QueryRow(`
		SELECT done FROM habit_logs
		WHERE habit_id = ? AND date = ?`, habitID, date).Scan(&done)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.HabitLog{}, err
	}

	// Toggling on satisfies the full target; toggling off clears progress.
	done = !done
	progress := 0
	if done {
		progress = target
	}

	l, err := upsertTx(tx, habitID, date, done, progress)
	if err != nil {
		return models.HabitLog{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.HabitLog{}, err
	}
	return l, nil
}

// IncrementProgress bumps progress by one, clamped at target, marking the
// log done once the target is reached.
func (s *Store) IncrementProgress(habitID, date string, target int) (models.HabitLog, error) {
	if target < 1 {
		target = 1
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.HabitLog{}, err
	}
	defer tx.Rollback()

	var progress int
	err = tx.QueryRow(`
		SELECT progress FROM habit_logs
		WHERE habit_id = ? AND date = ?`, habitID, date).Scan(&progress)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.HabitLog{}, err
	}

	progress++
	if progress > target {
		progress = target
	}

	l, err := upsertTx(tx, habitID, date, progress >= target, progress)
	if err != nil {
		return models.HabitLog{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.HabitLog{}, err
	}
	return l, nil
}
