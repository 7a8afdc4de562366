package sqlite

import (
	"fmt"

	"github.com/mtrost/ritual/internal/constants"
	"github.com/mtrost/ritual/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingDefaultReminderOffsetMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.DefaultReminderOffsetMin); err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingDefaultReminderOffsetMin, err)
			}
		case constants.SettingHistoryPageMonths:
			if _, err := fmt.Sscanf(value, "%d", &settings.HistoryPageMonths); err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingHistoryPageMonths, err)
			}
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	pairs := map[string]string{
		constants.SettingTimezone:                 settings.Timezone,
		constants.SettingNotificationsEnabled:     fmt.Sprintf("%t", settings.NotificationsEnabled),
		constants.SettingDefaultReminderOffsetMin: fmt.Sprintf("%d", settings.DefaultReminderOffsetMin),
		constants.SettingHistoryPageMonths:        fmt.Sprintf("%d", settings.HistoryPageMonths),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range pairs {
		_, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
