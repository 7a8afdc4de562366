package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mtrost/ritual/internal/calendar"
	"github.com/mtrost/ritual/internal/constants"
	"github.com/mtrost/ritual/internal/models"
	"github.com/mtrost/ritual/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// Settings loads persistent settings, falling back to defaults when the
// settings table is missing or incomplete.
func (c *Context) Settings() models.Settings {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{
			Timezone:                 constants.DefaultTimezone,
			NotificationsEnabled:     constants.DefaultNotificationsEnabled,
			DefaultReminderOffsetMin: constants.DefaultDefaultReminderOffsetMin,
			HistoryPageMonths:        constants.DefaultHistoryPageMonths,
		}
	}
	return settings
}

// Location resolves the configured timezone, defaulting to the system one.
func (c *Context) Location() *time.Location {
	tz := c.Settings().Timezone
	if tz == "" || tz == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}

// Today returns the current date in the configured timezone.
func (c *Context) Today() string {
	return calendar.Today(c.Location())
}

// resolveDate validates an explicit YYYY-MM-DD flag value, defaulting to
// today when empty.
func (c *Context) resolveDate(date string) (string, error) {
	if date == "" {
		return c.Today(), nil
	}
	if _, _, _, ok := calendar.ParseDate(date); !ok {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// ParseWeekdays parses a comma-separated list of weekdays into 0=Sunday..
// 6=Saturday values. Names ("mon", "monday") and digits are both accepted.
func ParseWeekdays(s string) ([]int, error) {
	dayMap := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}

	var weekdays []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		weekdays = append(weekdays, num)
	}
	return weekdays, nil
}

// ParseMonthDays parses a comma-separated list of days of month (1..31).
func ParseMonthDays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > 31 {
			return nil, fmt.Errorf("invalid day of month: %s", part)
		}
		days = append(days, num)
	}
	return days, nil
}
