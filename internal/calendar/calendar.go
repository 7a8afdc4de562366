// Package calendar provides pure date arithmetic over local calendar dates.
//
// Dates cross every boundary of the application as YYYY-MM-DD strings and all
// arithmetic here works on year/month/day triples, never on instants, so a
// device timezone can never shift a date. Every function is total: malformed
// input yields a documented fallback value instead of an error, because one
// corrupt stored date must not sink a whole streak or history computation.
package calendar

import (
	"fmt"
	"time"

	"github.com/mtrost/ritual/internal/constants"
)

// WeekKeyFormat is the textual form of an ISO week key, e.g. "2024-W05".
const WeekKeyFormat = "%04d-W%02d"

// FormatDate renders a year/month/day triple as a zero-padded YYYY-MM-DD string.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseDate splits a YYYY-MM-DD string into its calendar components.
// ok is false for malformed or impossible dates (e.g. 2024-02-30).
func ParseDate(date string) (year, month, day int, ok bool) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return 0, 0, 0, false
	}
	return t.Year(), int(t.Month()), t.Day(), true
}

// DayOfWeek returns the weekday of the given date, 0=Sunday through
// 6=Saturday. Malformed input yields -1, which never matches a weekday set.
func DayOfWeek(date string) int {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return -1
	}
	return int(t.Weekday())
}

// DayOfMonth returns the day-of-month component in [1,31], or 0 for
// malformed input.
func DayOfMonth(date string) int {
	_, _, day, ok := ParseDate(date)
	if !ok {
		return 0
	}
	return day
}

// DaysInMonth returns the number of days in the date's month, or 0 for
// malformed input.
func DaysInMonth(date string) int {
	year, month, _, ok := ParseDate(date)
	if !ok {
		return 0
	}
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PreviousDate returns the date exactly one calendar day earlier, crossing
// month and year boundaries. Malformed input yields "".
func PreviousDate(date string) string {
	year, month, day, ok := ParseDate(date)
	if !ok {
		return ""
	}
	t := time.Date(year, time.Month(month), day-1, 0, 0, 0, 0, time.UTC)
	return FormatDate(t.Year(), int(t.Month()), t.Day())
}

// NextDate returns the date exactly one calendar day later. Malformed input
// yields "".
func NextDate(date string) string {
	year, month, day, ok := ParseDate(date)
	if !ok {
		return ""
	}
	t := time.Date(year, time.Month(month), day+1, 0, 0, 0, 0, time.UTC)
	return FormatDate(t.Year(), int(t.Month()), t.Day())
}

// ISOWeekKey returns the ISO-8601 week key of a date, e.g. "2024-W05".
// Weeks start Monday and the week containing the year's first Thursday is
// week 1, so two dates in the same ISO week always share a key even across
// a Dec/Jan boundary. Malformed input yields "".
func ISOWeekKey(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return ""
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf(WeekKeyFormat, year, week)
}

// ParseWeekKey splits an ISO week key into its year and week number.
// ok is false when the key is malformed or the week is out of range for
// that year.
func ParseWeekKey(key string) (year, week int, ok bool) {
	if _, err := fmt.Sscanf(key, WeekKeyFormat, &year, &week); err != nil {
		return 0, 0, false
	}
	if year < 1 || week < 1 || week > WeeksInYear(year) {
		return 0, 0, false
	}
	return year, week, true
}

// WeeksInYear returns the number of ISO weeks in a year (52 or 53).
// December 28th is always in the last ISO week of its year.
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// PreviousWeekKey returns the key of the ISO week immediately before the
// given one, decrementing into the prior year using that year's true week
// count. Malformed input yields "".
func PreviousWeekKey(key string) string {
	year, week, ok := ParseWeekKey(key)
	if !ok {
		return ""
	}
	if week > 1 {
		return fmt.Sprintf(WeekKeyFormat, year, week-1)
	}
	return fmt.Sprintf(WeekKeyFormat, year-1, WeeksInYear(year-1))
}

// WeekDates returns the seven calendar dates of an ISO week, Monday first.
// Malformed input yields nil.
func WeekDates(key string) []string {
	year, week, ok := ParseWeekKey(key)
	if !ok {
		return nil
	}
	// January 4th is always in ISO week 1 of its year.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday())+6)%7)+(week-1)*7)
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		dates[i] = FormatDate(d.Year(), int(d.Month()), d.Day())
	}
	return dates
}

// WeekdayAbbrev returns the three-letter weekday label of a date, e.g. "Mon".
// Malformed input yields "".
func WeekdayAbbrev(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}

// Today returns the current date in the given location.
func Today(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc).Format(constants.DateFormat)
}
