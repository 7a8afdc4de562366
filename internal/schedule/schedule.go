// Package schedule decides whether a habit is due on a calendar date.
package schedule

import (
	"github.com/mtrost/ritual/internal/calendar"
	"github.com/mtrost/ritual/internal/models"
)

// IsDueOn reports whether the habit's schedule makes it due on the given
// date. Expiry is checked first: once the date is past the habit's end date
// the habit is terminally not due, whatever the schedule says. The compare
// is lexicographic on the raw YYYY-MM-DD strings, which is exact for this
// format and avoids round-tripping through instants.
//
// Malformed dates are never due. Pause state is deliberately not consulted
// here; excluding paused habits is the aggregation layer's concern.
func IsDueOn(h models.Habit, date string) bool {
	if _, _, _, ok := calendar.ParseDate(date); !ok {
		return false
	}
	if h.End.Kind == models.EndByDate && h.End.EndDate != "" && date > h.End.EndDate {
		return false
	}

	switch h.Schedule.Kind {
	case models.ScheduleWeekly:
		return containsDay(h.Schedule.DaysOfWeek, calendar.DayOfWeek(date))
	case models.ScheduleMonthly:
		return dueMonthly(h.Schedule.DaysOfMonth, date)
	default:
		// Daily, and the safe default for a corrupt schedule kind.
		return true
	}
}

// dueMonthly applies last-day normalization: a configured day beyond the
// month's actual length collapses onto the month's final day, so a habit set
// for the 31st still fires in February.
func dueMonthly(days []int, date string) bool {
	dom := calendar.DayOfMonth(date)
	if dom == 0 {
		return false
	}
	if containsDay(days, dom) {
		return true
	}
	dim := calendar.DaysInMonth(date)
	if dom == dim {
		for _, d := range days {
			if d > dim && d <= 31 {
				return true
			}
		}
	}
	return false
}

func containsDay(days []int, day int) bool {
	if day < 0 {
		return false
	}
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
