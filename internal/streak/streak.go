// Package streak computes current and best streaks from a habit's log
// history.
package streak

import (
	"sort"

	"github.com/mtrost/ritual/internal/calendar"
	"github.com/mtrost/ritual/internal/models"
	"github.com/mtrost/ritual/internal/schedule"
)

// maxLookbackDays bounds the backward walk for the current daily streak.
// The walk has no habit-creation floor, so without a cap a habit with sparse
// logs but a permissive schedule could spin for a very long time. Three
// years is far beyond any plausible unbroken run worth reporting.
const maxLookbackDays = 3 * 366

// maxLookbackWeeks bounds the current weekly streak walk the same way.
const maxLookbackWeeks = 3 * 53

// Streaks holds the four figures shown for a habit. Weekly streaks are only
// meaningful for weekly schedules and are zero otherwise.
type Streaks struct {
	CurrentDaily  int
	BestDaily     int
	CurrentWeekly int
	BestWeekly    int
}

// Compute derives all streak figures for one habit from its full log
// history. today anchors the "current" walks; logs may arrive in any order.
func Compute(h models.Habit, logs []models.HabitLog, today string) Streaks {
	byDate := make(map[string]models.HabitLog, len(logs))
	for _, l := range logs {
		byDate[l.Date] = l
	}

	s := Streaks{
		CurrentDaily: currentDaily(h, byDate, today),
		BestDaily:    bestDaily(h, byDate),
	}
	if h.Schedule.Kind == models.ScheduleWeekly {
		s.CurrentWeekly = currentWeekly(h, byDate, today)
		s.BestWeekly = bestWeekly(h, byDate)
	}
	return s
}

// bestDaily scans only the dates that were ever logged, oldest first. Dates
// the schedule never covered are invisible to the scan: they neither break
// nor extend a run. A scheduled date that was logged but left undone resets
// the run.
func bestDaily(h models.Habit, byDate map[string]models.HabitLog) int {
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	best, run := 0, 0
	for _, d := range dates {
		if !schedule.IsDueOn(h, d) {
			continue
		}
		if byDate[d].Done {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// currentDaily walks backward from today one calendar date at a time,
// skipping unscheduled dates without consuming a step, and stops at the
// first scheduled date that is missing or undone.
func currentDaily(h models.Habit, byDate map[string]models.HabitLog, today string) int {
	count := 0
	date := today
	for i := 0; i < maxLookbackDays; i++ {
		if date == "" {
			break
		}
		if schedule.IsDueOn(h, date) {
			l, ok := byDate[date]
			if !ok || !l.Done {
				break
			}
			count++
		}
		date = calendar.PreviousDate(date)
	}
	return count
}

// weekComplete reports whether every scheduled date of the given ISO week
// has a done log. A week in which the schedule covers no date at all is
// never complete.
func weekComplete(h models.Habit, byDate map[string]models.HabitLog, weekKey string) bool {
	scheduled := 0
	for _, d := range calendar.WeekDates(weekKey) {
		if !schedule.IsDueOn(h, d) {
			continue
		}
		scheduled++
		l, ok := byDate[d]
		if !ok || !l.Done {
			return false
		}
	}
	return scheduled > 0
}

// bestWeekly runs the completeness counter over the ISO weeks that appear in
// the log history, mirroring the daily scan: weeks never interacted with are
// invisible, a logged-but-incomplete week resets the run.
func bestWeekly(h models.Habit, byDate map[string]models.HabitLog) int {
	seen := make(map[string]bool)
	var keys []string
	for d := range byDate {
		k := calendar.ISOWeekKey(d)
		if k != "" && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	best, run := 0, 0
	for _, k := range keys {
		if weekComplete(h, byDate, k) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// currentWeekly walks backward from today's ISO week while each visited week
// is complete.
func currentWeekly(h models.Habit, byDate map[string]models.HabitLog, today string) int {
	count := 0
	key := calendar.ISOWeekKey(today)
	for i := 0; i < maxLookbackWeeks; i++ {
		if key == "" || !weekComplete(h, byDate, key) {
			break
		}
		count++
		key = calendar.PreviousWeekKey(key)
	}
	return count
}
