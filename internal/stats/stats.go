// Package stats aggregates habits and logs into per-day, per-week and
// per-month completion views. Every function here is a pure function of its
// inputs; callers fetch a consistent snapshot from storage and pass it in.
package stats

import (
	"sort"

	"github.com/mtrost/ritual/internal/calendar"
	"github.com/mtrost/ritual/internal/models"
	"github.com/mtrost/ritual/internal/schedule"
)

// DueHabit pairs a habit due on some date with its completion state for
// that date.
type DueHabit struct {
	Habit    models.Habit
	Done     bool
	Progress int
}

// DaySummary is one day's completion roll-up across all habits.
type DaySummary struct {
	Date           string
	Weekday        string // three-letter label, e.g. "Mon"
	TotalPlanned   int
	TotalDone      int
	CompletionRate float64 // 0 when nothing was planned, never NaN
}

// LogIndex is a habit-id -> date -> log lookup built once per aggregation
// call.
type LogIndex map[string]map[string]models.HabitLog

// NewLogIndex builds a LogIndex from a flat slice of logs.
func NewLogIndex(logs []models.HabitLog) LogIndex {
	idx := make(LogIndex)
	for _, l := range logs {
		byDate, ok := idx[l.HabitID]
		if !ok {
			byDate = make(map[string]models.HabitLog)
			idx[l.HabitID] = byDate
		}
		byDate[l.Date] = l
	}
	return idx
}

// Get returns the log for one habit on one date, if any.
func (idx LogIndex) Get(habitID, date string) (models.HabitLog, bool) {
	l, ok := idx[habitID][date]
	return l, ok
}

// EarliestDate returns the oldest logged date in the index, or "" when the
// index is empty.
func (idx LogIndex) EarliestDate() string {
	earliest := ""
	for _, byDate := range idx {
		for d := range byDate {
			if earliest == "" || d < earliest {
				earliest = d
			}
		}
	}
	return earliest
}

// DueOn filters habits to those due on the given date and pairs each with
// its log for that date. Paused habits are excluded here, not in the
// schedule evaluator. An absent log means not done. The result keeps a
// stable order: by start time, then name.
func DueOn(date string, habits []models.Habit, logs []models.HabitLog) []DueHabit {
	byHabit := make(map[string]models.HabitLog, len(logs))
	for _, l := range logs {
		if l.Date == date {
			byHabit[l.HabitID] = l
		}
	}

	var due []DueHabit
	for _, h := range habits {
		if h.Paused || !schedule.IsDueOn(h, date) {
			continue
		}
		l := byHabit[h.ID]
		due = append(due, DueHabit{Habit: h, Done: l.Done, Progress: l.Progress})
	}
	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i].Habit, due[j].Habit
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.Name < b.Name
	})
	return due
}

func summarizeDay(date string, habits []models.Habit, idx LogIndex) DaySummary {
	s := DaySummary{Date: date, Weekday: calendar.WeekdayAbbrev(date)}
	for _, h := range habits {
		if h.Paused || !schedule.IsDueOn(h, date) {
			continue
		}
		s.TotalPlanned++
		if l, ok := idx.Get(h.ID, date); ok && l.Done {
			s.TotalDone++
		}
	}
	if s.TotalPlanned > 0 {
		s.CompletionRate = float64(s.TotalDone) / float64(s.TotalPlanned)
	}
	return s
}

// WeeklySummary summarizes the seven days ending at refDate inclusive,
// oldest first.
func WeeklySummary(refDate string, habits []models.Habit, idx LogIndex) []DaySummary {
	dates := make([]string, 7)
	d := refDate
	for i := 6; i >= 0; i-- {
		dates[i] = d
		d = calendar.PreviousDate(d)
	}

	out := make([]DaySummary, 0, 7)
	for _, date := range dates {
		out = append(out, summarizeDay(date, habits, idx))
	}
	return out
}

// DayState classifies one calendar day for a single habit's month view.
type DayState int

const (
	// StateUnscheduled means the habit was not due that day, including days
	// past its end date.
	StateUnscheduled DayState = iota
	// StateDone means the habit was due and completed.
	StateDone
	// StateMissed means the habit was due on a day up to today and not
	// completed.
	StateMissed
	// StateFuture means the habit is due on a day after today.
	StateFuture
)

// Togglable reports whether the caller may flip the day's log. Future and
// unscheduled days are not interactive.
func (s DayState) Togglable() bool {
	return s == StateDone || s == StateMissed
}

// MonthlyCalendar classifies every day of a month for one habit. The
// returned slice has one entry per day, index 0 being the 1st.
func MonthlyCalendar(h models.Habit, year, month int, logs []models.HabitLog, today string) []DayState {
	byDate := make(map[string]models.HabitLog, len(logs))
	for _, l := range logs {
		byDate[l.Date] = l
	}

	first := calendar.FormatDate(year, month, 1)
	dim := calendar.DaysInMonth(first)
	states := make([]DayState, dim)
	for day := 1; day <= dim; day++ {
		date := calendar.FormatDate(year, month, day)
		switch {
		case !schedule.IsDueOn(h, date):
			states[day-1] = StateUnscheduled
		case byDate[date].Done:
			states[day-1] = StateDone
		case date > today:
			states[day-1] = StateFuture
		default:
			states[day-1] = StateMissed
		}
	}
	return states
}

// WeekHistory groups consecutive day summaries belonging to one ISO week.
type WeekHistory struct {
	WeekKey string
	Days    []DaySummary
}

// MonthHistory groups a month's weeks for chronological display.
type MonthHistory struct {
	Year  int
	Month int
	Weeks []WeekHistory
}

// FullHistory rolls per-day summaries up into weeks within months over
// [from, to]. The range start is clamped to the earliest logged date so the
// view never fabricates history from before the user's first interaction;
// with no logs at all the result is empty.
func FullHistory(from, to string, habits []models.Habit, idx LogIndex) []MonthHistory {
	earliest := idx.EarliestDate()
	if earliest == "" {
		return nil
	}
	if from < earliest {
		from = earliest
	}
	if _, _, _, ok := calendar.ParseDate(from); !ok {
		return nil
	}
	if _, _, _, ok := calendar.ParseDate(to); !ok {
		return nil
	}

	var months []MonthHistory
	for date := from; date != "" && date <= to; date = calendar.NextDate(date) {
		year, month, _, _ := calendar.ParseDate(date)
		if len(months) == 0 || months[len(months)-1].Year != year || months[len(months)-1].Month != month {
			months = append(months, MonthHistory{Year: year, Month: month})
		}
		m := &months[len(months)-1]

		weekKey := calendar.ISOWeekKey(date)
		if len(m.Weeks) == 0 || m.Weeks[len(m.Weeks)-1].WeekKey != weekKey {
			m.Weeks = append(m.Weeks, WeekHistory{WeekKey: weekKey})
		}
		w := &m.Weeks[len(m.Weeks)-1]
		w.Days = append(w.Days, summarizeDay(date, habits, idx))
	}
	return months
}
