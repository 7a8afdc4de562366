package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

type ScheduleKind string

const (
	ScheduleDaily   ScheduleKind = "daily"
	ScheduleWeekly  ScheduleKind = "weekly"
	ScheduleMonthly ScheduleKind = "monthly"
)

// Schedule is a closed tagged variant describing when a habit is due.
// DaysOfWeek holds weekdays 0=Sunday..6=Saturday and is meaningful only for
// weekly schedules; DaysOfMonth holds days 1..31 for monthly schedules.
type Schedule struct {
	Kind        ScheduleKind `json:"kind"`
	DaysOfWeek  []int        `json:"days_of_week,omitempty"`
	DaysOfMonth []int        `json:"days_of_month,omitempty"`
}

// DailySchedule returns a schedule due every calendar date.
func DailySchedule() Schedule {
	return Schedule{Kind: ScheduleDaily}
}

// WeeklySchedule returns a schedule due on the given weekdays (0=Sunday).
// Out-of-range values are dropped. An empty day set is preserved: such a
// schedule is due on no day, which callers may guard against at construction.
func WeeklySchedule(days ...int) Schedule {
	return Schedule{Kind: ScheduleWeekly, DaysOfWeek: days}.Normalized()
}

// MonthlySchedule returns a schedule due on the given days of month (1..31).
func MonthlySchedule(days ...int) Schedule {
	return Schedule{Kind: ScheduleMonthly, DaysOfMonth: days}.Normalized()
}

// Normalized clamps day values to their valid ranges, dedupes and sorts them,
// and collapses an unknown kind to daily. The schedule evaluator may assume
// normalized input.
func (s Schedule) Normalized() Schedule {
	switch s.Kind {
	case ScheduleDaily:
		return Schedule{Kind: ScheduleDaily}
	case ScheduleWeekly:
		return Schedule{Kind: ScheduleWeekly, DaysOfWeek: clampDays(s.DaysOfWeek, 0, 6)}
	case ScheduleMonthly:
		return Schedule{Kind: ScheduleMonthly, DaysOfMonth: clampDays(s.DaysOfMonth, 1, 31)}
	default:
		return Schedule{Kind: ScheduleDaily}
	}
}

func clampDays(days []int, lo, hi int) []int {
	seen := make(map[int]bool, len(days))
	var out []int
	for _, d := range days {
		if d < lo || d > hi || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// ParseSchedule decodes a schedule from its stored JSON form. Corrupt or
// unrecognized data falls back to a daily schedule so a single bad row
// degrades gracefully instead of failing a whole list computation.
func ParseSchedule(raw string) Schedule {
	var s Schedule
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return DailySchedule()
	}
	return s.Normalized()
}

// Encode renders the schedule as JSON for storage.
func (s Schedule) Encode() string {
	b, err := json.Marshal(s.Normalized())
	if err != nil {
		return `{"kind":"daily"}`
	}
	return string(b)
}

// String renders the schedule for display, e.g. "weekly on Mon,Wed,Fri".
func (s Schedule) String() string {
	switch s.Kind {
	case ScheduleWeekly:
		if len(s.DaysOfWeek) == 0 {
			return "weekly (no days)"
		}
		var days []string
		for _, d := range s.DaysOfWeek {
			days = append(days, time.Weekday(d).String()[:3])
		}
		return "weekly on " + strings.Join(days, ",")
	case ScheduleMonthly:
		if len(s.DaysOfMonth) == 0 {
			return "monthly (no days)"
		}
		var days []string
		for _, d := range s.DaysOfMonth {
			days = append(days, fmt.Sprintf("%d", d))
		}
		return "monthly on day " + strings.Join(days, ",")
	default:
		return "daily"
	}
}

type EndKind string

const (
	EndNone   EndKind = "none"
	EndByDate EndKind = "by_date"
)

// EndCondition marks when a habit stops being due. Once the current date is
// past EndDate the habit is permanently expired, independent of its schedule.
type EndCondition struct {
	Kind    EndKind `json:"kind"`
	EndDate string  `json:"end_date,omitempty"` // YYYY-MM-DD
}

// EndsNever returns the open-ended end condition.
func EndsNever() EndCondition {
	return EndCondition{Kind: EndNone}
}

// EndsOn returns an end condition that expires after the given date.
func EndsOn(date string) EndCondition {
	return EndCondition{Kind: EndByDate, EndDate: date}
}

// ParseEndCondition decodes an end condition from its stored JSON form,
// falling back to "never ends" on corrupt data.
func ParseEndCondition(raw string) EndCondition {
	var e EndCondition
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return EndsNever()
	}
	if e.Kind != EndByDate || e.EndDate == "" {
		return EndsNever()
	}
	return e
}

// Encode renders the end condition as JSON for storage.
func (e EndCondition) Encode() string {
	if e.Kind != EndByDate {
		e = EndsNever()
	}
	b, err := json.Marshal(e)
	if err != nil {
		return `{"kind":"none"}`
	}
	return string(b)
}
