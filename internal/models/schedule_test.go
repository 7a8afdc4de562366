package models

import (
	"reflect"
	"testing"
)

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Schedule
	}{
		{
			name: "daily",
			raw:  `{"kind":"daily"}`,
			want: Schedule{Kind: ScheduleDaily},
		},
		{
			name: "weekly",
			raw:  `{"kind":"weekly","days_of_week":[1,3,5]}`,
			want: Schedule{Kind: ScheduleWeekly, DaysOfWeek: []int{1, 3, 5}},
		},
		{
			name: "monthly",
			raw:  `{"kind":"monthly","days_of_month":[1,15]}`,
			want: Schedule{Kind: ScheduleMonthly, DaysOfMonth: []int{1, 15}},
		},
		{
			name: "corrupt JSON falls back to daily",
			raw:  `{not json`,
			want: Schedule{Kind: ScheduleDaily},
		},
		{
			name: "unknown kind falls back to daily",
			raw:  `{"kind":"hourly"}`,
			want: Schedule{Kind: ScheduleDaily},
		},
		{
			name: "out of range weekdays are dropped",
			raw:  `{"kind":"weekly","days_of_week":[-1,2,7,9]}`,
			want: Schedule{Kind: ScheduleWeekly, DaysOfWeek: []int{2}},
		},
		{
			name: "duplicates deduped and sorted",
			raw:  `{"kind":"monthly","days_of_month":[15,1,15]}`,
			want: Schedule{Kind: ScheduleMonthly, DaysOfMonth: []int{1, 15}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSchedule(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSchedule(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestScheduleEncodeRoundTrip(t *testing.T) {
	s := WeeklySchedule(5, 1, 3)
	got := ParseSchedule(s.Encode())
	if !reflect.DeepEqual(got, s) {
		t.Errorf("round trip = %+v, want %+v", got, s)
	}
}

func TestScheduleString(t *testing.T) {
	tests := []struct {
		schedule Schedule
		want     string
	}{
		{DailySchedule(), "daily"},
		{WeeklySchedule(1, 3, 5), "weekly on Mon,Wed,Fri"},
		{MonthlySchedule(1, 15), "monthly on day 1,15"},
		{Schedule{Kind: ScheduleWeekly}, "weekly (no days)"},
	}

	for _, tt := range tests {
		if got := tt.schedule.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseEndCondition(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want EndCondition
	}{
		{
			name: "never",
			raw:  `{"kind":"none"}`,
			want: EndsNever(),
		},
		{
			name: "by date",
			raw:  `{"kind":"by_date","end_date":"2024-06-30"}`,
			want: EndsOn("2024-06-30"),
		},
		{
			name: "corrupt falls back to never",
			raw:  `oops`,
			want: EndsNever(),
		},
		{
			name: "by date without date falls back to never",
			raw:  `{"kind":"by_date"}`,
			want: EndsNever(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseEndCondition(tt.raw); got != tt.want {
				t.Errorf("ParseEndCondition(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHabitTarget(t *testing.T) {
	h := Habit{TargetRepeats: 0}
	if got := h.Target(); got != 1 {
		t.Errorf("Target() with zero repeats = %d, want 1", got)
	}
	h.TargetRepeats = 5
	if got := h.Target(); got != 5 {
		t.Errorf("Target() = %d, want 5", got)
	}
}
