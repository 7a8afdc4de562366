package schedule

import (
	"testing"

	"github.com/mtrost/ritual/internal/models"
)

func TestIsDueOnDaily(t *testing.T) {
	h := models.Habit{Schedule: models.DailySchedule()}

	for _, date := range []string{"2024-01-01", "2024-02-29", "2024-12-31"} {
		if !IsDueOn(h, date) {
			t.Errorf("daily habit not due on %s", date)
		}
	}

	if IsDueOn(h, "not-a-date") {
		t.Error("daily habit due on malformed date")
	}
}

func TestIsDueOnWeekly(t *testing.T) {
	// Mon, Wed, Fri
	h := models.Habit{Schedule: models.WeeklySchedule(1, 3, 5)}

	tests := []struct {
		date string
		want bool
	}{
		{"2024-01-01", true},  // Monday
		{"2024-01-02", false}, // Tuesday
		{"2024-01-03", true},  // Wednesday
		{"2024-01-05", true},  // Friday
		{"2024-01-07", false}, // Sunday
	}

	for _, tt := range tests {
		if got := IsDueOn(h, tt.date); got != tt.want {
			t.Errorf("IsDueOn(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}

	empty := models.Habit{Schedule: models.Schedule{Kind: models.ScheduleWeekly}}
	if IsDueOn(empty, "2024-01-01") {
		t.Error("weekly habit with no days should never be due")
	}
}

func TestIsDueOnMonthly(t *testing.T) {
	tests := []struct {
		name string
		days []int
		date string
		want bool
	}{
		{
			name: "configured day",
			days: []int{1, 15},
			date: "2024-03-15",
			want: true,
		},
		{
			name: "unconfigured day",
			days: []int{1, 15},
			date: "2024-03-16",
			want: false,
		},
		{
			name: "day 31 collapses to Feb 29 in a leap year",
			days: []int{31},
			date: "2024-02-29",
			want: true,
		},
		{
			name: "day 31 not due on Feb 28 in a leap year",
			days: []int{31},
			date: "2024-02-28",
			want: false,
		},
		{
			name: "day 31 collapses to Feb 28 in a common year",
			days: []int{31},
			date: "2023-02-28",
			want: true,
		},
		{
			name: "day 30 collapses to the last day of February",
			days: []int{30},
			date: "2023-02-28",
			want: true,
		},
		{
			name: "day 31 collapses to Apr 30",
			days: []int{31},
			date: "2024-04-30",
			want: true,
		},
		{
			name: "day 31 fires normally in a 31-day month",
			days: []int{31},
			date: "2024-01-31",
			want: true,
		},
		{
			name: "no collapse on a non-final day",
			days: []int{31},
			date: "2024-04-29",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := models.Habit{Schedule: models.MonthlySchedule(tt.days...)}
			if got := IsDueOn(h, tt.date); got != tt.want {
				t.Errorf("IsDueOn(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestIsDueOnExpiry(t *testing.T) {
	h := models.Habit{
		Schedule: models.DailySchedule(),
		End:      models.EndsOn("2024-01-10"),
	}

	if !IsDueOn(h, "2024-01-10") {
		t.Error("habit should still be due on its end date")
	}
	if IsDueOn(h, "2024-01-11") {
		t.Error("habit due past its end date")
	}
	if IsDueOn(h, "2025-01-01") {
		t.Error("expiry must be terminal")
	}
}

func TestIsDueOnIgnoresPause(t *testing.T) {
	h := models.Habit{Schedule: models.DailySchedule(), Paused: true}
	if !IsDueOn(h, "2024-01-01") {
		t.Error("pause state must not affect schedule evaluation")
	}
}
