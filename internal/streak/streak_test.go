package streak

import (
	"testing"

	"github.com/mtrost/ritual/internal/models"
)

func log(habitID, date string, done bool) models.HabitLog {
	return models.HabitLog{HabitID: habitID, Date: date, Done: done}
}

func TestComputeDaily(t *testing.T) {
	h := models.Habit{ID: "h1", Schedule: models.DailySchedule()}

	tests := []struct {
		name        string
		logs        []models.HabitLog
		today       string
		wantCurrent int
		wantBest    int
	}{
		{
			name:  "run of three then a miss then two",
			today: "2024-01-06",
			logs: []models.HabitLog{
				log("h1", "2024-01-01", true),
				log("h1", "2024-01-02", true),
				log("h1", "2024-01-03", true),
				log("h1", "2024-01-04", false),
				log("h1", "2024-01-05", true),
				log("h1", "2024-01-06", true),
			},
			wantCurrent: 2,
			wantBest:    3,
		},
		{
			name:        "no logs",
			today:       "2024-01-06",
			logs:        nil,
			wantCurrent: 0,
			wantBest:    0,
		},
		{
			name:  "missing today breaks the current streak",
			today: "2024-01-06",
			logs: []models.HabitLog{
				log("h1", "2024-01-04", true),
				log("h1", "2024-01-05", true),
			},
			wantCurrent: 0,
			wantBest:    2,
		},
		{
			name:  "streak crosses a month boundary",
			today: "2024-03-01",
			logs: []models.HabitLog{
				log("h1", "2024-02-28", true),
				log("h1", "2024-02-29", true),
				log("h1", "2024-03-01", true),
			},
			wantCurrent: 3,
			wantBest:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compute(h, tt.logs, tt.today)
			if s.CurrentDaily != tt.wantCurrent {
				t.Errorf("CurrentDaily = %d, want %d", s.CurrentDaily, tt.wantCurrent)
			}
			if s.BestDaily != tt.wantBest {
				t.Errorf("BestDaily = %d, want %d", s.BestDaily, tt.wantBest)
			}
			if s.CurrentWeekly != 0 || s.BestWeekly != 0 {
				t.Errorf("weekly streaks for a daily habit = %d/%d, want 0/0",
					s.CurrentWeekly, s.BestWeekly)
			}
		})
	}
}

func TestComputeDailySkipsUnscheduledDays(t *testing.T) {
	// Mon, Wed, Fri only. 2024-01-01 is a Monday.
	h := models.Habit{ID: "h1", Schedule: models.WeeklySchedule(1, 3, 5)}

	logs := []models.HabitLog{
		log("h1", "2024-01-01", true), // Mon
		log("h1", "2024-01-03", true), // Wed
		log("h1", "2024-01-05", true), // Fri
	}

	// Saturday the 6th: the walk must skip Sat without breaking.
	s := Compute(h, logs, "2024-01-06")
	if s.CurrentDaily != 3 {
		t.Errorf("CurrentDaily = %d, want 3 (unscheduled days must not break the run)", s.CurrentDaily)
	}
	if s.BestDaily != 3 {
		t.Errorf("BestDaily = %d, want 3", s.BestDaily)
	}
}

func TestComputeWeekly(t *testing.T) {
	// Mon, Wed, Fri. ISO week 2024-W01 covers Jan 1-7.
	h := models.Habit{ID: "h1", Schedule: models.WeeklySchedule(1, 3, 5)}

	logs := []models.HabitLog{
		// Week 1 complete.
		log("h1", "2024-01-01", true),
		log("h1", "2024-01-03", true),
		log("h1", "2024-01-05", true),
		// Week 2 complete.
		log("h1", "2024-01-08", true),
		log("h1", "2024-01-10", true),
		log("h1", "2024-01-12", true),
	}

	s := Compute(h, logs, "2024-01-12")
	if s.CurrentWeekly != 2 {
		t.Errorf("CurrentWeekly = %d, want 2", s.CurrentWeekly)
	}
	if s.BestWeekly != 2 {
		t.Errorf("BestWeekly = %d, want 2", s.BestWeekly)
	}
}

func TestComputeWeeklyIncompleteWeek(t *testing.T) {
	h := models.Habit{ID: "h1", Schedule: models.WeeklySchedule(1, 3, 5)}

	logs := []models.HabitLog{
		// Week 1 complete.
		log("h1", "2024-01-01", true),
		log("h1", "2024-01-03", true),
		log("h1", "2024-01-05", true),
		// Week 2 missing Friday.
		log("h1", "2024-01-08", true),
		log("h1", "2024-01-10", true),
	}

	s := Compute(h, logs, "2024-01-13")
	if s.CurrentWeekly != 0 {
		t.Errorf("CurrentWeekly = %d, want 0 (this week is incomplete)", s.CurrentWeekly)
	}
	if s.BestWeekly != 1 {
		t.Errorf("BestWeekly = %d, want 1", s.BestWeekly)
	}
}

func TestComputeBestIgnoresUnloggedGaps(t *testing.T) {
	h := models.Habit{ID: "h1", Schedule: models.DailySchedule()}

	// Two separate logged runs with a long unlogged gap in between. Unlogged
	// dates are invisible to the best scan, so the runs join.
	logs := []models.HabitLog{
		log("h1", "2024-01-01", true),
		log("h1", "2024-01-02", true),
		log("h1", "2024-02-01", true),
	}

	s := Compute(h, logs, "2024-02-01")
	if s.BestDaily != 3 {
		t.Errorf("BestDaily = %d, want 3 (only logged dates participate)", s.BestDaily)
	}
	if s.CurrentDaily != 1 {
		t.Errorf("CurrentDaily = %d, want 1", s.CurrentDaily)
	}
}
