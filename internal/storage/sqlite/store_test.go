package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mtrost/ritual/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testHabit(name string) models.Habit {
	return models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Schedule:  models.DailySchedule(),
		End:       models.EndsNever(),
		CreatedAt: time.Now().UTC(),
	}
}

func TestInitSeedsDefaultSettings(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error: %v", err)
	}
	if settings.Timezone == "" {
		t.Error("default timezone not seeded")
	}
	if settings.HistoryPageMonths < 1 {
		t.Errorf("HistoryPageMonths = %d, want >= 1", settings.HistoryPageMonths)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}

func TestHabitCRUD(t *testing.T) {
	store := setupTestStore(t)

	offset := 15
	h := testHabit("Meditate")
	h.Icon = "🧘"
	h.Schedule = models.WeeklySchedule(1, 3, 5)
	h.End = models.EndsOn("2024-12-31")
	h.StartTime = "07:30"
	h.ReminderOffsetMin = &offset
	h.TargetRepeats = 3

	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() error: %v", err)
	}

	got, err := store.GetHabit(h.ID)
	if err != nil {
		t.Fatalf("GetHabit() error: %v", err)
	}
	if got.Name != h.Name || got.Icon != h.Icon || got.StartTime != h.StartTime {
		t.Errorf("GetHabit() = %+v, want %+v", got, h)
	}
	if got.Schedule.Kind != models.ScheduleWeekly || len(got.Schedule.DaysOfWeek) != 3 {
		t.Errorf("schedule round trip = %+v", got.Schedule)
	}
	if got.End != models.EndsOn("2024-12-31") {
		t.Errorf("end condition round trip = %+v", got.End)
	}
	if got.ReminderOffsetMin == nil || *got.ReminderOffsetMin != offset {
		t.Errorf("reminder offset round trip = %v", got.ReminderOffsetMin)
	}
	if got.Target() != 3 {
		t.Errorf("Target() = %d, want 3", got.Target())
	}

	byName, err := store.GetHabitByName("Meditate")
	if err != nil {
		t.Fatalf("GetHabitByName() error: %v", err)
	}
	if byName.ID != h.ID {
		t.Errorf("GetHabitByName() id = %s, want %s", byName.ID, h.ID)
	}

	got.Name = "Morning meditation"
	got.Paused = true
	now := time.Now().UTC()
	got.PausedAt = &now
	got.PauseReason = "travel"
	if err := store.UpdateHabit(got); err != nil {
		t.Fatalf("UpdateHabit() error: %v", err)
	}

	updated, err := store.GetHabit(h.ID)
	if err != nil {
		t.Fatalf("GetHabit() after update error: %v", err)
	}
	if updated.Name != "Morning meditation" || !updated.Paused || updated.PauseReason != "travel" {
		t.Errorf("update not persisted: %+v", updated)
	}
	if updated.PausedAt == nil {
		t.Error("PausedAt not persisted")
	}
}

func TestGetHabitNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetHabit("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetHabit(nope) error = %v, want ErrNotFound", err)
	}

	_, err = store.GetHabitByName("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetHabitByName(nope) error = %v, want ErrNotFound", err)
	}

	err = store.UpdateHabit(testHabit("ghost"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateHabit on missing habit error = %v, want ErrNotFound", err)
	}
}

func TestGetAllHabitsPausedFilter(t *testing.T) {
	store := setupTestStore(t)

	active := testHabit("Active")
	paused := testHabit("Paused")
	paused.Paused = true

	if err := store.AddHabit(active); err != nil {
		t.Fatal(err)
	}
	if err := store.AddHabit(paused); err != nil {
		t.Fatal(err)
	}

	habits, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("GetAllHabits(false) error: %v", err)
	}
	if len(habits) != 1 || habits[0].Name != "Active" {
		t.Errorf("GetAllHabits(false) = %d habits, want only Active", len(habits))
	}

	habits, err = store.GetAllHabits(true)
	if err != nil {
		t.Fatalf("GetAllHabits(true) error: %v", err)
	}
	if len(habits) != 2 {
		t.Errorf("GetAllHabits(true) = %d habits, want 2", len(habits))
	}
}

func TestToggleLog(t *testing.T) {
	store := setupTestStore(t)

	h := testHabit("Meditate")
	if err := store.AddHabit(h); err != nil {
		t.Fatal(err)
	}

	l, err := store.ToggleLog(h.ID, "2024-01-15")
	if err != nil {
		t.Fatalf("ToggleLog() error: %v", err)
	}
	if !l.Done || l.Progress != 1 {
		t.Errorf("first toggle = done %v progress %d, want done with progress 1", l.Done, l.Progress)
	}

	l, err = store.ToggleLog(h.ID, "2024-01-15")
	if err != nil {
		t.Fatalf("second ToggleLog() error: %v", err)
	}
	if l.Done || l.Progress != 0 {
		t.Errorf("second toggle = done %v progress %d, want undone with progress 0", l.Done, l.Progress)
	}

	// Only one row should exist for the pair.
	logs, err := store.GetLogsForHabit(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 1 {
		t.Errorf("toggling created %d rows, want 1", len(logs))
	}

	_, err = store.ToggleLog("missing", "2024-01-15")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ToggleLog on missing habit error = %v, want ErrNotFound", err)
	}
}

func TestToggleLogWithTarget(t *testing.T) {
	store := setupTestStore(t)

	h := testHabit("Pushups")
	h.TargetRepeats = 3
	if err := store.AddHabit(h); err != nil {
		t.Fatal(err)
	}

	l, err := store.ToggleLog(h.ID, "2024-01-15")
	if err != nil {
		t.Fatal(err)
	}
	if !l.Done || l.Progress != 3 {
		t.Errorf("toggle on = done %v progress %d, want done with full target", l.Done, l.Progress)
	}
}

func TestIncrementProgress(t *testing.T) {
	store := setupTestStore(t)

	h := testHabit("Pushups")
	h.TargetRepeats = 3
	if err := store.AddHabit(h); err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 2; i++ {
		l, err := store.IncrementProgress(h.ID, "2024-01-15", 3)
		if err != nil {
			t.Fatalf("IncrementProgress() error: %v", err)
		}
		if l.Progress != i || l.Done {
			t.Errorf("after %d reps: progress %d done %v", i, l.Progress, l.Done)
		}
	}

	l, err := store.IncrementProgress(h.ID, "2024-01-15", 3)
	if err != nil {
		t.Fatal(err)
	}
	if l.Progress != 3 || !l.Done {
		t.Errorf("at target: progress %d done %v, want 3 and done", l.Progress, l.Done)
	}

	// Clamped at target.
	l, err = store.IncrementProgress(h.ID, "2024-01-15", 3)
	if err != nil {
		t.Fatal(err)
	}
	if l.Progress != 3 {
		t.Errorf("past target: progress %d, want clamped at 3", l.Progress)
	}
}

func TestLogQueries(t *testing.T) {
	store := setupTestStore(t)

	h1 := testHabit("One")
	h2 := testHabit("Two")
	if err := store.AddHabit(h1); err != nil {
		t.Fatal(err)
	}
	if err := store.AddHabit(h2); err != nil {
		t.Fatal(err)
	}

	for _, date := range []string{"2024-01-10", "2024-01-11", "2024-01-12"} {
		if _, err := store.ToggleLog(h1.ID, date); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.ToggleLog(h2.ID, "2024-01-11"); err != nil {
		t.Fatal(err)
	}

	logs, err := store.GetLogsForDate("2024-01-11")
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 2 {
		t.Errorf("GetLogsForDate = %d logs, want 2", len(logs))
	}

	logs, err = store.GetLogsForHabit(h1.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 3 {
		t.Errorf("GetLogsForHabit = %d logs, want 3", len(logs))
	}

	logs, err = store.GetLogsInRange("2024-01-11", "2024-01-12")
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 3 {
		t.Errorf("GetLogsInRange = %d logs, want 3", len(logs))
	}

	earliest, err := store.EarliestLogDate()
	if err != nil {
		t.Fatal(err)
	}
	if earliest != "2024-01-10" {
		t.Errorf("EarliestLogDate = %q, want 2024-01-10", earliest)
	}
}

func TestEarliestLogDateEmpty(t *testing.T) {
	store := setupTestStore(t)

	earliest, err := store.EarliestLogDate()
	if err != nil {
		t.Fatalf("EarliestLogDate() error: %v", err)
	}
	if earliest != "" {
		t.Errorf("EarliestLogDate on empty table = %q, want empty", earliest)
	}
}

func TestDeleteHabitCascadesLogs(t *testing.T) {
	store := setupTestStore(t)

	h := testHabit("Doomed")
	if err := store.AddHabit(h); err != nil {
		t.Fatal(err)
	}
	if _, err := store.ToggleLog(h.ID, "2024-01-15"); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteHabit(h.ID); err != nil {
		t.Fatalf("DeleteHabit() error: %v", err)
	}

	if _, err := store.GetHabit(h.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("habit still present after delete: %v", err)
	}

	logs, err := store.GetLogsForHabit(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 0 {
		t.Errorf("%d orphan logs remain after delete", len(logs))
	}

	if err := store.DeleteHabit(h.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete error = %v, want ErrNotFound", err)
	}
}

func TestUpdateNotificationIDs(t *testing.T) {
	store := setupTestStore(t)

	h := testHabit("Reminded")
	if err := store.AddHabit(h); err != nil {
		t.Fatal(err)
	}

	if err := store.UpdateNotificationIDs(h.ID, []string{"1", "2"}); err != nil {
		t.Fatalf("UpdateNotificationIDs() error: %v", err)
	}
	got, err := store.GetHabit(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.NotificationIDs) != 2 || got.NotificationIDs[0] != "1" {
		t.Errorf("NotificationIDs = %v, want [1 2]", got.NotificationIDs)
	}

	// Clearing writes NULL.
	if err := store.UpdateNotificationIDs(h.ID, nil); err != nil {
		t.Fatal(err)
	}
	got, err = store.GetHabit(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.NotificationIDs) != 0 {
		t.Errorf("NotificationIDs after clear = %v, want empty", got.NotificationIDs)
	}
}

func TestSaveAndGetSettings(t *testing.T) {
	store := setupTestStore(t)

	want := models.Settings{
		Timezone:                 "Europe/Berlin",
		NotificationsEnabled:     false,
		DefaultReminderOffsetMin: 20,
		HistoryPageMonths:        6,
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error: %v", err)
	}
	if got != want {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}

func TestCorruptScheduleHeals(t *testing.T) {
	store := setupTestStore(t)

	h := testHabit("Corrupt")
	if err := store.AddHabit(h); err != nil {
		t.Fatal(err)
	}

	if _, err := store.db.Exec(
		"UPDATE habits SET schedule = ?, end_condition = ? WHERE id = ?",
		"{broken", "also broken", h.ID); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetHabit(h.ID)
	if err != nil {
		t.Fatalf("GetHabit() with corrupt JSON error: %v", err)
	}
	if got.Schedule.Kind != models.ScheduleDaily {
		t.Errorf("corrupt schedule healed to %+v, want daily", got.Schedule)
	}
	if got.End != models.EndsNever() {
		t.Errorf("corrupt end condition healed to %+v, want never", got.End)
	}
}
