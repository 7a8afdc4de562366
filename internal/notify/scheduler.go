package notify

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mtrost/ritual/internal/constants"
	"github.com/mtrost/ritual/internal/logger"
	"github.com/mtrost/ritual/internal/models"
)

// Scheduler registers one cron entry per habit with a reminder and fires a
// desktop notification when it triggers. Entry ids are returned as opaque
// strings so the caller can persist them against the habit and cancel later.
type Scheduler struct {
	cron     *cron.Cron
	notifier *Notifier
}

func NewScheduler(notifier *Notifier, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		notifier: notifier,
	}
}

// ReminderTime shifts a habit's HH:MM start time back by its reminder
// offset (falling back to the default offset), wrapping within the day.
func ReminderTime(h models.Habit, defaultOffsetMin int) (hour, minute int, err error) {
	t, err := time.Parse(constants.TimeFormat, h.StartTime)
	if err != nil {
		return 0, 0, fmt.Errorf("habit %q has no valid start time: %w", h.Name, err)
	}

	offset := defaultOffsetMin
	if h.ReminderOffsetMin != nil {
		offset = *h.ReminderOffsetMin
	}

	minutes := t.Hour()*60 + t.Minute() - offset
	const day = 24 * 60
	minutes = ((minutes % day) + day) % day
	return minutes / 60, minutes % 60, nil
}

// CronSpec builds the cron expression for a habit's reminder. Weekly
// schedules map onto cron's weekday field (0=Sunday, same convention) and
// monthly schedules onto the day-of-month field. Days above 28 fire only in
// months that have them; the schedule evaluator's last-day collapse has no
// cron equivalent, which is acceptable for reminders.
func CronSpec(h models.Habit, defaultOffsetMin int) (string, error) {
	hour, minute, err := ReminderTime(h, defaultOffsetMin)
	if err != nil {
		return "", err
	}

	switch h.Schedule.Kind {
	case models.ScheduleWeekly:
		if len(h.Schedule.DaysOfWeek) == 0 {
			return "", fmt.Errorf("habit %q is scheduled on no weekday", h.Name)
		}
		return fmt.Sprintf("%d %d * * %s", minute, hour, joinDays(h.Schedule.DaysOfWeek)), nil
	case models.ScheduleMonthly:
		if len(h.Schedule.DaysOfMonth) == 0 {
			return "", fmt.Errorf("habit %q is scheduled on no day of month", h.Name)
		}
		return fmt.Sprintf("%d %d %s * *", minute, hour, joinDays(h.Schedule.DaysOfMonth)), nil
	default:
		return fmt.Sprintf("%d %d * * *", minute, hour), nil
	}
}

func joinDays(days []int) string {
	sorted := append([]int(nil), days...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, d := range sorted {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

// Schedule registers the habit's reminder and returns the cron entry ids.
// Habits without a start time or with an empty day set are skipped, not
// errors.
func (s *Scheduler) Schedule(h models.Habit, settings models.Settings) ([]string, error) {
	if h.Paused || h.StartTime == "" {
		return nil, nil
	}

	spec, err := CronSpec(h, settings.DefaultReminderOffsetMin)
	if err != nil {
		logger.Debug("Skipping reminder", "habit", h.Name, "reason", err)
		return nil, nil
	}

	name := h.Name
	id, err := s.cron.AddFunc(spec, func() {
		if err := s.notifier.Notify("ritual", fmt.Sprintf("Time for %s", name)); err != nil {
			logger.Warn("Failed to deliver reminder", "habit", name, "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule reminder for %q: %w", h.Name, err)
	}

	return []string{strconv.Itoa(int(id))}, nil
}

// Cancel removes previously scheduled entries. Unknown ids are ignored.
func (s *Scheduler) Cancel(ids []string) {
	for _, raw := range ids {
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		s.cron.Remove(cron.EntryID(id))
	}
}

// Start begins firing reminders in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the runner and waits for in-flight jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
