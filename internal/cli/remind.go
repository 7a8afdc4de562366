package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mtrost/ritual/internal/logger"
	"github.com/mtrost/ritual/internal/notify"
)

type RemindCmd struct {
	DryRun bool `help:"Print the reminders that would be scheduled and exit."`
}

// Run schedules a reminder per habit and blocks until interrupted. Entry ids
// are persisted against each habit so a later invocation can tell what was
// scheduled.
func (c *RemindCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings := ctx.Settings()
	if !settings.NotificationsEnabled {
		fmt.Println("Notifications are disabled. Enable them with 'ritual settings --notifications-enabled'.")
		return nil
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	if c.DryRun {
		for _, h := range habits {
			if h.StartTime == "" {
				continue
			}
			spec, err := notify.CronSpec(h, settings.DefaultReminderOffsetMin)
			if err != nil {
				continue
			}
			fmt.Printf("%-20s %s\n", h.Name, spec)
		}
		return nil
	}

	scheduler := notify.NewScheduler(notify.NewNotifier(), ctx.Location())

	scheduled := 0
	for _, h := range habits {
		ids, err := scheduler.Schedule(h, settings)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			continue
		}
		if err := ctx.Store.UpdateNotificationIDs(h.ID, ids); err != nil {
			return fmt.Errorf("failed to persist reminder ids for %q: %w", h.Name, err)
		}
		scheduled++
	}

	if scheduled == 0 {
		fmt.Println("No habits with a start time to remind about.")
		return nil
	}

	scheduler.Start()
	logger.Info("Reminder scheduler started", "habits", scheduled)
	fmt.Printf("Scheduling reminders for %d habit(s). Press Ctrl+C to stop.\n", scheduled)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	scheduler.Stop()
	logger.Info("Reminder scheduler stopped")
	return nil
}
