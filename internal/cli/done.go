package cli

import (
	"fmt"
)

type DoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

// Run records one interaction for the habit on the given date. A habit with
// a multi-completion target gets its progress bumped by one; a simple habit
// is toggled.
func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	if habit.Target() > 1 {
		log, err := ctx.Store.IncrementProgress(habit.ID, day, habit.Target())
		if err != nil {
			return err
		}
		if log.Done {
			fmt.Printf("Completed %q for %s (%d/%d)\n", c.Name, day, log.Progress, habit.Target())
		} else {
			fmt.Printf("Progress on %q for %s: %d/%d\n", c.Name, day, log.Progress, habit.Target())
		}
		return nil
	}

	log, err := ctx.Store.ToggleLog(habit.ID, day)
	if err != nil {
		return err
	}
	if log.Done {
		fmt.Printf("Marked habit %q done for %s\n", c.Name, day)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", c.Name, day)
	}
	return nil
}
