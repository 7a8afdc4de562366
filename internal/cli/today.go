package cli

import (
	"fmt"

	"github.com/mtrost/ritual/internal/stats"
)

type TodayCmd struct {
	Date string `help:"Show a different date (YYYY-MM-DD)." default:""`
}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}
	logs, err := ctx.Store.GetLogsForDate(day)
	if err != nil {
		return err
	}

	due := stats.DueOn(day, habits, logs)
	if len(due) == 0 {
		fmt.Printf("Nothing due on %s.\n", day)
		return nil
	}

	fmt.Printf("Habits for %s:\n\n", day)
	done := 0
	for _, d := range due {
		status := "[ ]"
		if d.Done {
			status = "[x]"
			done++
		}
		progress := ""
		if d.Habit.Target() > 1 {
			progress = fmt.Sprintf(" (%d/%d)", d.Progress, d.Habit.Target())
		}
		timeBlock := ""
		if d.Habit.StartTime != "" {
			timeBlock = " @ " + d.Habit.StartTime
		}
		fmt.Printf("%s %s%s%s\n", status, d.Habit.Name, progress, timeBlock)
	}

	fmt.Printf("\nDone: %d/%d\n", done, len(due))
	return nil
}
