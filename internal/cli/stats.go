package cli

import (
	"errors"
	"fmt"

	"github.com/mtrost/ritual/internal/models"
	"github.com/mtrost/ritual/internal/storage"
	"github.com/mtrost/ritual/internal/streak"
)

type StatsCmd struct {
	Name string `arg:"" optional:"" help:"Habit name (default: all habits)."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	today := ctx.Today()

	if c.Name != "" {
		habit, err := ctx.Store.GetHabitByName(c.Name)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("habit %q not found", c.Name)
			}
			return err
		}
		return c.printStreaks(ctx, habit, today)
	}

	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}
	for _, habit := range habits {
		if err := c.printStreaks(ctx, habit, today); err != nil {
			return err
		}
	}
	return nil
}

func (c *StatsCmd) printStreaks(ctx *Context, habit models.Habit, today string) error {
	logs, err := ctx.Store.GetLogsForHabit(habit.ID)
	if err != nil {
		return err
	}

	s := streak.Compute(habit, logs, today)
	fmt.Printf("%s: current %d, best %d", habit.Name, s.CurrentDaily, s.BestDaily)
	if habit.Schedule.Kind == models.ScheduleWeekly {
		fmt.Printf(" | weeks: current %d, best %d", s.CurrentWeekly, s.BestWeekly)
	}
	fmt.Println()
	return nil
}
