package cli

import (
	"fmt"
	"time"

	"github.com/mtrost/ritual/internal/calendar"
	"github.com/mtrost/ritual/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and all its logs."`
	Pause  HabitPauseCmd  `cmd:"" help:"Pause a habit."`
	Resume HabitResumeCmd `cmd:"" help:"Resume a paused habit."`
}

type HabitListCmd struct {
	Paused bool `help:"Include paused habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(c.Paused)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if habit.Paused {
			status = " [PAUSED]"
		}
		extra := ""
		if habit.End.Kind == models.EndByDate {
			extra = fmt.Sprintf(", until %s", habit.End.EndDate)
		}
		if habit.Target() > 1 {
			extra += fmt.Sprintf(", %dx per day", habit.Target())
		}
		fmt.Printf("%s%s (%s%s)\n", habit.Name, status, habit.Schedule, extra)
	}

	return nil
}

type HabitEditCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Rename    string `help:"New habit name."`
	Weekly    string `help:"Weekly schedule: comma-separated weekdays." xor:"schedule"`
	Monthly   string `help:"Monthly schedule: comma-separated days of month." xor:"schedule"`
	Daily     bool   `help:"Switch to a daily schedule." xor:"schedule"`
	EndDate   string `help:"Stop being due after this date (YYYY-MM-DD). Pass 'none' to clear."`
	StartTime string `help:"Display time block start (HH:MM)."`
	EndTime   string `help:"Display time block end (HH:MM)."`
	Target    int    `help:"Completions required per day." default:"0"`
	Icon      string `help:"Display icon."`
	Color     string `help:"Display color."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.Rename != "" {
		habit.Name = c.Rename
	}
	switch {
	case c.Daily:
		habit.Schedule = models.DailySchedule()
	case c.Weekly != "":
		days, err := ParseWeekdays(c.Weekly)
		if err != nil {
			return err
		}
		if len(days) == 0 {
			days = []int{calendar.DayOfWeek(ctx.Today())}
		}
		habit.Schedule = models.WeeklySchedule(days...)
	case c.Monthly != "":
		days, err := ParseMonthDays(c.Monthly)
		if err != nil {
			return err
		}
		if len(days) == 0 {
			return fmt.Errorf("monthly schedule needs at least one day")
		}
		habit.Schedule = models.MonthlySchedule(days...)
	}
	switch c.EndDate {
	case "":
	case "none":
		habit.End = models.EndsNever()
	default:
		if _, _, _, ok := calendar.ParseDate(c.EndDate); !ok {
			return fmt.Errorf("invalid end date: %s (expected YYYY-MM-DD)", c.EndDate)
		}
		habit.End = models.EndsOn(c.EndDate)
	}
	if c.StartTime != "" {
		habit.StartTime = c.StartTime
	}
	if c.EndTime != "" {
		habit.EndTime = c.EndTime
	}
	if c.Target > 0 {
		habit.TargetRepeats = c.Target
	}
	if c.Icon != "" {
		habit.Icon = c.Icon
	}
	if c.Color != "" {
		habit.Color = c.Color
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s (%s)\n", habit.Name, habit.Schedule)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and all its logs\n", c.Name)
	return nil
}

type HabitPauseCmd struct {
	Name   string `arg:"" help:"Habit name."`
	Reason string `help:"Why the habit is being paused."`
}

func (c *HabitPauseCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}
	if habit.Paused {
		return fmt.Errorf("habit %q is already paused", c.Name)
	}

	now := time.Now()
	habit.Paused = true
	habit.PausedAt = &now
	habit.PauseReason = c.Reason

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Paused habit %q\n", c.Name)
	return nil
}

type HabitResumeCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitResumeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}
	if !habit.Paused {
		return fmt.Errorf("habit %q is not paused", c.Name)
	}

	habit.Paused = false
	habit.PausedAt = nil
	habit.PauseReason = ""

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Resumed habit %q\n", c.Name)
	return nil
}
