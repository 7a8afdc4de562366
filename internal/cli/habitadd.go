package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/mtrost/ritual/internal/calendar"
	"github.com/mtrost/ritual/internal/constants"
	"github.com/mtrost/ritual/internal/models"
)

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Weekly      string `help:"Weekly schedule: comma-separated weekdays (e.g. mon,wed,fri). Empty value means today's weekday." xor:"schedule"`
	Monthly     string `help:"Monthly schedule: comma-separated days of month (e.g. 1,15,31)." xor:"schedule"`
	EndDate     string `help:"Stop being due after this date (YYYY-MM-DD)."`
	StartTime   string `help:"Display time block start (HH:MM)."`
	EndTime     string `help:"Display time block end (HH:MM)."`
	Target      int    `help:"Completions required per day." default:"1"`
	Reminder    int    `help:"Minutes before start time to remind." default:"-1"`
	Icon        string `help:"Display icon."`
	Color       string `help:"Display color."`
	Interactive bool   `short:"i" help:"Create the habit through an interactive form."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Interactive {
		if err := c.runForm(ctx); err != nil {
			return err
		}
	}
	if c.Name == "" {
		return fmt.Errorf("habit name is required")
	}

	// Check if habit with same name already exists
	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	sched, err := c.buildSchedule(ctx)
	if err != nil {
		return err
	}

	end := models.EndsNever()
	if c.EndDate != "" {
		if _, _, _, ok := calendar.ParseDate(c.EndDate); !ok {
			return fmt.Errorf("invalid end date: %s (expected YYYY-MM-DD)", c.EndDate)
		}
		end = models.EndsOn(c.EndDate)
	}

	for _, t := range []string{c.StartTime, c.EndTime} {
		if t == "" {
			continue
		}
		if _, err := time.Parse(constants.TimeFormat, t); err != nil {
			return fmt.Errorf("invalid time: %s (expected HH:MM)", t)
		}
	}
	if c.Target < 1 {
		return fmt.Errorf("target must be at least 1")
	}

	habit := models.Habit{
		ID:            uuid.New().String(),
		Name:          c.Name,
		Icon:          c.Icon,
		Color:         c.Color,
		Schedule:      sched,
		End:           end,
		StartTime:     c.StartTime,
		EndTime:       c.EndTime,
		TargetRepeats: c.Target,
		CreatedAt:     time.Now(),
	}
	if c.Reminder >= 0 {
		offset := c.Reminder
		habit.ReminderOffsetMin = &offset
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", habit.Name, habit.Schedule)
	return nil
}

func (c *HabitAddCmd) buildSchedule(ctx *Context) (models.Schedule, error) {
	switch {
	case c.Weekly != "":
		days, err := ParseWeekdays(c.Weekly)
		if err != nil {
			return models.Schedule{}, err
		}
		if len(days) == 0 {
			// Fall back to today's weekday rather than a schedule that is
			// due on no day.
			days = []int{calendar.DayOfWeek(ctx.Today())}
		}
		return models.WeeklySchedule(days...), nil
	case c.Monthly != "":
		days, err := ParseMonthDays(c.Monthly)
		if err != nil {
			return models.Schedule{}, err
		}
		if len(days) == 0 {
			return models.Schedule{}, fmt.Errorf("monthly schedule needs at least one day")
		}
		return models.MonthlySchedule(days...), nil
	default:
		return models.DailySchedule(), nil
	}
}

// runForm fills the command fields through an interactive form; flag values
// act as form defaults.
func (c *HabitAddCmd) runForm(ctx *Context) error {
	kind := "daily"
	switch {
	case c.Weekly != "":
		kind = "weekly"
	case c.Monthly != "":
		kind = "monthly"
	}
	var weekdays []int
	target := strconv.Itoa(c.Target)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&c.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Schedule").
				Options(
					huh.NewOption("Every day", "daily"),
					huh.NewOption("Certain weekdays", "weekly"),
					huh.NewOption("Certain days of the month", "monthly"),
				).
				Value(&kind),
		),
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Weekdays").
				Options(
					huh.NewOption("Sunday", 0),
					huh.NewOption("Monday", 1),
					huh.NewOption("Tuesday", 2),
					huh.NewOption("Wednesday", 3),
					huh.NewOption("Thursday", 4),
					huh.NewOption("Friday", 5),
					huh.NewOption("Saturday", 6),
				).
				Value(&weekdays),
		).WithHideFunc(func() bool { return kind != "weekly" }),
		huh.NewGroup(
			huh.NewInput().
				Title("Days of month (comma-separated)").
				Value(&c.Monthly),
		).WithHideFunc(func() bool { return kind != "monthly" }),
		huh.NewGroup(
			huh.NewInput().
				Title("Start time (HH:MM, optional)").
				Value(&c.StartTime),
			huh.NewInput().
				Title("Completions per day").
				Value(&target),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	switch kind {
	case "weekly":
		if len(weekdays) == 0 {
			weekdays = []int{calendar.DayOfWeek(ctx.Today())}
		}
		parts := make([]string, len(weekdays))
		for i, d := range weekdays {
			parts[i] = strconv.Itoa(d)
		}
		c.Weekly = strings.Join(parts, ",")
		c.Monthly = ""
	case "monthly":
		c.Weekly = ""
	default:
		c.Weekly = ""
		c.Monthly = ""
	}
	if n, err := strconv.Atoi(target); err == nil && n >= 1 {
		c.Target = n
	}
	return nil
}
