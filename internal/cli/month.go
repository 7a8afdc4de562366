package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mtrost/ritual/internal/calendar"
	"github.com/mtrost/ritual/internal/stats"
)

var (
	doneStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	missedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	futureStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	unscheduledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Faint(true)
)

type MonthCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Month string `help:"Month to show (YYYY-MM, default: current)." default:""`
}

func (c *MonthCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	today := ctx.Today()
	year, month, _, _ := calendar.ParseDate(today)
	if c.Month != "" {
		var y, m int
		if _, err := fmt.Sscanf(c.Month, "%d-%d", &y, &m); err != nil || m < 1 || m > 12 {
			return fmt.Errorf("invalid month: %s (expected YYYY-MM)", c.Month)
		}
		year, month = y, m
	}

	logs, err := ctx.Store.GetLogsForHabit(habit.ID)
	if err != nil {
		return err
	}

	states := stats.MonthlyCalendar(habit, year, month, logs, today)

	fmt.Printf("%s — %s %d\n\n", habit.Name, time.Month(month), year)
	fmt.Println("Sun Mon Tue Wed Thu Fri Sat")

	// Leading blanks up to the month's first weekday.
	offset := calendar.DayOfWeek(calendar.FormatDate(year, month, 1))
	line := ""
	for i := 0; i < offset; i++ {
		line += "    "
	}
	for day := 1; day <= len(states); day++ {
		cell := fmt.Sprintf("%3d", day)
		switch states[day-1] {
		case stats.StateDone:
			cell = doneStyle.Render(cell)
		case stats.StateMissed:
			cell = missedStyle.Render(cell)
		case stats.StateFuture:
			cell = futureStyle.Render(cell)
		default:
			cell = unscheduledStyle.Render(cell)
		}
		line += cell + " "
		if (offset+day)%7 == 0 {
			fmt.Println(line)
			line = ""
		}
	}
	if line != "" {
		fmt.Println(line)
	}

	fmt.Println("\n" + doneStyle.Render("done") + " " + missedStyle.Render("missed") +
		" " + futureStyle.Render("upcoming") + " " + unscheduledStyle.Render("off-schedule"))
	return nil
}
