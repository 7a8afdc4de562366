package cli

import (
	"fmt"
	"strings"

	"github.com/mtrost/ritual/internal/calendar"
	"github.com/mtrost/ritual/internal/stats"
)

type WeekCmd struct {
	Date string `help:"Summarize the 7 days ending at this date (default: today)." default:""`
}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	refDate, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	start := refDate
	for i := 0; i < 6; i++ {
		start = calendar.PreviousDate(start)
	}
	logs, err := ctx.Store.GetLogsInRange(start, refDate)
	if err != nil {
		return err
	}

	summary := stats.WeeklySummary(refDate, habits, stats.NewLogIndex(logs))

	fmt.Printf("Week ending %s:\n\n", refDate)
	for _, day := range summary {
		bar := renderBar(day.CompletionRate, 10)
		fmt.Printf("%s %s  %s %2d/%-2d (%3.0f%%)\n",
			day.Weekday, day.Date, bar, day.TotalDone, day.TotalPlanned, day.CompletionRate*100)
	}
	return nil
}

func renderBar(rate float64, width int) string {
	filled := int(rate * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
