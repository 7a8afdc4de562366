package cli

import (
	"fmt"
	"time"

	"github.com/mtrost/ritual/internal/calendar"
	"github.com/mtrost/ritual/internal/stats"
)

type HistoryCmd struct {
	Months int  `help:"Number of months to show (default: settings page size)." default:"0"`
	All    bool `help:"Show everything back to the first log."`
}

// Run prints completion summaries grouped week-by-week within months,
// newest month last. The range never reaches back before the first log.
func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	months := c.Months
	if months <= 0 {
		months = ctx.Settings().HistoryPageMonths
	}

	to := ctx.Today()
	var from string
	if c.All {
		earliest, err := ctx.Store.EarliestLogDate()
		if err != nil {
			return err
		}
		if earliest == "" {
			fmt.Println("No history yet.")
			return nil
		}
		from = earliest
	} else {
		year, month, day, _ := calendar.ParseDate(to)
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).AddDate(0, -months, 0)
		from = calendar.FormatDate(t.Year(), int(t.Month()), t.Day())
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}
	logs, err := ctx.Store.GetLogsInRange(from, to)
	if err != nil {
		return err
	}

	history := stats.FullHistory(from, to, habits, stats.NewLogIndex(logs))
	if len(history) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	for _, m := range history {
		fmt.Printf("\n%s %d\n", time.Month(m.Month), m.Year)
		for _, w := range m.Weeks {
			planned, done := 0, 0
			for _, d := range w.Days {
				planned += d.TotalPlanned
				done += d.TotalDone
			}
			rate := 0.0
			if planned > 0 {
				rate = float64(done) / float64(planned)
			}
			fmt.Printf("  %s  %s  %d/%d (%3.0f%%)\n",
				w.WeekKey, renderBar(rate, 10), done, planned, rate*100)
		}
	}
	return nil
}
