package tui

import (
	"fmt"

	"github.com/mtrost/ritual/internal/stats"
)

// Item adapts a due habit to the bubbles list interface.
type Item struct {
	Due stats.DueHabit
}

func (i Item) Title() string {
	marker := "○ "
	if i.Due.Done {
		marker = "✓ "
	}
	title := marker + i.Due.Habit.Name
	if i.Due.Habit.Icon != "" {
		title = marker + i.Due.Habit.Icon + " " + i.Due.Habit.Name
	}
	return title
}

func (i Item) Description() string {
	desc := "not done today"
	if i.Due.Done {
		desc = "done today"
	}
	if i.Due.Habit.Target() > 1 {
		desc = fmt.Sprintf("%s (%d/%d)", desc, i.Due.Progress, i.Due.Habit.Target())
	}
	if i.Due.Habit.StartTime != "" {
		desc += " @ " + i.Due.Habit.StartTime
	}
	return desc
}

func (i Item) FilterValue() string { return i.Due.Habit.Name }
