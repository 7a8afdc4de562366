package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtrost/ritual/internal/tui"
)

type TuiCmd struct {
	Date string `help:"Open a different date (YYYY-MM-DD)." default:""`
}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	model, err := tui.New(ctx.Store, day)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
