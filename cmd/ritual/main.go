package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/mtrost/ritual/internal/cli"
	"github.com/mtrost/ritual/internal/config"
	"github.com/mtrost/ritual/internal/constants"
	apperrors "github.com/mtrost/ritual/internal/errors"
	"github.com/mtrost/ritual/internal/logger"
	"github.com/mtrost/ritual/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize ritual storage."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive today view." default:"1"`
	Today    cli.TodayCmd    `cmd:"" help:"Show habits due today."`
	Done     cli.DoneCmd     `cmd:"" help:"Mark a habit done (or log a rep)."`
	Week     cli.WeekCmd     `cmd:"" help:"Summarize the last 7 days."`
	Month    cli.MonthCmd    `cmd:"" help:"Show a habit's monthly calendar."`
	History  cli.HistoryCmd  `cmd:"" help:"Show week-by-week completion history."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show streaks."`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage habits."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage application settings."`
	Remind   cli.RemindCmd   `cmd:"" help:"Run the reminder scheduler."`
}

func main() {
	cfg := config.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker with schedules, streaks, and reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     "v0.2.0",
			"config_path": cfg.DBPath,
		},
	)

	dbPath := storage.ExpandHome(CLI.Config)
	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug || CLI.Debug,
		ConfigDir: filepath.Dir(dbPath),
	}); err != nil {
		apperrors.Fatalf("failed to initialize logging: %v", err)
	}

	appCtx := &cli.Context{
		Store: storage.NewSQLiteStore(CLI.Config),
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
