package cli

import (
	"fmt"
	"time"

	"github.com/mtrost/ritual/internal/calendar"
	"github.com/mtrost/ritual/internal/migration"
	"github.com/mtrost/ritual/internal/models"
	"github.com/mtrost/ritual/internal/notify"
	"github.com/mtrost/ritual/internal/storage/sqlite"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkMigrationsComplete(ctx); err != nil {
			fmt.Printf("❌ Migrations complete: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Migrations complete: OK\n")
		}
	} else {
		fmt.Printf("⊘ Migrations complete: SKIPPED (database not reachable)\n")
	}

	if err := checkTimezone(ctx); err != nil {
		fmt.Printf("❌ Timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Timezone: OK\n")
	}

	if dbReachable {
		if err := checkHabitsIntegrity(ctx); err != nil {
			fmt.Printf("❌ Habit integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Habit integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Habit integrity: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkLogDates(ctx); err != nil {
			fmt.Printf("❌ Log date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Log date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Log date formats: SKIPPED (database not reachable)\n")
	}

	// Warning only: reminders still work when re-run after starting the agent.
	if err := checkNotificationAgent(); err != nil {
		fmt.Printf("⚠ Notification agent: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Notification agent: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if store, ok := ctx.Store.(*sqlite.Store); ok {
		db := store.DB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkMigrationsComplete(ctx *Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	migrationFS, err := sqlite.MigrationFS()
	if err != nil {
		return err
	}
	runner := migration.NewRunner(store.DB(), migrationFS)

	current, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkTimezone(ctx *Context) error {
	tz := ctx.Settings().Timezone
	if tz == "" || tz == "Local" {
		return nil
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("configured timezone %q is not loadable: %w", tz, err)
	}
	return nil
}

func checkHabitsIntegrity(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	for _, h := range habits {
		if h.Name == "" {
			return fmt.Errorf("habit %s has an empty name", h.ID)
		}
		if h.Target() < 1 {
			return fmt.Errorf("habit %q has invalid target repeats", h.Name)
		}
		switch h.Schedule.Kind {
		case models.ScheduleDaily, models.ScheduleWeekly, models.ScheduleMonthly:
		default:
			return fmt.Errorf("habit %q has unknown schedule kind %q", h.Name, h.Schedule.Kind)
		}
		if h.End.Kind == models.EndByDate {
			if _, _, _, ok := calendar.ParseDate(h.End.EndDate); !ok {
				return fmt.Errorf("habit %q has malformed end date %q", h.Name, h.End.EndDate)
			}
		}
	}
	return nil
}

func checkLogDates(ctx *Context) error {
	earliest, err := ctx.Store.EarliestLogDate()
	if err != nil {
		return fmt.Errorf("failed to get earliest log date: %w", err)
	}
	if earliest == "" {
		return nil
	}
	if _, _, _, ok := calendar.ParseDate(earliest); !ok {
		return fmt.Errorf("log table contains malformed date %q", earliest)
	}

	logs, err := ctx.Store.GetLogsInRange(earliest, calendar.Today(ctx.Location()))
	if err != nil {
		return fmt.Errorf("failed to scan logs: %w", err)
	}
	for _, l := range logs {
		if _, _, _, ok := calendar.ParseDate(l.Date); !ok {
			return fmt.Errorf("log %s has malformed date %q", l.ID, l.Date)
		}
		if l.Progress < 0 {
			return fmt.Errorf("log %s has negative progress", l.ID)
		}
	}
	return nil
}

func checkNotificationAgent() error {
	return notify.NewNotifier().Ping()
}
