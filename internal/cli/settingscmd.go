package cli

import (
	"fmt"
	"time"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone                 *string `help:"IANA timezone name, or 'Local' for the system timezone."`
	NotificationsEnabled     *bool   `help:"Enable or disable reminders."`
	DefaultReminderOffsetMin *int    `help:"Default minutes before start time to remind."`
	HistoryPageMonths        *int    `help:"Months per page in history output."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:                %s\n", settings.Timezone)
		fmt.Printf("  Notifications Enabled:   %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Default Reminder Offset: %d min\n", settings.DefaultReminderOffsetMin)
		fmt.Printf("  History Page Months:     %d\n", settings.HistoryPageMonths)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if *c.Timezone != "Local" {
			if _, err := time.LoadLocation(*c.Timezone); err != nil {
				return fmt.Errorf("unknown timezone: %s", *c.Timezone)
			}
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.DefaultReminderOffsetMin != nil {
		if *c.DefaultReminderOffsetMin < 0 {
			return fmt.Errorf("reminder offset cannot be negative")
		}
		settings.DefaultReminderOffsetMin = *c.DefaultReminderOffsetMin
		updated = true
	}
	if c.HistoryPageMonths != nil {
		if *c.HistoryPageMonths < 1 {
			return fmt.Errorf("history page months must be at least 1")
		}
		settings.HistoryPageMonths = *c.HistoryPageMonths
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
