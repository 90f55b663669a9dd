// ABOUTME: CLI commands for user settings.
// ABOUTME: Shows and updates the weight unit and theme preferences.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change preferences",
	Long: `View and change display preferences.

SETTINGS:

  unit    Weight display unit: lbs or kg
  theme   Display theme: light or dark

EXAMPLES:

  fitrack settings show
  fitrack settings set unit kg
  fitrack settings set theme dark`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.GetUserSettings(models.DefaultSettingsKey)
		if s == nil {
			s = models.DefaultSettings()
		}

		fmt.Printf("Weight unit: %s\n", s.WeightUnit)
		fmt.Printf("Theme: %s\n", s.Theme)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.GetUserSettings(models.DefaultSettingsKey)
		if s == nil {
			s = models.DefaultSettings()
		}

		switch args[0] {
		case "unit":
			switch models.WeightUnit(args[1]) {
			case models.UnitLbs, models.UnitKg:
				s.WeightUnit = models.WeightUnit(args[1])
			default:
				return fmt.Errorf("invalid unit: %s (use lbs or kg)", args[1])
			}
		case "theme":
			switch models.Theme(args[1]) {
			case models.ThemeLight, models.ThemeDark:
				s.Theme = models.Theme(args[1])
			default:
				return fmt.Errorf("invalid theme: %s (use light or dark)", args[1])
			}
		default:
			return fmt.Errorf("unknown setting: %s (use unit or theme)", args[0])
		}

		store.SaveUserSettings(s)
		if !store.Status().Available {
			color.Yellow("⚠ Not saved: storage unavailable")
			return nil
		}
		color.Green("✓ Set %s to %s", args[0], args[1])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
