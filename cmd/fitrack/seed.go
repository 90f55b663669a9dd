// ABOUTME: CLI command to install the seed content on demand.
// ABOUTME: Covers the case where startup program seeding is disabled in config.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomaszwojcikowski/fitrack3/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the starter catalog and bundled program",
	Long: `Install the starter exercise catalog and the bundled 20-week program.

Seeding is idempotent: content that already exists is left alone, so
running this repeatedly never duplicates rows. Normally it happens
automatically on first run; use this command to install the program
after disabling seed_program in the config, or to complete a partial
seed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.DB()
		if db == nil {
			color.Yellow("⚠ Cannot seed: storage unavailable")
			return nil
		}

		if err := seed.Demo(db, logger); err != nil {
			return fmt.Errorf("seeding starter catalog: %w", err)
		}
		id, err := seed.TwentyWeekProgram(db, logger)
		if err != nil {
			return fmt.Errorf("seeding program: %w", err)
		}

		color.Green("✓ Seed content installed")
		fmt.Printf("Program: %s (id %d)\n", seed.ProgramName, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
