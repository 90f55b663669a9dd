// ABOUTME: Root Cobra command for fitrack CLI.
// ABOUTME: Handles config loading, store lifecycle, and startup seeding.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomaszwojcikowski/fitrack3/internal/config"
	"github.com/tomaszwojcikowski/fitrack3/internal/guard"
	"github.com/tomaszwojcikowski/fitrack3/internal/seed"
)

var (
	cfg     *config.Config
	store   *guard.Guard
	logger  *slog.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fitrack",
	Short: "Workout tracking and program progression",
	Long: `Fitrack is a CLI tool for tracking workouts and following training programs.

WHAT IT TRACKS:

  Exercises   A catalog of movements with instructions and coach notes
  Templates   Reusable workouts, flat lists or phase-structured sessions
  Logs        Completed workouts with per-exercise reps and weight
  Programs    Multi-week plans with week/day schedules and progress
  Flows       Guided mobility sequences

QUICK START:

  $ fitrack exercise list                   # Browse the catalog
  $ fitrack template show 1                 # View a workout template
  $ fitrack log add 1 --perf 5:8:0          # Log a workout
  $ fitrack program progress 1              # Where you are in a program
  $ fitrack program advance 1               # Move to the next workout

PROGRAMS:

  A program schedules templates over numbered weeks and days. Fitrack
  tracks your current position and advances it workout by workout,
  wrapping back to week 1 day 1 when the program completes. The bundled
  20-week calisthenics program is installed on first run.

MCP INTEGRATION:

  Run 'fitrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fitrack": { "command": "fitrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Workouts are stored in SQLite at ~/.local/share/fitrack/fitrack.db.
  When storage is unusable the CLI stays functional: reads return empty
  results and writes are dropped with a warning.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store = cfg.OpenStore(logger)
		st := store.Status()
		if !st.Available {
			color.Yellow("⚠ Storage unavailable (%s): commands run with empty data", st.LastKind)
			if st.LastErr != nil {
				logger.Warn("storage probe failed", "err", st.LastErr)
			}
			return nil
		}

		seedOnStartup()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// seedOnStartup installs the starter catalog and, unless disabled in
// config, the bundled 20-week program. Seed failures are warnings; the
// command still runs.
func seedOnStartup() {
	db := store.DB()
	if db == nil {
		return
	}
	if err := seed.Demo(db, logger); err != nil {
		logger.Warn("starter seed failed", "err", err)
	}
	if cfg.GetSeedProgram() {
		if _, err := seed.TwentyWeekProgram(db, logger); err != nil {
			logger.Warn("program seed failed", "err", err)
		}
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
