// ABOUTME: CLI commands for workout logs.
// ABOUTME: Supports add with performance entries, list, and show.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

var (
	logDate      string
	logProgramID int64
	logWeek      int
	logDay       int
	logPerf      []string
	logSince     string
	logUntil     string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and review completed workouts",
	Long: `Record completed workouts and review your history.

A log ties a date to the template you followed and the performance you
put up: one entry per exercise with reps and weight. The log row and its
performance entries are written atomically; a failed write leaves
nothing behind.

COMMANDS:

  add    Record a workout
  list   List workouts in a date range
  show   View one log with its performance

PERFORMANCE ENTRIES:

  Pass --perf exercise-id:reps:weight, repeatable:

  $ fitrack log add 1 --perf 5:8:60 --perf 7:12:0`,
}

var logAddCmd = &cobra.Command{
	Use:   "add <template-id>",
	Short: "Record a workout",
	Long: `Record a completed workout.

Examples:
  fitrack log add 1 --perf 5:8:60 --perf 7:12:0
  fitrack log add 1 --date 2026-08-30 --program 1 --week 3 --day 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		templateID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid template id: %s", args[0])
		}

		log := models.NewWorkoutLog(templateID)
		if logDate != "" {
			t, err := time.Parse(time.RFC3339, logDate)
			if err != nil {
				t, err = time.Parse("2006-01-02", logDate)
			}
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", logDate)
			}
			log.WithDate(t)
		}
		if logProgramID != 0 {
			log.WithProgram(logProgramID, logWeek, logDay)
		}

		if len(logPerf) == 0 {
			return fmt.Errorf("a workout needs at least one --perf entry")
		}

		performance := make([]models.PerformanceEntry, 0, len(logPerf))
		for _, p := range logPerf {
			entry, err := parsePerf(p)
			if err != nil {
				return err
			}
			performance = append(performance, entry)
		}

		id := store.AddWorkoutLog(log, performance)
		if id == 0 {
			color.Yellow("⚠ Not saved: storage unavailable")
			return nil
		}

		color.Green("✓ Logged workout")
		fmt.Printf("  ID: %d\n", id)
		fmt.Printf("  Performance entries: %d\n", len(performance))
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workout logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		start := "0000"
		end := "9999"
		if logSince != "" {
			start = logSince
		}
		if logUntil != "" {
			// Bump past the day so an end date is inclusive.
			end = logUntil + "T24"
		}

		logs := store.WorkoutLogs(start, end)
		if len(logs) == 0 {
			fmt.Println("No workouts logged.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			name := "Unknown"
			if t := store.GetTemplate(l.TemplateID); t != nil {
				name = t.Name
			}
			ref := ""
			if l.Program != nil {
				ref = faint.Sprintf("(program %d, W%d D%d)", l.Program.ProgramID, l.Program.Week, l.Program.Day)
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprintf("%4d", l.ID),
				faint.Sprint(displayDate(l.Date)),
				padRight(truncate(name, 32), 32),
				ref)
		}
		return nil
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		l := store.GetWorkoutLog(id)
		if l == nil {
			return fmt.Errorf("log not found: %d", id)
		}

		fmt.Printf("Workout: %d\n", l.ID)
		fmt.Printf("Date: %s\n", displayDate(l.Date))
		if t := store.GetTemplate(l.TemplateID); t != nil {
			fmt.Printf("Template: %s\n", t.Name)
		}
		if l.Program != nil {
			fmt.Printf("Program: %d (week %d, day %d)\n", l.Program.ProgramID, l.Program.Week, l.Program.Day)
		}

		performance := store.LogPerformance(id)
		if len(performance) > 0 {
			fmt.Println("\nPerformance:")
			for _, p := range performance {
				name := "Unknown"
				if e := store.GetExercise(p.ExerciseID); e != nil {
					name = e.Name
				}
				line := fmt.Sprintf("  %s: %d reps", name, p.Reps)
				if p.Weight > 0 {
					line += fmt.Sprintf(" @ %.1f", p.Weight)
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

// parsePerf parses an exercise-id:reps:weight triple; weight is optional.
func parsePerf(s string) (models.PerformanceEntry, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return models.PerformanceEntry{}, fmt.Errorf("invalid --perf %q (use exercise-id:reps:weight)", s)
	}

	exID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return models.PerformanceEntry{}, fmt.Errorf("invalid exercise id in --perf %q", s)
	}
	reps, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.PerformanceEntry{}, fmt.Errorf("invalid reps in --perf %q", s)
	}

	var weight float64
	if len(parts) == 3 {
		weight, err = strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return models.PerformanceEntry{}, fmt.Errorf("invalid weight in --perf %q", s)
		}
	}

	return models.PerformanceEntry{ExerciseID: exID, Reps: reps, Weight: weight}, nil
}

// displayDate trims a stored RFC 3339 date down to a readable form.
func displayDate(date string) string {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t.Format("2006-01-02 15:04")
	}
	return date
}

func init() {
	logAddCmd.Flags().StringVarP(&logDate, "date", "d", "", "completion date (YYYY-MM-DD, default now)")
	logAddCmd.Flags().Int64Var(&logProgramID, "program", 0, "program this workout belongs to")
	logAddCmd.Flags().IntVar(&logWeek, "week", 0, "program week number")
	logAddCmd.Flags().IntVar(&logDay, "day", 0, "program day number")
	logAddCmd.Flags().StringArrayVarP(&logPerf, "perf", "p", nil, "performance entry exercise-id:reps:weight (repeatable)")

	logListCmd.Flags().StringVar(&logSince, "since", "", "inclusive range start (YYYY-MM-DD)")
	logListCmd.Flags().StringVar(&logUntil, "until", "", "inclusive range end (YYYY-MM-DD)")

	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logShowCmd)
	rootCmd.AddCommand(logCmd)
}
