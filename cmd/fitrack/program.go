// ABOUTME: CLI commands for training programs and progress.
// ABOUTME: Supports list, show, progress, advance, and reset subcommands.
package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
	"github.com/tomaszwojcikowski/fitrack3/internal/schedule"
)

var programWeek int

var programCmd = &cobra.Command{
	Use:     "program",
	Aliases: []string{"prog"},
	Short:   "Follow training programs",
	Long: `Follow multi-week training programs.

A program schedules workout templates over numbered weeks and days.
Fitrack keeps one progress row per program: your current week and day,
when you started, and when you last trained.

COMMANDS:

  list      List programs
  show      View a program's goals, blocks, and schedule
  progress  Show where you are in a program
  advance   Move to the next scheduled workout
  reset     Go back to week 1, day 1

Advancing past the final workout of the final week marks the program
complete and wraps progress back to week 1, day 1.`,
}

var programListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		programs := store.AllPrograms()
		if len(programs) == 0 {
			fmt.Println("No programs found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range programs {
			fmt.Printf("%s %s %s\n",
				faint.Sprintf("%4d", p.ID),
				padRight(p.Name, 44),
				faint.Sprintf("%d weeks", p.DurationWeeks))
		}
		return nil
	},
}

var programShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show program details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		p := store.GetProgram(id)
		if p == nil {
			return fmt.Errorf("program not found: %d", id)
		}

		bold := color.New(color.Bold)
		bold.Println(p.Name)
		if p.Description != "" {
			fmt.Println(p.Description)
		}
		fmt.Printf("Duration: %d weeks\n", p.DurationWeeks)
		if p.Philosophy != "" {
			fmt.Printf("Philosophy: %s\n", p.Philosophy)
		}
		if len(p.Goals) > 0 {
			fmt.Println("\nGoals:")
			for _, g := range p.Goals {
				fmt.Printf("  - %s\n", g)
			}
		}

		blocks := store.BlocksByProgram(id)
		if len(blocks) > 0 {
			fmt.Println("\nBlocks:")
			for _, b := range blocks {
				fmt.Printf("  %d. %s (weeks %d-%d)\n", b.BlockNumber, b.Name, b.WeekStart, b.WeekEnd)
				if b.Goals != "" {
					color.New(color.Faint).Printf("     %s\n", b.Goals)
				}
			}
		}

		if programWeek > 0 {
			printWeek(p, programWeek)
		}
		return nil
	},
}

var programProgressCmd = &cobra.Command{
	Use:   "progress <id>",
	Short: "Show program progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		p := store.GetProgram(id)
		if p == nil {
			return fmt.Errorf("program not found: %d", id)
		}
		prog := store.GetProgramProgress(id)
		if prog == nil {
			color.Yellow("⚠ Storage unavailable")
			return nil
		}

		fmt.Printf("Program: %s\n", p.Name)
		fmt.Printf("Position: week %d, day %d of %d weeks\n", prog.CurrentWeek, prog.CurrentDay, p.DurationWeeks)
		fmt.Printf("Started: %s\n", prog.StartDate.Format("2006-01-02"))
		if prog.LastWorkoutDate != nil {
			fmt.Printf("Last workout: %s\n", prog.LastWorkoutDate.Format("2006-01-02"))
		}

		if b := store.BlockForWeek(id, prog.CurrentWeek); b != nil {
			fmt.Printf("Block: %d (%s)\n", b.BlockNumber, b.Name)
		}

		pos := schedule.Position{Week: prog.CurrentWeek, Day: prog.CurrentDay}
		if day, ok := schedule.TemplateAt(p.Schedule, pos); ok {
			name := ""
			if t := store.GetTemplate(day.TemplateID); t != nil {
				name = t.Name
			}
			label := ""
			if day.WorkoutLabel != "" {
				label = fmt.Sprintf(" [%s]", day.WorkoutLabel)
			}
			deload := ""
			if day.IsDeload {
				deload = " (deload)"
			}
			fmt.Printf("Next workout:%s %s%s\n", label, name, deload)
		}
		return nil
	},
}

var programAdvanceCmd = &cobra.Command{
	Use:   "advance <id>",
	Short: "Advance to the next workout",
	Long: `Mark the current scheduled workout done and move to the next one.

Also stamps the program's last-workout date. Completing the final
workout of the final week wraps progress back to week 1, day 1.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		p := store.GetProgram(id)
		if p == nil {
			return fmt.Errorf("program not found: %d", id)
		}
		prog := store.GetProgramProgress(id)
		if prog == nil {
			color.Yellow("⚠ Storage unavailable")
			return nil
		}

		cur := schedule.Position{Week: prog.CurrentWeek, Day: prog.CurrentDay}
		next, completed, err := schedule.Advance(p.Schedule, p.DurationWeeks, cur)
		if err != nil {
			return fmt.Errorf("cannot advance: %w", err)
		}

		now := time.Now().UTC()
		updated := store.UpdateProgramProgress(id, models.ProgressUpdate{
			CurrentWeek:     &next.Week,
			CurrentDay:      &next.Day,
			LastWorkoutDate: &now,
		})
		if updated == nil {
			color.Yellow("⚠ Not saved: storage unavailable")
			return nil
		}

		if completed {
			color.Green("✓ Program complete!")
			fmt.Printf("  Progress wrapped to week %d, day %d\n", updated.CurrentWeek, updated.CurrentDay)
			return nil
		}

		color.Green("✓ Advanced to week %d, day %d", updated.CurrentWeek, updated.CurrentDay)
		return nil
	},
}

var programResetCmd = &cobra.Command{
	Use:   "reset <id>",
	Short: "Reset progress to week 1, day 1",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		prog := store.ResetProgramProgress(id)
		if prog == nil {
			color.Yellow("⚠ Not saved: storage unavailable")
			return nil
		}

		color.Green("✓ Progress reset to week 1, day 1")
		return nil
	},
}

// printWeek renders one week of the schedule in day order.
func printWeek(p *models.Program, week int) {
	days := p.Schedule.Days(week)
	if len(days) == 0 {
		fmt.Printf("\nWeek %d: nothing scheduled\n", week)
		return
	}

	nums := make([]int, 0, len(days))
	for d := range days {
		nums = append(nums, d)
	}
	sort.Ints(nums)

	fmt.Printf("\nWeek %d:\n", week)
	for _, d := range nums {
		day := days[d]
		name := ""
		if t := store.GetTemplate(day.TemplateID); t != nil {
			name = t.Name
		}
		label := ""
		if day.WorkoutLabel != "" {
			label = fmt.Sprintf(" [%s]", day.WorkoutLabel)
		}
		deload := ""
		if day.IsDeload {
			deload = " (deload)"
		}
		fmt.Printf("  Day %d:%s %s%s\n", d, label, name, deload)
	}
}

func init() {
	programShowCmd.Flags().IntVarP(&programWeek, "week", "w", 0, "also print the schedule for a week")

	programCmd.AddCommand(programListCmd)
	programCmd.AddCommand(programShowCmd)
	programCmd.AddCommand(programProgressCmd)
	programCmd.AddCommand(programAdvanceCmd)
	programCmd.AddCommand(programResetCmd)
	rootCmd.AddCommand(programCmd)
}
