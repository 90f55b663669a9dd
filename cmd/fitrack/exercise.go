// ABOUTME: CLI commands for managing the exercise catalog.
// ABOUTME: Supports add, list, show, and delete subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

var (
	exerciseMuscle       string
	exerciseEquipment    string
	exerciseInstructions string
	exerciseCoachNotes   string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage the exercise catalog",
	Long: `Manage the library of exercises that templates and logs reference.

Each exercise has a name, a primary muscle group, a type, and the
equipment it needs. Instructions and coach notes are optional.

TYPES:

  compound, isolation, advanced, skill, mobility, activation, stretch

COMMANDS:

  add      Add an exercise to the catalog
  list     List exercises, optionally by muscle group
  show     View one exercise in full
  delete   Remove an exercise from the catalog`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name> <muscle-group> <type>",
	Short: "Add an exercise",
	Long: `Add an exercise to the catalog.

Examples:
  fitrack exercise add "Front Squat" Legs compound --equipment Barbell
  fitrack exercise add "Couch Stretch" Legs stretch --notes "After split squats"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, ok := models.ParseExerciseType(args[2])
		if !ok {
			return fmt.Errorf("unknown exercise type: %s", args[2])
		}

		e := models.NewExercise(args[0], args[1], typ, exerciseEquipment)
		if exerciseInstructions != "" {
			e.WithInstructions(exerciseInstructions)
		}
		if exerciseCoachNotes != "" {
			e.WithCoachNotes(exerciseCoachNotes)
		}

		id := store.AddExercise(e)
		if id == 0 {
			color.Yellow("⚠ Not saved: storage unavailable")
			return nil
		}

		color.Green("✓ Added %s", e.Name)
		fmt.Printf("  ID: %d\n", id)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		var exercises []models.Exercise
		if exerciseMuscle != "" {
			exercises = store.ExercisesByMuscle(exerciseMuscle)
		} else {
			exercises = store.AllExercises()
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			fmt.Printf("%s %s %s %s\n",
				faint.Sprintf("%4d", e.ID),
				padRight(e.Name, 36),
				padRight(e.MuscleGroup, 10),
				faint.Sprint(string(e.Type)))
		}
		return nil
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show exercise details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		e := store.GetExercise(id)
		if e == nil {
			return fmt.Errorf("exercise not found: %d", id)
		}

		fmt.Printf("Exercise: %s\n", e.Name)
		fmt.Printf("Muscle group: %s\n", e.MuscleGroup)
		fmt.Printf("Type: %s\n", e.Type)
		if e.Equipment != "" {
			fmt.Printf("Equipment: %s\n", e.Equipment)
		}
		if e.Instructions != "" {
			fmt.Printf("Instructions: %s\n", e.Instructions)
		}
		if e.CoachNotes != "" {
			fmt.Printf("Coach notes: %s\n", e.CoachNotes)
		}
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		store.DeleteExercise(id)
		if !store.Status().Available {
			color.Yellow("⚠ Not deleted: storage unavailable")
			return nil
		}
		color.Green("✓ Deleted exercise %d", id)
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	for len(s) < length {
		s += " "
	}
	return s
}

func init() {
	exerciseAddCmd.Flags().StringVarP(&exerciseEquipment, "equipment", "e", "", "required equipment")
	exerciseAddCmd.Flags().StringVarP(&exerciseInstructions, "instructions", "i", "", "how-to text")
	exerciseAddCmd.Flags().StringVar(&exerciseCoachNotes, "notes", "", "coach notes")

	exerciseListCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "filter by muscle group")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
