// ABOUTME: CLI commands for workout templates.
// ABOUTME: Lists templates and renders both flat and phase-structured content.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tpl"},
	Short:   "Manage workout templates",
	Long: `View and manage workout templates.

A template is either a flat ordered list of exercises or a structured
session whose exercises are grouped into four phases:

  prepare    warmup and activation
  practice   skill work
  perform    the main strength block
  ponder     stretching and cooldown

COMMANDS:

  list     List all templates
  show     Render one template with its exercises
  delete   Remove a template`,
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates := store.AllTemplates()
		if len(templates) == 0 {
			fmt.Println("No templates found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range templates {
			fmt.Printf("%s %s\n", faint.Sprintf("%4d", t.ID), t.Name)
		}
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a template's exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		t := store.GetTemplate(id)
		if t == nil {
			return fmt.Errorf("template not found: %d", id)
		}

		fmt.Printf("Template: %s\n", t.Name)

		content := store.ResolveTemplateContent(id)
		if content == nil {
			return nil
		}

		switch content.Kind {
		case models.TemplateSimple:
			fmt.Println()
			for i, exID := range content.ExerciseIDs {
				name := "Unknown"
				if e := store.GetExercise(exID); e != nil {
					name = e.Name
				}
				fmt.Printf("  %d. %s\n", i+1, name)
			}
		case models.TemplateStructured:
			printPhases(content.Instances)
		}
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		store.DeleteTemplate(id)
		if !store.Status().Available {
			color.Yellow("⚠ Not deleted: storage unavailable")
			return nil
		}
		color.Green("✓ Deleted template %d", id)
		return nil
	},
}

// printPhases renders structured content phase by phase in workout order.
func printPhases(groups models.PhaseGroups) {
	bold := color.New(color.Bold)
	for _, phase := range models.Phases {
		instances := groups.ForPhase(phase)
		if len(instances) == 0 {
			continue
		}
		fmt.Println()
		bold.Println(strings.ToUpper(string(phase)))
		for _, inst := range instances {
			name := "Unknown"
			if e := store.GetExercise(inst.ExerciseID); e != nil {
				name = e.Name
			}
			line := "  "
			if inst.Label != "" {
				line += fmt.Sprintf("[%s] ", inst.Label)
			}
			line += name
			if p := prescription(inst); p != "" {
				line += "  " + p
			}
			fmt.Println(line)
			if inst.Notes != "" {
				color.New(color.Faint).Printf("      %s\n", inst.Notes)
			}
		}
	}
}

// prescription formats the set/rep scheme the way it would appear on a
// coach's sheet.
func prescription(inst models.ExerciseInstance) string {
	var parts []string
	if inst.Sets != "" && inst.Reps != "" {
		parts = append(parts, inst.Sets+" x "+inst.Reps)
	} else if inst.Sets != "" {
		parts = append(parts, inst.Sets+" sets")
	} else if inst.Reps != "" {
		parts = append(parts, inst.Reps+" reps")
	}
	if inst.Time != "" {
		parts = append(parts, inst.Time)
	}
	if inst.Weight != "" {
		parts = append(parts, "@ "+inst.Weight)
	}
	if inst.Rest != "" {
		parts = append(parts, "rest "+inst.Rest)
	}
	return strings.Join(parts, ", ")
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	rootCmd.AddCommand(templateCmd)
}
