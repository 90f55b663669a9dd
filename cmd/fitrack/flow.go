// ABOUTME: CLI commands for the mobility flow library.
// ABOUTME: Supports list and show subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Browse mobility flows",
	Long: `Browse the library of guided mobility sequences.

Flows are used on active recovery days. Each names its movement
sequence and a target duration.`,
}

var flowListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List mobility flows",
	RunE: func(cmd *cobra.Command, args []string) error {
		flows := store.AllMobilityFlows()
		if len(flows) == 0 {
			fmt.Println("No mobility flows found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, f := range flows {
			fmt.Printf("%s %s %s\n",
				faint.Sprintf("%4d", f.ID),
				padRight(f.Name, 32),
				faint.Sprint(f.Duration))
		}
		return nil
	},
}

var flowShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a mobility flow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := store.MobilityFlowByName(args[0])
		if f == nil {
			return fmt.Errorf("flow not found: %s", args[0])
		}

		fmt.Printf("Flow: %s\n", f.Name)
		fmt.Printf("Duration: %s\n", f.Duration)
		fmt.Printf("Sequence: %s\n", f.Description)
		return nil
	},
}

func init() {
	flowCmd.AddCommand(flowListCmd)
	flowCmd.AddCommand(flowShowCmd)
	rootCmd.AddCommand(flowCmd)
}
