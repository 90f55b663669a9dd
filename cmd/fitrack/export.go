// ABOUTME: CLI command for exporting workout data.
// ABOUTME: Supports JSON and YAML export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export workout data",
	Long: `Export the full database in a portable format.

FORMATS:

  json   Full JSON export (suitable for backup)
  yaml   YAML export (human-readable)

The export carries every table: exercises, templates and their
instances, logs with performance, programs, progress, blocks, flows,
and settings, stamped with the schema version and a unique export id.

EXAMPLES:

  fitrack export json                  # Export all data as JSON
  fitrack export json -o backup.json   # Save to file
  fitrack export yaml                  # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		all := store.GetAllData()
		if all == nil {
			color.Yellow("⚠ Storage unavailable, nothing to export")
			return nil
		}

		var data []byte
		var err error
		switch args[0] {
		case "json":
			data, err = all.MarshalIndentJSON()
		case "yaml":
			data, err = all.MarshalYAMLBytes()
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}

		fmt.Println(string(data))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
