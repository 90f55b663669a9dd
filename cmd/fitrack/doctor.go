// ABOUTME: CLI command for storage diagnostics.
// ABOUTME: Reports availability, schema version, disk usage, and row counts.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the storage environment",
	Long: `Inspect the storage environment and report what fitrack can see.

The report covers availability, the last recorded failure, the database
file and schema version, disk usage on the data volume, and per-table
row counts. Every probe is bounded; a wedged database cannot hang the
report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		diag := store.Diagnostics(cmd.Context())

		if doctorJSON {
			data, err := json.MarshalIndent(diag, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if diag.Available {
			color.Green("✓ Storage available")
		} else {
			color.Red("✗ Storage unavailable (%s)", diag.LastFailureKind)
			if diag.LastError != "" {
				fmt.Printf("  Last error: %s\n", diag.LastError)
			}
		}

		fmt.Printf("Database: %s\n", diag.DBPath)
		if diag.DBSizeBytes > 0 {
			fmt.Printf("Size: %s\n", formatBytes(uint64(diag.DBSizeBytes)))
		}
		if diag.SchemaVersion > 0 {
			fmt.Printf("Schema version: %d\n", diag.SchemaVersion)
		}
		fmt.Printf("Data dir writable: %v\n", diag.DataDirWritable)

		if diag.DiskError != "" {
			fmt.Printf("Disk: %s\n", diag.DiskError)
		} else if diag.DiskTotalBytes > 0 {
			fmt.Printf("Disk: %s free of %s (%.1f%% used)\n",
				formatBytes(diag.DiskFreeBytes),
				formatBytes(diag.DiskTotalBytes),
				diag.DiskUsedPercent)
		}

		if len(diag.Tables) > 0 {
			fmt.Println("\nTables:")
			for _, t := range diag.Tables {
				if t.Err != "" {
					fmt.Printf("  %s %s\n", padRight(t.Table, 20), t.Err)
					continue
				}
				fmt.Printf("  %s %d\n", padRight(t.Table, 20), t.Count)
			}
		}
		return nil
	},
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for u := n / unit; u >= unit; u /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(doctorCmd)
}
