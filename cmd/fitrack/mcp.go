// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomaszwojcikowski/fitrack3/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your workout data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fitrack": {
        "command": "fitrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_exercise       Add an exercise to the catalog
  list_exercises     List catalog exercises
  get_exercise       Get one exercise by ID
  list_templates     List workout templates
  get_template       Get a template with resolved content
  log_workout        Record a completed workout
  list_logs          List workout logs in a date range
  list_programs      List training programs
  get_progress       Get program progress
  advance_progress   Advance to the next scheduled workout
  reset_progress     Reset progress to week 1, day 1

AVAILABLE RESOURCES:

  fitrack://catalog    Exercise and mobility flow library
  fitrack://recent     Workouts logged in the last 30 days
  fitrack://progress   Programs with progress and next workout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
