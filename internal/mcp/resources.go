// ABOUTME: MCP resource implementations for the workout store.
// ABOUTME: Provides fitrack://catalog, fitrack://recent, and fitrack://progress.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tomaszwojcikowski/fitrack3/internal/schedule"
)

func (s *Server) registerResources() {
	// fitrack://catalog - Exercise and mobility flow library
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitrack://catalog",
		Name:        "Exercise Catalog",
		Description: "All exercises and mobility flows in the library",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	// fitrack://recent - Workouts logged in the last 30 days
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitrack://recent",
		Name:        "Recent Workouts",
		Description: "Workouts logged in the last 30 days",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// fitrack://progress - Programs with progress and next scheduled workout
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitrack://progress",
		Name:        "Program Progress",
		Description: "Every program with its current position and next workout",
		MIMEType:    "application/json",
	}, s.handleProgressResource)
}

// Resource handlers

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]any{
		"exercises": s.store.AllExercises(),
		"flows":     s.store.AllMobilityFlows(),
	}
	return marshalResource("fitrack://catalog", result)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -30).Format(time.RFC3339)
	end := now.Format(time.RFC3339)

	logs := s.store.WorkoutLogs(start, end)
	result := map[string]any{
		"since":    start,
		"workouts": logs,
		"count":    len(logs),
	}
	return marshalResource("fitrack://recent", result)
}

func (s *Server) handleProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	programs := s.store.AllPrograms()

	entries := make([]map[string]any, 0, len(programs))
	for _, p := range programs {
		entry := map[string]any{
			"program_id":     p.ID,
			"name":           p.Name,
			"duration_weeks": p.DurationWeeks,
		}

		prog := s.store.GetProgramProgress(p.ID)
		if prog != nil {
			entry["current_week"] = prog.CurrentWeek
			entry["current_day"] = prog.CurrentDay
			if prog.LastWorkoutDate != nil {
				entry["last_workout"] = prog.LastWorkoutDate.Format(time.RFC3339)
			}

			pos := schedule.Position{Week: prog.CurrentWeek, Day: prog.CurrentDay}
			if day, ok := schedule.TemplateAt(p.Schedule, pos); ok {
				next := map[string]any{
					"template_id": day.TemplateID,
					"label":       day.WorkoutLabel,
					"deload":      day.IsDeload,
				}
				if t := s.store.GetTemplate(day.TemplateID); t != nil {
					next["template"] = t.Name
				}
				entry["next_workout"] = next
			}
		}

		entries = append(entries, entry)
	}

	result := map[string]any{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"programs":     entries,
	}
	return marshalResource("fitrack://progress", result)
}

func marshalResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
