// ABOUTME: MCP tool implementations for the workout store.
// ABOUTME: Provides catalog, logging, and program progress operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
	"github.com/tomaszwojcikowski/fitrack3/internal/schedule"
)

func (s *Server) registerTools() {
	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to the catalog",
	}, s.handleAddExercise)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List catalog exercises, optionally filtered by muscle group",
	}, s.handleListExercises)

	// get_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_exercise",
		Description: "Get one exercise by ID",
	}, s.handleGetExercise)

	// list_templates
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_templates",
		Description: "List workout templates",
	}, s.handleListTemplates)

	// get_template
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_template",
		Description: "Get a template with its resolved exercise content",
	}, s.handleGetTemplate)

	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Record a completed workout with per-exercise performance",
	}, s.handleLogWorkout)

	// list_logs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_logs",
		Description: "List workout logs in a date range",
	}, s.handleListLogs)

	// list_programs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_programs",
		Description: "List training programs",
	}, s.handleListPrograms)

	// get_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Get current week/day progress for a program",
	}, s.handleGetProgress)

	// advance_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "advance_progress",
		Description: "Advance a program to the next scheduled workout",
	}, s.handleAdvanceProgress)

	// reset_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_progress",
		Description: "Reset a program's progress to week 1, day 1",
	}, s.handleResetProgress)
}

// Tool input/output types

type addExerciseInput struct {
	Name        string `json:"name" jsonschema:"Exercise name"`
	MuscleGroup string `json:"muscle_group" jsonschema:"Primary muscle group (Back, Chest, Legs, Core, etc.)"`
	Type        string `json:"type" jsonschema:"Exercise type (compound, isolation, advanced, skill, mobility, activation, stretch)"`
	Equipment   string `json:"equipment,omitempty" jsonschema:"Required equipment"`
}

type exerciseOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type listExercisesInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (case-insensitive)"`
}

type getByIDInput struct {
	ID int64 `json:"id" jsonschema:"Row ID"`
}

type performanceInput struct {
	ExerciseID int64   `json:"exercise_id" jsonschema:"Catalog exercise ID"`
	Reps       int     `json:"reps,omitempty" jsonschema:"Reps completed"`
	Weight     float64 `json:"weight,omitempty" jsonschema:"Weight used"`
}

type logWorkoutInput struct {
	TemplateID  int64              `json:"template_id" jsonschema:"Template the workout followed"`
	Date        string             `json:"date,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	ProgramID   int64              `json:"program_id,omitempty" jsonschema:"Program this workout belongs to"`
	Week        int                `json:"week,omitempty" jsonschema:"Program week number"`
	Day         int                `json:"day,omitempty" jsonschema:"Program day number"`
	Performance []performanceInput `json:"performance" jsonschema:"Per-exercise results"`
}

type logOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type listLogsInput struct {
	StartDate string `json:"start_date,omitempty" jsonschema:"Inclusive range start (ISO 8601)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"Inclusive range end (ISO 8601)"`
}

type progressInput struct {
	ProgramID int64 `json:"program_id" jsonschema:"Program ID"`
}

type progressOutput struct {
	ProgramID   int64  `json:"program_id"`
	CurrentWeek int    `json:"current_week"`
	CurrentDay  int    `json:"current_day"`
	Completed   bool   `json:"completed,omitempty"`
	Message     string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	typ, ok := models.ParseExerciseType(input.Type)
	if !ok {
		return nil, exerciseOutput{}, fmt.Errorf("unknown exercise type: %s", input.Type)
	}

	e := models.NewExercise(input.Name, input.MuscleGroup, typ, input.Equipment)
	id := s.store.AddExercise(e)
	if id == 0 {
		return nil, exerciseOutput{}, fmt.Errorf("storage unavailable")
	}

	return nil, exerciseOutput{
		ID:      id,
		Name:    e.Name,
		Message: fmt.Sprintf("Added %s (%s, ID: %d)", e.Name, e.MuscleGroup, id),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	var exercises []models.Exercise
	if input.MuscleGroup != "" {
		exercises = s.store.ExercisesByMuscle(input.MuscleGroup)
	} else {
		exercises = s.store.AllExercises()
	}

	if len(exercises) == 0 {
		return nil, map[string]any{"message": "No exercises found."}, nil
	}
	return nil, exercises, nil
}

func (s *Server) handleGetExercise(ctx context.Context, req *mcp.CallToolRequest, input getByIDInput) (*mcp.CallToolResult, any, error) {
	e := s.store.GetExercise(input.ID)
	if e == nil {
		return nil, nil, fmt.Errorf("exercise not found: %d", input.ID)
	}
	return nil, e, nil
}

func (s *Server) handleListTemplates(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	templates := s.store.AllTemplates()
	if len(templates) == 0 {
		return nil, map[string]any{"message": "No templates found."}, nil
	}
	return nil, templates, nil
}

func (s *Server) handleGetTemplate(ctx context.Context, req *mcp.CallToolRequest, input getByIDInput) (*mcp.CallToolResult, any, error) {
	t := s.store.GetTemplate(input.ID)
	if t == nil {
		return nil, nil, fmt.Errorf("template not found: %d", input.ID)
	}

	content := s.store.ResolveTemplateContent(input.ID)
	result := map[string]any{
		"id":   t.ID,
		"name": t.Name,
	}
	if content != nil {
		switch content.Kind {
		case models.TemplateSimple:
			result["exercise_ids"] = content.ExerciseIDs
		case models.TemplateStructured:
			result["phases"] = content.Instances
		}
	}
	return nil, result, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logOutput, error) {
	log := models.NewWorkoutLog(input.TemplateID)

	if input.Date != "" {
		t, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			t, err = time.Parse("2006-01-02", input.Date)
		}
		if err != nil {
			return nil, logOutput{}, fmt.Errorf("unparseable date: %s", input.Date)
		}
		log.WithDate(t)
	}

	if input.ProgramID != 0 {
		log.WithProgram(input.ProgramID, input.Week, input.Day)
	}

	if len(input.Performance) == 0 {
		return nil, logOutput{}, fmt.Errorf("a workout needs at least one performance entry")
	}

	performance := make([]models.PerformanceEntry, 0, len(input.Performance))
	for _, p := range input.Performance {
		performance = append(performance, models.PerformanceEntry{
			ExerciseID: p.ExerciseID,
			Reps:       p.Reps,
			Weight:     p.Weight,
		})
	}

	id := s.store.AddWorkoutLog(log, performance)
	if id == 0 {
		return nil, logOutput{}, fmt.Errorf("storage unavailable")
	}

	return nil, logOutput{
		ID:      id,
		Message: fmt.Sprintf("Logged workout (ID: %d, %d performance entries)", id, len(performance)),
	}, nil
}

func (s *Server) handleListLogs(ctx context.Context, req *mcp.CallToolRequest, input listLogsInput) (*mcp.CallToolResult, any, error) {
	start := input.StartDate
	end := input.EndDate
	if start == "" {
		start = "0000"
	}
	if end == "" {
		end = "9999"
	}

	logs := s.store.WorkoutLogs(start, end)
	if len(logs) == 0 {
		return nil, map[string]any{"message": "No workouts logged in that range."}, nil
	}
	return nil, logs, nil
}

func (s *Server) handleListPrograms(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	programs := s.store.AllPrograms()
	if len(programs) == 0 {
		return nil, map[string]any{"message": "No programs found."}, nil
	}
	return nil, programs, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input progressInput) (*mcp.CallToolResult, any, error) {
	prog := s.store.GetProgramProgress(input.ProgramID)
	if prog == nil {
		return nil, nil, fmt.Errorf("program not found: %d", input.ProgramID)
	}
	return nil, prog, nil
}

func (s *Server) handleAdvanceProgress(ctx context.Context, req *mcp.CallToolRequest, input progressInput) (*mcp.CallToolResult, progressOutput, error) {
	program := s.store.GetProgram(input.ProgramID)
	if program == nil {
		return nil, progressOutput{}, fmt.Errorf("program not found: %d", input.ProgramID)
	}
	prog := s.store.GetProgramProgress(input.ProgramID)
	if prog == nil {
		return nil, progressOutput{}, fmt.Errorf("storage unavailable")
	}

	cur := schedule.Position{Week: prog.CurrentWeek, Day: prog.CurrentDay}
	next, completed, err := schedule.Advance(program.Schedule, program.DurationWeeks, cur)
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("cannot advance: %w", err)
	}

	now := time.Now().UTC()
	updated := s.store.UpdateProgramProgress(input.ProgramID, models.ProgressUpdate{
		CurrentWeek:     &next.Week,
		CurrentDay:      &next.Day,
		LastWorkoutDate: &now,
	})
	if updated == nil {
		return nil, progressOutput{}, fmt.Errorf("storage unavailable")
	}

	msg := fmt.Sprintf("Advanced to week %d, day %d", next.Week, next.Day)
	if completed {
		msg = fmt.Sprintf("Program complete! Progress wrapped to week %d, day %d", next.Week, next.Day)
	}
	return nil, progressOutput{
		ProgramID:   input.ProgramID,
		CurrentWeek: updated.CurrentWeek,
		CurrentDay:  updated.CurrentDay,
		Completed:   completed,
		Message:     msg,
	}, nil
}

func (s *Server) handleResetProgress(ctx context.Context, req *mcp.CallToolRequest, input progressInput) (*mcp.CallToolResult, progressOutput, error) {
	prog := s.store.ResetProgramProgress(input.ProgramID)
	if prog == nil {
		return nil, progressOutput{}, fmt.Errorf("storage unavailable")
	}

	return nil, progressOutput{
		ProgramID:   input.ProgramID,
		CurrentWeek: prog.CurrentWeek,
		CurrentDay:  prog.CurrentDay,
		Message:     "Progress reset to week 1, day 1",
	}, nil
}
