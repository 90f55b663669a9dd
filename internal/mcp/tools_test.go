// ABOUTME: Tests for MCP tool handlers over a guarded temp-dir store.
// ABOUTME: Covers log_workout input validation and the happy path.
package mcp

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomaszwojcikowski/fitrack3/internal/guard"
	"github.com/tomaszwojcikowski/fitrack3/internal/models"
	"github.com/tomaszwojcikowski/fitrack3/internal/storage"
)

func setupServer(t *testing.T) *Server {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "fitrack-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "fitrack.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	g := guard.New(func() (*storage.DB, error) {
		return storage.Open(dbPath)
	}, logger)
	t.Cleanup(func() { _ = g.Close() })

	if !g.Check() {
		t.Fatalf("Check failed: %v", g.Status().LastErr)
	}

	s, err := NewServer(g)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return s
}

func TestLogWorkoutRejectsEmptyPerformance(t *testing.T) {
	s := setupServer(t)

	eid := s.store.AddExercise(models.NewExercise("Squat", "Legs", models.TypeCompound, "Barbell"))
	tid := s.store.AddTemplate(&models.WorkoutTemplate{Name: "Leg Day", ExerciseIDs: []int64{eid}})

	_, _, err := s.handleLogWorkout(context.Background(), nil, logWorkoutInput{
		TemplateID: tid,
	})
	if err == nil {
		t.Fatal("log_workout accepted an empty performance list")
	}

	logs := s.store.WorkoutLogs("0000", "9999")
	if len(logs) != 0 {
		t.Errorf("Rejected workout was still stored: %d logs", len(logs))
	}
}

func TestLogWorkoutStoresPerformance(t *testing.T) {
	s := setupServer(t)

	eid := s.store.AddExercise(models.NewExercise("Squat", "Legs", models.TypeCompound, "Barbell"))
	tid := s.store.AddTemplate(&models.WorkoutTemplate{Name: "Leg Day", ExerciseIDs: []int64{eid}})

	_, out, err := s.handleLogWorkout(context.Background(), nil, logWorkoutInput{
		TemplateID: tid,
		Performance: []performanceInput{
			{ExerciseID: eid, Reps: 8, Weight: 60},
			{ExerciseID: eid, Reps: 6, Weight: 65},
		},
	})
	if err != nil {
		t.Fatalf("handleLogWorkout failed: %v", err)
	}
	if out.ID == 0 {
		t.Fatal("handleLogWorkout returned id 0")
	}

	entries := s.store.LogPerformance(out.ID)
	if len(entries) != 2 {
		t.Errorf("LogPerformance = %d entries, want 2", len(entries))
	}
}
