// ABOUTME: Tests for the availability guard's failure policy.
// ABOUTME: Covers fallbacks, reopen-and-retry, and status transitions.
package guard

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
	"github.com/tomaszwojcikowski/fitrack3/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupGuard(t *testing.T) *Guard {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "fitrack-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "fitrack.db")
	g := New(func() (*storage.DB, error) {
		return storage.Open(dbPath)
	}, testLogger())
	t.Cleanup(func() { _ = g.Close() })

	if !g.Check() {
		t.Fatalf("Check failed: %v", g.Status().LastErr)
	}
	return g
}

func TestGuardAvailableOperations(t *testing.T) {
	g := setupGuard(t)

	e := models.NewExercise("Squat", "Legs", models.TypeCompound, "Barbell")
	id := g.AddExercise(e)
	if id == 0 {
		t.Fatal("AddExercise returned 0 on available store")
	}

	got := g.GetExercise(id)
	if got == nil || got.Name != "Squat" {
		t.Errorf("GetExercise = %+v", got)
	}

	all := g.AllExercises()
	if len(all) != 1 {
		t.Errorf("AllExercises = %d, want 1", len(all))
	}

	st := g.Status()
	if !st.Available || st.LastErr != nil {
		t.Errorf("Status = %+v, want available", st)
	}
}

func TestGuardUnavailableFallbacks(t *testing.T) {
	openErr := errors.New("disk on fire")
	g := New(func() (*storage.DB, error) {
		return nil, openErr
	}, testLogger())

	if g.Check() {
		t.Fatal("Check succeeded with failing opener")
	}

	st := g.Status()
	if st.Available {
		t.Error("Status reports available")
	}
	if !errors.Is(st.LastErr, openErr) {
		t.Errorf("LastErr = %v", st.LastErr)
	}

	// Every wrapped operation degrades to its empty value, never panics.
	if id := g.AddExercise(models.NewExercise("Squat", "Legs", models.TypeCompound, "")); id != 0 {
		t.Errorf("AddExercise = %d, want 0", id)
	}
	if got := g.GetExercise(1); got != nil {
		t.Errorf("GetExercise = %+v, want nil", got)
	}
	if all := g.AllExercises(); all == nil || len(all) != 0 {
		t.Errorf("AllExercises = %#v, want empty non-nil slice", all)
	}
	if logs := g.WorkoutLogs("", ""); len(logs) != 0 {
		t.Errorf("WorkoutLogs = %d entries", len(logs))
	}
	if prog := g.GetProgramProgress(1); prog != nil {
		t.Errorf("GetProgramProgress = %+v, want nil", prog)
	}

	// Grouped reads still hand back all four buckets.
	groups := g.InstancesByPhase(1)
	if groups.Prepare == nil || groups.Practice == nil || groups.Perform == nil || groups.Ponder == nil {
		t.Errorf("InstancesByPhase buckets not initialized: %+v", groups)
	}

	if g.DB() != nil {
		t.Error("DB() should be nil while unavailable")
	}
}

func TestGuardReopensClosedHandle(t *testing.T) {
	g := setupGuard(t)

	e := models.NewExercise("Squat", "Legs", models.TypeCompound, "Barbell")
	if id := g.AddExercise(e); id == 0 {
		t.Fatal("AddExercise failed")
	}

	// Close the handle out from under the guard. The next operation must
	// reopen and retry transparently.
	if err := g.DB().Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	all := g.AllExercises()
	if len(all) != 1 {
		t.Errorf("AllExercises after reopen = %d, want 1", len(all))
	}

	st := g.Status()
	if !st.Available {
		t.Errorf("Expected available after reopen, status %+v", st)
	}
}

func TestGuardCheckRecoversAfterFailure(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "fitrack.db")

	fail := true
	g := New(func() (*storage.DB, error) {
		if fail {
			return nil, errors.New("not yet")
		}
		return storage.Open(dbPath)
	}, testLogger())
	defer g.Close()

	if g.Check() {
		t.Fatal("Check succeeded while opener failing")
	}

	fail = false
	if !g.Check() {
		t.Fatalf("Check failed after opener recovered: %v", g.Status().LastErr)
	}
	if !g.Status().Available {
		t.Error("Status not available after recovery")
	}
}

func TestGuardSettings(t *testing.T) {
	g := setupGuard(t)

	s := models.DefaultSettings()
	s.WeightUnit = models.UnitKg
	g.SaveUserSettings(s)

	got := g.GetUserSettings(models.DefaultSettingsKey)
	if got == nil || got.WeightUnit != models.UnitKg {
		t.Errorf("GetUserSettings = %+v", got)
	}
}
