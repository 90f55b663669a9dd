// ABOUTME: Tests for the SQLite data access layer.
// ABOUTME: Verifies CRUD, atomic log writes, progress lifecycle, and migrations.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "fitrack-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "fitrack.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	return db
}

func addTestExercise(t *testing.T, db *DB, name, muscle string) *models.Exercise {
	t.Helper()
	e := models.NewExercise(name, muscle, models.TypeCompound, "Barbell")
	if _, err := db.AddExercise(e); err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	return e
}

func TestSchemaVersionAndReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "fitrack.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	v, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if v != latestSchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", v, latestSchemaVersion)
	}

	e := addTestExercise(t, db, "Squat", "Legs")
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopening re-runs migrate; applied steps must be skipped and data
	// must survive.
	db2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer db2.Close()

	got, err := db2.GetExercise(e.ID)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if got == nil || got.Name != "Squat" {
		t.Errorf("Exercise did not survive reopen: %+v", got)
	}
}

func TestClosedDB(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	_, err := db.AllExercises()
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
	if Classify(err) != FailureClosed {
		t.Errorf("Classify = %v, want FailureClosed", Classify(err))
	}
}

func TestForeignKeysOnEveryConnection(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := addTestExercise(t, db, "Dips", "Chest")
	tid, err := db.AddTemplate(&models.WorkoutTemplate{Name: "T", ExerciseIDs: []int64{e.ID}})
	if err != nil {
		t.Fatalf("AddTemplate failed: %v", err)
	}

	ctx := context.Background()

	// Checking out the first connection forces the next statement onto a
	// freshly opened second one. Both must have foreign keys enabled, or
	// cascades fire only when a statement happens to land on the first.
	c1, err := db.db.Conn(ctx)
	if err != nil {
		t.Fatalf("first conn: %v", err)
	}
	defer c1.Close()
	c2, err := db.db.Conn(ctx)
	if err != nil {
		t.Fatalf("second conn: %v", err)
	}
	defer c2.Close()

	for i, c := range []*sql.Conn{c1, c2} {
		var fk int
		if err := c.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk); err != nil {
			t.Fatalf("conn %d: read foreign_keys: %v", i+1, err)
		}
		if fk != 1 {
			t.Errorf("conn %d: foreign_keys = %d, want 1", i+1, fk)
		}
	}

	// A delete issued on the second connection must still cascade.
	if _, err := c2.ExecContext(ctx, `DELETE FROM workout_templates WHERE id = ?`, tid); err != nil {
		t.Fatalf("delete template: %v", err)
	}
	var orphans int
	if err := c2.QueryRowContext(ctx, `SELECT COUNT(*) FROM template_exercises WHERE template_id = ?`, tid).Scan(&orphans); err != nil {
		t.Fatalf("count join rows: %v", err)
	}
	if orphans != 0 {
		t.Errorf("Expected cascade on second connection, found %d orphan rows", orphans)
	}
}

func TestExerciseCRUD(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := models.NewExercise("Pull-ups", "Back", models.TypeCompound, "Bodyweight").
		WithInstructions("Dead hang to chin over bar").
		WithCoachNotes("No kipping")

	id, err := db.AddExercise(e)
	if err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	if id == 0 || e.ID != id {
		t.Errorf("Expected assigned id, got %d (e.ID %d)", id, e.ID)
	}

	got, err := db.GetExercise(id)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if got.Name != "Pull-ups" || got.Instructions != "Dead hang to chin over bar" || got.CoachNotes != "No kipping" {
		t.Errorf("Exercise mismatch: %+v", got)
	}

	got.Equipment = "Rings"
	if err := db.UpdateExercise(got); err != nil {
		t.Fatalf("UpdateExercise failed: %v", err)
	}
	updated, err := db.GetExercise(id)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if updated.Equipment != "Rings" {
		t.Errorf("Equipment = %q, want Rings", updated.Equipment)
	}

	if err := db.DeleteExercise(id); err != nil {
		t.Fatalf("DeleteExercise failed: %v", err)
	}
	gone, err := db.GetExercise(id)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if gone != nil {
		t.Errorf("Expected nil after delete, got %+v", gone)
	}
}

func TestExercisesByMuscleCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	addTestExercise(t, db, "Squat", "Legs")
	addTestExercise(t, db, "Lunges", "Legs")
	addTestExercise(t, db, "Bench Press", "Chest")

	legs, err := db.ExercisesByMuscle("LEGS")
	if err != nil {
		t.Fatalf("ExercisesByMuscle failed: %v", err)
	}
	if len(legs) != 2 {
		t.Errorf("Expected 2 leg exercises, got %d", len(legs))
	}

	// Empty filter returns everything.
	all, err := db.ExercisesByMuscle("")
	if err != nil {
		t.Fatalf("ExercisesByMuscle failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 exercises, got %d", len(all))
	}
}

func TestExerciseByName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := addTestExercise(t, db, "Deadlift", "Back")

	got, err := db.ExerciseByName("Deadlift")
	if err != nil {
		t.Fatalf("ExerciseByName failed: %v", err)
	}
	if got == nil || got.ID != e.ID {
		t.Errorf("ExerciseByName mismatch: %+v", got)
	}

	missing, err := db.ExerciseByName("Yoga")
	if err != nil {
		t.Fatalf("ExerciseByName failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing name, got %+v", missing)
	}
}

func TestSimpleTemplateRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e1 := addTestExercise(t, db, "Squat", "Legs")
	e2 := addTestExercise(t, db, "Bench Press", "Chest")

	tpl := &models.WorkoutTemplate{Name: "Day A", ExerciseIDs: []int64{e2.ID, e1.ID}}
	id, err := db.AddTemplate(tpl)
	if err != nil {
		t.Fatalf("AddTemplate failed: %v", err)
	}

	got, err := db.GetTemplate(id)
	if err != nil {
		t.Fatalf("GetTemplate failed: %v", err)
	}
	if got.Name != "Day A" {
		t.Errorf("Name = %q", got.Name)
	}
	if len(got.ExerciseIDs) != 2 || got.ExerciseIDs[0] != e2.ID || got.ExerciseIDs[1] != e1.ID {
		t.Errorf("Exercise order not preserved: %v", got.ExerciseIDs)
	}

	content, err := db.ResolveTemplateContent(id)
	if err != nil {
		t.Fatalf("ResolveTemplateContent failed: %v", err)
	}
	if content.Kind != models.TemplateSimple {
		t.Errorf("Kind = %v, want TemplateSimple", content.Kind)
	}

	// Update replaces the list.
	got.ExerciseIDs = []int64{e1.ID}
	if err := db.UpdateTemplate(got); err != nil {
		t.Fatalf("UpdateTemplate failed: %v", err)
	}
	updated, err := db.GetTemplate(id)
	if err != nil {
		t.Fatalf("GetTemplate failed: %v", err)
	}
	if len(updated.ExerciseIDs) != 1 || updated.ExerciseIDs[0] != e1.ID {
		t.Errorf("Update did not replace list: %v", updated.ExerciseIDs)
	}
}

func TestStructuredTemplateResolution(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := addTestExercise(t, db, "Pull-ups", "Back")
	tid, err := db.AddTemplate(&models.WorkoutTemplate{Name: "Structured"})
	if err != nil {
		t.Fatalf("AddTemplate failed: %v", err)
	}

	for _, phase := range []models.Phase{models.PhasePrepare, models.PhasePerform, models.PhasePerform} {
		inst := models.NewExerciseInstance(tid, e.ID, phase)
		if _, err := db.AddExerciseInstance(inst); err != nil {
			t.Fatalf("AddExerciseInstance failed: %v", err)
		}
	}

	content, err := db.ResolveTemplateContent(tid)
	if err != nil {
		t.Fatalf("ResolveTemplateContent failed: %v", err)
	}
	if content.Kind != models.TemplateStructured {
		t.Fatalf("Kind = %v, want TemplateStructured", content.Kind)
	}
	if len(content.Instances.Prepare) != 1 || len(content.Instances.Perform) != 2 {
		t.Errorf("Phase buckets wrong: prepare=%d perform=%d",
			len(content.Instances.Prepare), len(content.Instances.Perform))
	}
}

func TestInstancesByPhaseDropsUnknown(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := addTestExercise(t, db, "Pull-ups", "Back")
	tid, err := db.AddTemplate(&models.WorkoutTemplate{Name: "T"})
	if err != nil {
		t.Fatalf("AddTemplate failed: %v", err)
	}

	good := models.NewExerciseInstance(tid, e.ID, models.PhasePonder)
	if _, err := db.AddExerciseInstance(good); err != nil {
		t.Fatalf("AddExerciseInstance failed: %v", err)
	}
	bad := models.NewExerciseInstance(tid, e.ID, "cooldown")
	if _, err := db.AddExerciseInstance(bad); err != nil {
		t.Fatalf("AddExerciseInstance failed: %v", err)
	}

	// The flat read keeps the bad row visible.
	flat, err := db.InstancesByTemplate(tid)
	if err != nil {
		t.Fatalf("InstancesByTemplate failed: %v", err)
	}
	if len(flat) != 2 {
		t.Errorf("Expected 2 flat instances, got %d", len(flat))
	}

	// The grouped read drops it.
	groups, err := db.InstancesByPhase(tid)
	if err != nil {
		t.Fatalf("InstancesByPhase failed: %v", err)
	}
	if groups.Total() != 1 {
		t.Errorf("Expected unknown phase dropped, Total = %d", groups.Total())
	}
}

func TestDeleteTemplateCascades(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := addTestExercise(t, db, "Dips", "Chest")
	tid, err := db.AddTemplate(&models.WorkoutTemplate{Name: "T", ExerciseIDs: []int64{e.ID}})
	if err != nil {
		t.Fatalf("AddTemplate failed: %v", err)
	}
	inst := models.NewExerciseInstance(tid, e.ID, models.PhasePerform)
	if _, err := db.AddExerciseInstance(inst); err != nil {
		t.Fatalf("AddExerciseInstance failed: %v", err)
	}

	if err := db.DeleteTemplate(tid); err != nil {
		t.Fatalf("DeleteTemplate failed: %v", err)
	}

	instances, err := db.InstancesByTemplate(tid)
	if err != nil {
		t.Fatalf("InstancesByTemplate failed: %v", err)
	}
	if len(instances) != 0 {
		t.Errorf("Expected instances cascaded, got %d", len(instances))
	}
}

func TestAddWorkoutLogAtomic(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := addTestExercise(t, db, "Squat", "Legs")
	tid, err := db.AddTemplate(&models.WorkoutTemplate{Name: "T", ExerciseIDs: []int64{e.ID}})
	if err != nil {
		t.Fatalf("AddTemplate failed: %v", err)
	}

	log := models.NewWorkoutLog(tid)
	performance := []models.PerformanceEntry{
		{ExerciseID: e.ID, Reps: 5, Weight: 100},
		{ExerciseID: e.ID, Reps: 5, Weight: 102.5},
	}

	id, err := db.AddWorkoutLog(log, performance)
	if err != nil {
		t.Fatalf("AddWorkoutLog failed: %v", err)
	}
	if performance[0].LogID != id || performance[1].LogID != id {
		t.Errorf("Performance entries not bound to log: %+v", performance)
	}

	entries, err := db.LogPerformance(id)
	if err != nil {
		t.Fatalf("LogPerformance failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Weight != 102.5 {
		t.Errorf("Weight = %v, want 102.5", entries[1].Weight)
	}

	// Deleting the log removes its performance with it.
	if _, err := db.db.Exec(`DELETE FROM workout_logs WHERE id = ?`, id); err != nil {
		t.Fatalf("delete log: %v", err)
	}
	orphans, err := db.LogPerformance(id)
	if err != nil {
		t.Fatalf("LogPerformance failed: %v", err)
	}
	if len(orphans) != 0 {
		t.Errorf("Expected performance cascaded, got %d rows", len(orphans))
	}
}

func TestAddWorkoutLogRollsBackOnBadEntry(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := addTestExercise(t, db, "Squat", "Legs")
	tid, err := db.AddTemplate(&models.WorkoutTemplate{Name: "T", ExerciseIDs: []int64{e.ID}})
	if err != nil {
		t.Fatalf("AddTemplate failed: %v", err)
	}

	// Second entry violates the reps constraint; the whole write must
	// roll back, including the log row and the first entry.
	log := models.NewWorkoutLog(tid)
	performance := []models.PerformanceEntry{
		{ExerciseID: e.ID, Reps: 5, Weight: 100},
		{ExerciseID: e.ID, Reps: 0, Weight: 100},
	}

	if _, err := db.AddWorkoutLog(log, performance); err == nil {
		t.Fatal("AddWorkoutLog accepted an out-of-range entry")
	}

	ctx := context.Background()
	for _, table := range []string{"workout_logs", "log_performance"} {
		n, err := db.CountTable(ctx, table)
		if err != nil {
			t.Fatalf("CountTable %s failed: %v", table, err)
		}
		if n != 0 {
			t.Errorf("%s has %d rows after failed write, want 0", table, n)
		}
	}
}

func TestWorkoutLogProgramRef(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	log := models.NewWorkoutLog(1).WithProgram(7, 3, 2)
	id, err := db.AddWorkoutLog(log, nil)
	if err != nil {
		t.Fatalf("AddWorkoutLog failed: %v", err)
	}

	got, err := db.GetWorkoutLog(id)
	if err != nil {
		t.Fatalf("GetWorkoutLog failed: %v", err)
	}
	if got.Program == nil {
		t.Fatal("Expected program ref")
	}
	if got.Program.ProgramID != 7 || got.Program.Week != 3 || got.Program.Day != 2 {
		t.Errorf("Program ref mismatch: %+v", got.Program)
	}

	// Ad-hoc logs carry no ref.
	adhoc := models.NewWorkoutLog(1)
	adhocID, err := db.AddWorkoutLog(adhoc, nil)
	if err != nil {
		t.Fatalf("AddWorkoutLog failed: %v", err)
	}
	gotAdhoc, err := db.GetWorkoutLog(adhocID)
	if err != nil {
		t.Fatalf("GetWorkoutLog failed: %v", err)
	}
	if gotAdhoc.Program != nil {
		t.Errorf("Expected nil program ref, got %+v", gotAdhoc.Program)
	}
}

func TestWorkoutLogsDateRange(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	dates := []string{"2026-01-05", "2026-02-10", "2026-03-15"}
	for _, d := range dates {
		day, _ := time.Parse("2006-01-02", d)
		log := models.NewWorkoutLog(1).WithDate(day)
		if _, err := db.AddWorkoutLog(log, nil); err != nil {
			t.Fatalf("AddWorkoutLog failed: %v", err)
		}
	}

	logs, err := db.WorkoutLogs("2026-01-01", "2026-02-28")
	if err != nil {
		t.Fatalf("WorkoutLogs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Errorf("Expected 2 logs in range, got %d", len(logs))
	}

	all, err := db.WorkoutLogs("0000", "9999")
	if err != nil {
		t.Fatalf("WorkoutLogs failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 logs total, got %d", len(all))
	}
	// Ascending by date.
	if len(all) == 3 && all[0].Date > all[2].Date {
		t.Errorf("Logs not ordered by date: %s > %s", all[0].Date, all[2].Date)
	}
}

func addTestProgram(t *testing.T, db *DB) int64 {
	t.Helper()
	p := &models.Program{
		Name:          "Test Program",
		DurationWeeks: 2,
		Goals:         []string{"get strong"},
		Schedule: models.Schedule{
			1: {1: {TemplateID: 1, WorkoutLabel: "A"}, 2: {TemplateID: 2, WorkoutLabel: "B"}},
			2: {1: {TemplateID: 1, WorkoutLabel: "A", IsDeload: true}},
		},
		WorkoutDescriptions: map[string]string{"A": "Pull", "B": "Push"},
	}
	id, err := db.AddProgram(p)
	if err != nil {
		t.Fatalf("AddProgram failed: %v", err)
	}
	return id
}

func TestProgramRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id := addTestProgram(t, db)

	got, err := db.GetProgram(id)
	if err != nil {
		t.Fatalf("GetProgram failed: %v", err)
	}
	if got.Name != "Test Program" || got.DurationWeeks != 2 {
		t.Errorf("Program mismatch: %+v", got)
	}
	if len(got.Goals) != 1 || got.Goals[0] != "get strong" {
		t.Errorf("Goals mismatch: %v", got.Goals)
	}

	day, ok := got.Schedule[1][2]
	if !ok || day.TemplateID != 2 || day.WorkoutLabel != "B" {
		t.Errorf("Schedule slot mismatch: %+v ok=%v", day, ok)
	}
	if !got.Schedule[2][1].IsDeload {
		t.Error("Deload flag lost in roundtrip")
	}
	if got.WorkoutDescriptions["A"] != "Pull" {
		t.Errorf("Descriptions mismatch: %v", got.WorkoutDescriptions)
	}

	byName, err := db.ProgramByName("Test Program")
	if err != nil {
		t.Fatalf("ProgramByName failed: %v", err)
	}
	if byName == nil || byName.ID != id {
		t.Errorf("ProgramByName mismatch: %+v", byName)
	}
}

func TestProgressLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id := addTestProgram(t, db)

	// First read lazily creates the row at week 1, day 1.
	prog, err := db.GetProgramProgress(id)
	if err != nil {
		t.Fatalf("GetProgramProgress failed: %v", err)
	}
	if prog.CurrentWeek != 1 || prog.CurrentDay != 1 {
		t.Errorf("Expected fresh progress at (1,1), got (%d,%d)", prog.CurrentWeek, prog.CurrentDay)
	}
	if prog.LastWorkoutDate != nil {
		t.Error("Fresh progress should have no last workout date")
	}

	// Partial update merges only the set fields.
	week := 2
	when := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	updated, err := db.UpdateProgramProgress(id, models.ProgressUpdate{
		CurrentWeek:     &week,
		LastWorkoutDate: &when,
	})
	if err != nil {
		t.Fatalf("UpdateProgramProgress failed: %v", err)
	}
	if updated.CurrentWeek != 2 {
		t.Errorf("CurrentWeek = %d, want 2", updated.CurrentWeek)
	}
	if updated.CurrentDay != 1 {
		t.Errorf("CurrentDay should be untouched, got %d", updated.CurrentDay)
	}
	if updated.LastWorkoutDate == nil || !updated.LastWorkoutDate.Equal(when) {
		t.Errorf("LastWorkoutDate = %v, want %v", updated.LastWorkoutDate, when)
	}

	// Persisted, not just returned.
	reread, err := db.GetProgramProgress(id)
	if err != nil {
		t.Fatalf("GetProgramProgress failed: %v", err)
	}
	if reread.CurrentWeek != 2 {
		t.Errorf("Update not persisted: week = %d", reread.CurrentWeek)
	}

	// Reset goes back to the start and clears the last workout date.
	reset, err := db.ResetProgramProgress(id)
	if err != nil {
		t.Fatalf("ResetProgramProgress failed: %v", err)
	}
	if reset.CurrentWeek != 1 || reset.CurrentDay != 1 || reset.LastWorkoutDate != nil {
		t.Errorf("Reset progress wrong: %+v", reset)
	}
}

func TestDeleteProgramRemovesProgress(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id := addTestProgram(t, db)
	if _, err := db.GetProgramProgress(id); err != nil {
		t.Fatalf("GetProgramProgress failed: %v", err)
	}

	if err := db.DeleteProgram(id); err != nil {
		t.Fatalf("DeleteProgram failed: %v", err)
	}

	gone, err := db.GetProgram(id)
	if err != nil {
		t.Fatalf("GetProgram failed: %v", err)
	}
	if gone != nil {
		t.Errorf("Expected program deleted, got %+v", gone)
	}

	var n int
	if err := db.db.QueryRow(`SELECT COUNT(*) FROM program_progress WHERE program_id = ?`, id).Scan(&n); err != nil {
		t.Fatalf("count progress: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected progress row removed, found %d", n)
	}
}

func TestBlocks(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id := addTestProgram(t, db)
	blocks := []models.Block{
		{ProgramID: id, BlockNumber: 2, Name: "Intensify", WeekStart: 5, WeekEnd: 8},
		{ProgramID: id, BlockNumber: 1, Name: "Foundation", WeekStart: 1, WeekEnd: 4},
	}
	for i := range blocks {
		if _, err := db.AddBlock(&blocks[i]); err != nil {
			t.Fatalf("AddBlock failed: %v", err)
		}
	}

	got, err := db.BlocksByProgram(id)
	if err != nil {
		t.Fatalf("BlocksByProgram failed: %v", err)
	}
	if len(got) != 2 || got[0].BlockNumber != 1 {
		t.Errorf("Blocks not ordered by number: %+v", got)
	}

	b, err := db.BlockForWeek(id, 6)
	if err != nil {
		t.Fatalf("BlockForWeek failed: %v", err)
	}
	if b == nil || b.Name != "Intensify" {
		t.Errorf("BlockForWeek(6) = %+v", b)
	}

	none, err := db.BlockForWeek(id, 20)
	if err != nil {
		t.Fatalf("BlockForWeek failed: %v", err)
	}
	if none != nil {
		t.Errorf("Expected nil outside block ranges, got %+v", none)
	}
}

func TestMobilityFlows(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	flows := []models.MobilityFlow{
		{Name: "Flow 2", FlowNumber: 2, Description: "b", Duration: "10 min"},
		{Name: "Flow 1", FlowNumber: 1, Description: "a", Duration: "10 min"},
	}
	for i := range flows {
		if _, err := db.AddMobilityFlow(&flows[i]); err != nil {
			t.Fatalf("AddMobilityFlow failed: %v", err)
		}
	}

	got, err := db.AllMobilityFlows()
	if err != nil {
		t.Fatalf("AllMobilityFlows failed: %v", err)
	}
	if len(got) != 2 || got[0].FlowNumber != 1 {
		t.Errorf("Flows not ordered by number: %+v", got)
	}

	byName, err := db.MobilityFlowByName("Flow 2")
	if err != nil {
		t.Fatalf("MobilityFlowByName failed: %v", err)
	}
	if byName == nil || byName.Description != "b" {
		t.Errorf("MobilityFlowByName mismatch: %+v", byName)
	}
}

func TestUserSettingsUpsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	missing, err := db.GetUserSettings(models.DefaultSettingsKey)
	if err != nil {
		t.Fatalf("GetUserSettings failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil before first save, got %+v", missing)
	}

	s := models.DefaultSettings()
	if err := db.SaveUserSettings(s); err != nil {
		t.Fatalf("SaveUserSettings failed: %v", err)
	}

	s.WeightUnit = models.UnitKg
	s.Theme = models.ThemeDark
	if err := db.SaveUserSettings(s); err != nil {
		t.Fatalf("SaveUserSettings (update) failed: %v", err)
	}

	got, err := db.GetUserSettings(models.DefaultSettingsKey)
	if err != nil {
		t.Fatalf("GetUserSettings failed: %v", err)
	}
	if got.WeightUnit != models.UnitKg || got.Theme != models.ThemeDark {
		t.Errorf("Settings mismatch: %+v", got)
	}
}

func TestCountTable(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	addTestExercise(t, db, "Squat", "Legs")
	addTestExercise(t, db, "Deadlift", "Back")

	n, err := db.CountTable(context.Background(), "exercises")
	if err != nil {
		t.Fatalf("CountTable failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}

	if _, err := db.CountTable(context.Background(), "sqlite_master"); err == nil {
		t.Error("Expected unknown table to be rejected")
	}
}

func TestGetAllData(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := addTestExercise(t, db, "Squat", "Legs")
	tid, err := db.AddTemplate(&models.WorkoutTemplate{Name: "T", ExerciseIDs: []int64{e.ID}})
	if err != nil {
		t.Fatalf("AddTemplate failed: %v", err)
	}
	log := models.NewWorkoutLog(tid)
	if _, err := db.AddWorkoutLog(log, []models.PerformanceEntry{{ExerciseID: e.ID, Reps: 5}}); err != nil {
		t.Fatalf("AddWorkoutLog failed: %v", err)
	}
	addTestProgram(t, db)

	all, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if all.SchemaVersion != latestSchemaVersion {
		t.Errorf("SchemaVersion = %d", all.SchemaVersion)
	}
	if all.ExportID == "" {
		t.Error("Expected export id")
	}
	if len(all.Exercises) != 1 || len(all.Templates) != 1 || len(all.Programs) != 1 {
		t.Errorf("Export incomplete: %d exercises, %d templates, %d programs",
			len(all.Exercises), len(all.Templates), len(all.Programs))
	}
	if len(all.Logs) != 1 || len(all.Logs[0].Performance) != 1 {
		t.Errorf("Export missing log performance: %+v", all.Logs)
	}

	data, err := all.MarshalIndentJSON()
	if err != nil {
		t.Fatalf("MarshalIndentJSON failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("Empty JSON export")
	}
}
