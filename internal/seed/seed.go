// ABOUTME: Idempotent seed loaders for the starter catalog and bundled program.
// ABOUTME: Safe to run on every startup; re-running never duplicates rows.
package seed

import (
	"fmt"
	"log/slog"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
	"github.com/tomaszwojcikowski/fitrack3/internal/storage"
)

// Demo populates an empty database with the starter exercise catalog.
// A database with any exercises at all is left untouched.
func Demo(db *storage.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	n, err := db.CountExercises()
	if err != nil {
		return fmt.Errorf("counting exercises: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, e := range demoExercises() {
		e := e
		if _, err := db.AddExercise(&e); err != nil {
			return fmt.Errorf("seeding exercise %q: %w", e.Name, err)
		}
	}
	logger.Info("seeded starter catalog", "exercises", len(demoExercises()))
	return nil
}

// TwentyWeekProgram installs the bundled 20-week program: its exercise
// library, mobility flows, workout templates, blocks, and schedule.
// Keyed on the program name; if the program already exists its id is
// returned and nothing is written. Exercises and flows are also checked
// per name, so a partially applied seed completes on the next run.
func TwentyWeekProgram(db *storage.DB, logger *slog.Logger) (int64, error) {
	if logger == nil {
		logger = slog.Default()
	}

	existing, err := db.ProgramByName(ProgramName)
	if err != nil {
		return 0, fmt.Errorf("checking for program: %w", err)
	}
	if existing != nil {
		return existing.ID, nil
	}

	logger.Info("seeding program", "name", ProgramName)

	exercises, err := seedExercises(db)
	if err != nil {
		return 0, err
	}
	if err := seedFlows(db); err != nil {
		return 0, err
	}

	templates, err := seedTemplates(db, exercises)
	if err != nil {
		return 0, err
	}

	program := &models.Program{
		Name:                ProgramName,
		Description:         "Professional calisthenics program for 40+ athletes. Focus on pulling strength, joint health, and long-term progression.",
		DurationWeeks:       20,
		Philosophy:          "Quality Over Quantity and Long-Term Joint Health. Every rep should be perfect and pain-free.",
		Goals:               programGoals(),
		Schedule:            buildSchedule(templates),
		WorkoutDescriptions: workoutDescriptions(),
	}
	programID, err := db.AddProgram(program)
	if err != nil {
		return 0, fmt.Errorf("seeding program: %w", err)
	}

	for _, b := range programBlocks(programID) {
		b := b
		if _, err := db.AddBlock(&b); err != nil {
			return 0, fmt.Errorf("seeding block %q: %w", b.Name, err)
		}
	}

	logger.Info("program seeded", "id", programID)
	return programID, nil
}

// seedExercises inserts the program's exercise library, reusing any
// exercise that already exists under the same name. Returns a name to id
// map for wiring templates.
func seedExercises(db *storage.DB) (map[string]int64, error) {
	ids := make(map[string]int64)
	for _, e := range programExercises() {
		existing, err := db.ExerciseByName(e.Name)
		if err != nil {
			return nil, fmt.Errorf("looking up exercise %q: %w", e.Name, err)
		}
		if existing != nil {
			ids[e.Name] = existing.ID
			continue
		}
		e := e
		id, err := db.AddExercise(&e)
		if err != nil {
			return nil, fmt.Errorf("seeding exercise %q: %w", e.Name, err)
		}
		ids[e.Name] = id
	}
	return ids, nil
}

func seedFlows(db *storage.DB) error {
	for _, f := range mobilityFlows() {
		existing, err := db.MobilityFlowByName(f.Name)
		if err != nil {
			return fmt.Errorf("looking up flow %q: %w", f.Name, err)
		}
		if existing != nil {
			continue
		}
		f := f
		if _, err := db.AddMobilityFlow(&f); err != nil {
			return fmt.Errorf("seeding flow %q: %w", f.Name, err)
		}
	}
	return nil
}

// workoutTemplates holds the four repeating day templates by label.
type workoutTemplates struct {
	A, B, C, D int64
}

func seedTemplates(db *storage.DB, exercises map[string]int64) (workoutTemplates, error) {
	var t workoutTemplates
	var err error

	t.A, err = seedPullVolumeTemplate(db, exercises)
	if err != nil {
		return t, err
	}

	t.B, err = seedSimpleTemplate(db, "Workout B: Full Body Intensity", exercises,
		"Weighted Pull-ups", "Weighted Dips", "Bulgarian Split Squat", "HSPU", "Hollow Body Hold")
	if err != nil {
		return t, err
	}

	t.C, err = seedSimpleTemplate(db, "Workout C: Active Recovery & Core", exercises,
		"Hanging Knee Raises", "Side Plank", "Bird-Dog", "Ab Wheel Rollouts (Knees)", "Dead Hang")
	if err != nil {
		return t, err
	}

	t.D, err = seedSimpleTemplate(db, "Workout D: Posterior Chain", exercises,
		"Romanian Deadlift (RDL)", "Barbell/Dumbbell Good Morning",
		"Single-Leg Romanian Deadlift (SL-RDL)", "Weighted Glute Bridge",
		"Single-Leg Calf Raises", "Banded Face Pulls")
	return t, err
}

func seedSimpleTemplate(db *storage.DB, name string, exercises map[string]int64, names ...string) (int64, error) {
	ids := make([]int64, 0, len(names))
	for _, n := range names {
		id, ok := exercises[n]
		if !ok {
			return 0, fmt.Errorf("template %q references unknown exercise %q", name, n)
		}
		ids = append(ids, id)
	}
	tid, err := db.AddTemplate(&models.WorkoutTemplate{Name: name, ExerciseIDs: ids})
	if err != nil {
		return 0, fmt.Errorf("seeding template %q: %w", name, err)
	}
	return tid, nil
}

// seedPullVolumeTemplate builds the structured Workout A template with
// instances across all four phases.
func seedPullVolumeTemplate(db *storage.DB, exercises map[string]int64) (int64, error) {
	tid, err := db.AddTemplate(&models.WorkoutTemplate{Name: "Workout A: Pull Volume"})
	if err != nil {
		return 0, fmt.Errorf("seeding pull volume template: %w", err)
	}

	instances := []models.ExerciseInstance{
		// Prepare
		{Phase: models.PhasePrepare, ExerciseID: exercises["Wrist Mobility"], Sets: "1", Reps: "10-15"},
		{Phase: models.PhasePrepare, ExerciseID: exercises["Shoulder CARs"], Sets: "1", Reps: "10"},
		{Phase: models.PhasePrepare, ExerciseID: exercises["Cat-Cow"], Sets: "1", Reps: "10"},
		{Phase: models.PhasePrepare, ExerciseID: exercises["Spiderman Lunge w/ T-Spine Rotation"], Sets: "1", Reps: "5/side"},
		{Phase: models.PhasePrepare, ExerciseID: exercises["Deep Squat Hold"], Sets: "1", Time: "1-2 min"},
		{Phase: models.PhasePrepare, ExerciseID: exercises["Banded Straight Arm Pulldowns"], Sets: "2", Reps: "12-15",
			Notes: "Light, focus on lat activation"},
		// Practice
		{Phase: models.PhasePractice, ExerciseID: exercises["HSPU"], Label: "Block 1 Skill A",
			Sets: "3", Reps: "3-4", Rest: "60-90s", Notes: "Focus on form"},
		// Perform
		{Phase: models.PhasePerform, ExerciseID: exercises["Pull-ups"], Label: "A1",
			Sets: "5x(1,2,3)", Reps: "Ladder", Rest: "90-120s",
			Notes: "Ladder: 1 rep, rest 15s, 2 reps, rest 15s, 3 reps = 1 set"},
		{Phase: models.PhasePerform, ExerciseID: exercises["Ring Rows"], Label: "B1",
			Sets: "3", Reps: "15", Rest: "30-60s", Notes: "Feet on floor"},
		{Phase: models.PhasePerform, ExerciseID: exercises["Ring Push-ups"], Label: "B2",
			Sets: "3", Reps: "10", Rest: "90-120s", Notes: "After B1"},
		{Phase: models.PhasePerform, ExerciseID: exercises["Hollow Body Rocks"], Label: "C1",
			Sets: "3", Time: "30s", Rest: "60s"},
		// Ponder
		{Phase: models.PhasePonder, ExerciseID: exercises["Dead Hang"], Sets: "2", Time: "30s"},
		{Phase: models.PhasePonder, ExerciseID: exercises["Wrist/Forearm Stretches"], Sets: "1", Time: "1 min",
			Notes: "Essential after rings/HSPU"},
		{Phase: models.PhasePonder, ExerciseID: exercises["Child's Pose w/ Lat Stretch"], Sets: "1", Time: "1 min"},
		{Phase: models.PhasePonder, ExerciseID: exercises["Chest Stretch"], Sets: "1", Time: "1 min",
			Notes: "On rings or doorway"},
	}

	for _, inst := range instances {
		inst.TemplateID = tid
		inst := inst
		if _, err := db.AddExerciseInstance(&inst); err != nil {
			return 0, fmt.Errorf("seeding instance for template %d: %w", tid, err)
		}
	}
	return tid, nil
}

// buildSchedule lays the four repeating workouts over 20 weeks. Day 1 is
// the pull volume day, day 4 the optional posterior chain day. The last
// week of each four-week block is a deload.
func buildSchedule(t workoutTemplates) models.Schedule {
	sched := make(models.Schedule, 20)
	for week := 1; week <= 20; week++ {
		deload := week%4 == 0
		sched[week] = map[int]models.ScheduledDay{
			1: {TemplateID: t.A, WorkoutLabel: "A", IsDeload: deload},
			2: {TemplateID: t.B, WorkoutLabel: "B", IsDeload: deload},
			3: {TemplateID: t.C, WorkoutLabel: "C", IsDeload: deload},
			4: {TemplateID: t.D, WorkoutLabel: "D", IsDeload: deload},
		}
	}
	return sched
}
