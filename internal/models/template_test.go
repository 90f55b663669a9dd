// ABOUTME: Tests for phase grouping and enum parsing.
// ABOUTME: Verifies bucket ordering and unknown-value handling.
package models

import "testing"

func TestGroupByPhase(t *testing.T) {
	instances := []ExerciseInstance{
		{ID: 1, Phase: PhasePerform},
		{ID: 2, Phase: PhasePrepare},
		{ID: 3, Phase: PhasePerform},
		{ID: 4, Phase: PhasePonder},
		{ID: 5, Phase: PhasePractice},
	}

	g := GroupByPhase(instances)

	if len(g.Prepare) != 1 || g.Prepare[0].ID != 2 {
		t.Errorf("Prepare bucket wrong: %+v", g.Prepare)
	}
	if len(g.Practice) != 1 || g.Practice[0].ID != 5 {
		t.Errorf("Practice bucket wrong: %+v", g.Practice)
	}
	if len(g.Perform) != 2 || g.Perform[0].ID != 1 || g.Perform[1].ID != 3 {
		t.Errorf("Perform bucket should preserve insertion order: %+v", g.Perform)
	}
	if len(g.Ponder) != 1 || g.Ponder[0].ID != 4 {
		t.Errorf("Ponder bucket wrong: %+v", g.Ponder)
	}
	if g.Total() != 5 {
		t.Errorf("Total = %d, want 5", g.Total())
	}
}

func TestGroupByPhaseDropsUnknown(t *testing.T) {
	instances := []ExerciseInstance{
		{ID: 1, Phase: PhasePrepare},
		{ID: 2, Phase: "cooldown"},
		{ID: 3, Phase: ""},
	}

	g := GroupByPhase(instances)
	if g.Total() != 1 {
		t.Errorf("Expected unknown phases dropped, Total = %d", g.Total())
	}
}

func TestGroupByPhaseEmptyBucketsNotNil(t *testing.T) {
	g := GroupByPhase(nil)
	for _, p := range Phases {
		if g.ForPhase(p) == nil {
			t.Errorf("Bucket %s should be empty, not nil", p)
		}
	}
}

func TestForPhaseUnknown(t *testing.T) {
	g := GroupByPhase([]ExerciseInstance{{ID: 1, Phase: PhasePrepare}})
	if g.ForPhase("warmup") != nil {
		t.Error("Expected nil for unknown phase")
	}
}

func TestParsePhase(t *testing.T) {
	for _, p := range Phases {
		got, ok := ParsePhase(string(p))
		if !ok || got != p {
			t.Errorf("ParsePhase(%q) = %v, %v", p, got, ok)
		}
	}
	if _, ok := ParsePhase("Prepare"); ok {
		t.Error("ParsePhase is case-sensitive; 'Prepare' should not parse")
	}
	if _, ok := ParsePhase("cooldown"); ok {
		t.Error("Expected cooldown to be rejected")
	}
}

func TestParseExerciseType(t *testing.T) {
	got, ok := ParseExerciseType("Compound")
	if !ok || got != TypeCompound {
		t.Errorf("ParseExerciseType(Compound) = %v, %v", got, ok)
	}
	got, ok = ParseExerciseType("STRETCH")
	if !ok || got != TypeStretch {
		t.Errorf("ParseExerciseType(STRETCH) = %v, %v", got, ok)
	}
	if _, ok := ParseExerciseType("cardio"); ok {
		t.Error("Expected cardio to be rejected")
	}
}
