// ABOUTME: Tests for the schedule advance algorithm.
// ABOUTME: Covers within-week, across-week, wraparound, and broken schedules.
package schedule

import (
	"errors"
	"testing"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

// twoWeek builds a schedule with days 1 and 3 in week 1, day 2 in week 2.
func twoWeek() models.Schedule {
	return models.Schedule{
		1: {
			1: {TemplateID: 10, WorkoutLabel: "A"},
			3: {TemplateID: 11, WorkoutLabel: "B"},
		},
		2: {
			2: {TemplateID: 12, WorkoutLabel: "C"},
		},
	}
}

func TestAdvanceWithinWeek(t *testing.T) {
	next, completed, err := Advance(twoWeek(), 2, Position{Week: 1, Day: 1})
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if completed {
		t.Error("Expected not completed")
	}
	if next != (Position{Week: 1, Day: 3}) {
		t.Errorf("Expected week 1 day 3, got week %d day %d", next.Week, next.Day)
	}
}

func TestAdvanceAcrossWeeks(t *testing.T) {
	next, completed, err := Advance(twoWeek(), 2, Position{Week: 1, Day: 3})
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if completed {
		t.Error("Expected not completed")
	}
	if next != (Position{Week: 2, Day: 2}) {
		t.Errorf("Expected week 2 day 2, got week %d day %d", next.Week, next.Day)
	}
}

func TestAdvanceWrapsOnCompletion(t *testing.T) {
	next, completed, err := Advance(twoWeek(), 2, Position{Week: 2, Day: 2})
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if !completed {
		t.Error("Expected completed")
	}
	if next != Start {
		t.Errorf("Expected wrap to week 1 day 1, got week %d day %d", next.Week, next.Day)
	}
}

func TestAdvanceMissingDayFallsToNextWeek(t *testing.T) {
	// Day 2 is not scheduled in week 1; advancing from it lands on the
	// first day of week 2.
	next, completed, err := Advance(twoWeek(), 2, Position{Week: 1, Day: 2})
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if completed {
		t.Error("Expected not completed")
	}
	if next != (Position{Week: 2, Day: 2}) {
		t.Errorf("Expected week 2 day 2, got week %d day %d", next.Week, next.Day)
	}
}

func TestAdvanceEmptyCurrentWeek(t *testing.T) {
	sched := models.Schedule{
		2: {1: {TemplateID: 10}},
	}
	_, _, err := Advance(sched, 2, Position{Week: 1, Day: 1})
	if !errors.Is(err, ErrEmptyWeek) {
		t.Errorf("Expected ErrEmptyWeek, got %v", err)
	}
}

func TestAdvanceEmptyNextWeek(t *testing.T) {
	sched := models.Schedule{
		1: {1: {TemplateID: 10}},
		3: {1: {TemplateID: 11}},
	}
	_, _, err := Advance(sched, 3, Position{Week: 1, Day: 1})
	if !errors.Is(err, ErrEmptyWeek) {
		t.Errorf("Expected ErrEmptyWeek, got %v", err)
	}
}

func TestAdvanceDayOrderIsNumeric(t *testing.T) {
	sched := models.Schedule{
		1: {
			2:  {TemplateID: 1},
			10: {TemplateID: 2},
			7:  {TemplateID: 3},
		},
	}

	next, _, err := Advance(sched, 1, Position{Week: 1, Day: 2})
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if next != (Position{Week: 1, Day: 7}) {
		t.Errorf("Expected day 7 after day 2, got day %d", next.Day)
	}

	next, _, err = Advance(sched, 1, Position{Week: 1, Day: 7})
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if next != (Position{Week: 1, Day: 10}) {
		t.Errorf("Expected day 10 after day 7, got day %d", next.Day)
	}
}

func TestAdvanceSingleSlotProgram(t *testing.T) {
	sched := models.Schedule{
		1: {1: {TemplateID: 10}},
	}
	next, completed, err := Advance(sched, 1, Position{Week: 1, Day: 1})
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if !completed {
		t.Error("Expected completed")
	}
	if next != Start {
		t.Errorf("Expected wrap to start, got week %d day %d", next.Week, next.Day)
	}
}

func TestTemplateAt(t *testing.T) {
	sched := twoWeek()

	day, ok := TemplateAt(sched, Position{Week: 1, Day: 3})
	if !ok {
		t.Fatal("Expected slot at week 1 day 3")
	}
	if day.TemplateID != 11 || day.WorkoutLabel != "B" {
		t.Errorf("Wrong slot: %+v", day)
	}

	if _, ok := TemplateAt(sched, Position{Week: 1, Day: 2}); ok {
		t.Error("Expected no slot at week 1 day 2")
	}
	if _, ok := TemplateAt(sched, Position{Week: 5, Day: 1}); ok {
		t.Error("Expected no slot in unscheduled week")
	}
}

func TestValidateCleanSchedule(t *testing.T) {
	if problems := Validate(twoWeek(), 2); len(problems) != 0 {
		t.Errorf("Expected no problems, got %v", problems)
	}
}

func TestValidateCatchesProblems(t *testing.T) {
	sched := models.Schedule{
		0: {1: {TemplateID: 1}},  // week out of range
		1: {},                    // empty week
		2: {-1: {TemplateID: 1}}, // bad day number
		3: {1: {}},               // no template
		9: {1: {TemplateID: 1}},  // beyond duration
	}
	problems := Validate(sched, 3)
	if len(problems) != 5 {
		t.Errorf("Expected 5 problems, got %d: %v", len(problems), problems)
	}
}

func TestValidateInstancePhases(t *testing.T) {
	instances := []models.ExerciseInstance{
		{ID: 1, TemplateID: 1, Phase: models.PhasePrepare},
		{ID: 2, TemplateID: 1, Phase: "cooldown"},
		{ID: 3, TemplateID: 1, Phase: models.PhasePonder},
	}
	problems := ValidateInstancePhases(instances)
	if len(problems) != 1 {
		t.Fatalf("Expected 1 problem, got %d: %v", len(problems), problems)
	}
}
