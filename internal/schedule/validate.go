// ABOUTME: Validation for authored program schedules.
// ABOUTME: Enforces the invariants the advance algorithm relies on.
package schedule

import (
	"fmt"
	"sort"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

// Validate checks a program schedule against the invariants the advance
// algorithm assumes: every scheduled week falls within the program
// duration, every active week has at least one day, day numbers are
// positive, and every slot names a template. Problems are returned as a
// list so authoring tools can report them all at once.
func Validate(sched models.Schedule, durationWeeks int) []error {
	var problems []error

	if durationWeeks < 1 {
		problems = append(problems, fmt.Errorf("duration must be at least 1 week, got %d", durationWeeks))
	}

	var weeks []int
	for week := range sched {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	for _, week := range weeks {
		if week < 1 || week > durationWeeks {
			problems = append(problems, fmt.Errorf("week %d outside program duration [1, %d]", week, durationWeeks))
		}
		days := sched[week]
		if len(days) == 0 {
			problems = append(problems, fmt.Errorf("week %d: %w", week, ErrEmptyWeek))
			continue
		}
		for day, slot := range days {
			if day < 1 {
				problems = append(problems, fmt.Errorf("week %d: day number %d must be positive", week, day))
			}
			if slot.TemplateID == 0 {
				problems = append(problems, fmt.Errorf("week %d day %d: no template assigned", week, day))
			}
		}
	}

	return problems
}

// ValidateInstancePhases reports instances whose stored phase is outside
// the fixed set. Reads tolerate such rows by dropping them; this is the
// authoring-time path that makes them visible.
func ValidateInstancePhases(instances []models.ExerciseInstance) []error {
	var problems []error
	for _, inst := range instances {
		if _, ok := models.ParsePhase(string(inst.Phase)); !ok {
			problems = append(problems,
				fmt.Errorf("instance %d (template %d): unknown phase %q", inst.ID, inst.TemplateID, inst.Phase))
		}
	}
	return problems
}
