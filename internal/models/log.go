// ABOUTME: WorkoutLog and PerformanceEntry models for completed workouts.
// ABOUTME: Logs are append-only; entries are created atomically with the log.
package models

import "time"

// ProgramRef ties a workout log to the program position it was generated
// from. Logs for ad-hoc workouts carry no ref.
type ProgramRef struct {
	ProgramID int64 `json:"program_id" yaml:"program_id"`
	Week      int   `json:"week" yaml:"week"`
	Day       int   `json:"day" yaml:"day"`
}

// WorkoutLog records one completed workout. Date is an ISO-8601 string so
// that range filtering matches lexicographic order.
type WorkoutLog struct {
	ID         int64       `json:"id" yaml:"id"`
	Date       string      `json:"date" yaml:"date"`
	TemplateID int64       `json:"template_id" yaml:"template_id"`
	Program    *ProgramRef `json:"program,omitempty" yaml:"program,omitempty"`

	// Performance is populated when fetching the full log.
	Performance []PerformanceEntry `json:"performance,omitempty" yaml:"performance,omitempty"`
}

// NewWorkoutLog creates a log for a template dated now.
func NewWorkoutLog(templateID int64) *WorkoutLog {
	return &WorkoutLog{
		Date:       time.Now().UTC().Format(time.RFC3339),
		TemplateID: templateID,
	}
}

// WithDate sets an explicit completion date.
func (l *WorkoutLog) WithDate(t time.Time) *WorkoutLog {
	l.Date = t.UTC().Format(time.RFC3339)
	return l
}

// WithProgram marks the log as generated from a program position.
func (l *WorkoutLog) WithProgram(programID int64, week, day int) *WorkoutLog {
	l.Program = &ProgramRef{ProgramID: programID, Week: week, Day: day}
	return l
}

// PerformanceEntry records one completed set: which exercise, how many
// reps, at what weight.
type PerformanceEntry struct {
	ID         int64   `json:"id" yaml:"id"`
	LogID      int64   `json:"log_id" yaml:"log_id"`
	ExerciseID int64   `json:"exercise_id" yaml:"exercise_id"`
	Reps       int     `json:"reps" yaml:"reps"`
	Weight     float64 `json:"weight" yaml:"weight"`
}
