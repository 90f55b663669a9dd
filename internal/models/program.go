// ABOUTME: Program, Schedule, ProgramProgress, and Block models.
// ABOUTME: A program maps week and day numbers to workout templates.
package models

import "time"

// ScheduledDay is one slot in a program's week/day matrix.
type ScheduledDay struct {
	TemplateID   int64  `json:"template_id" yaml:"template_id"`
	WorkoutLabel string `json:"workout_label,omitempty" yaml:"workout_label,omitempty"`
	IsDeload     bool   `json:"is_deload,omitempty" yaml:"is_deload,omitempty"`
}

// Schedule is a sparse two-level mapping from week number to day number to
// the workout scheduled for that slot. Weeks and days are 1-based.
type Schedule map[int]map[int]ScheduledDay

// Days returns the day slots scheduled for a week, nil when the week has
// no entries.
func (s Schedule) Days(week int) map[int]ScheduledDay {
	return s[week]
}

// Program is a multi-week training plan with descriptive metadata and a
// week/day schedule of templates.
type Program struct {
	ID                  int64             `json:"id" yaml:"id"`
	Name                string            `json:"name" yaml:"name"`
	Description         string            `json:"description,omitempty" yaml:"description,omitempty"`
	DurationWeeks       int               `json:"duration_weeks" yaml:"duration_weeks"`
	Philosophy          string            `json:"philosophy,omitempty" yaml:"philosophy,omitempty"`
	Goals               []string          `json:"goals,omitempty" yaml:"goals,omitempty"`
	Schedule            Schedule          `json:"schedule" yaml:"schedule"`
	WorkoutDescriptions map[string]string `json:"workout_descriptions,omitempty" yaml:"workout_descriptions,omitempty"`
}

// ProgramProgress tracks a user's position within a program. One row per
// program, keyed by ProgramID. Created lazily at week 1, day 1.
type ProgramProgress struct {
	ProgramID       int64      `json:"program_id" yaml:"program_id"`
	CurrentWeek     int        `json:"current_week" yaml:"current_week"`
	CurrentDay      int        `json:"current_day" yaml:"current_day"`
	StartDate       time.Time  `json:"start_date" yaml:"start_date"`
	LastWorkoutDate *time.Time `json:"last_workout_date,omitempty" yaml:"last_workout_date,omitempty"`
}

// NewProgramProgress creates progress at the starting position.
func NewProgramProgress(programID int64) *ProgramProgress {
	return &ProgramProgress{
		ProgramID:   programID,
		CurrentWeek: 1,
		CurrentDay:  1,
		StartDate:   time.Now().UTC(),
	}
}

// ProgressUpdate carries the fields to merge into a progress row. Nil
// fields are left unchanged.
type ProgressUpdate struct {
	CurrentWeek     *int
	CurrentDay      *int
	LastWorkoutDate *time.Time
}

// Block names a sub-range of weeks within a program sharing a training
// goal. WeekStart and WeekEnd are inclusive.
type Block struct {
	ID          int64  `json:"id" yaml:"id"`
	ProgramID   int64  `json:"program_id" yaml:"program_id"`
	BlockNumber int    `json:"block_number" yaml:"block_number"`
	Name        string `json:"name" yaml:"name"`
	Goals       string `json:"goals,omitempty" yaml:"goals,omitempty"`
	SkillA      string `json:"skill_a,omitempty" yaml:"skill_a,omitempty"`
	SkillB      string `json:"skill_b,omitempty" yaml:"skill_b,omitempty"`
	WeekStart   int    `json:"week_start" yaml:"week_start"`
	WeekEnd     int    `json:"week_end" yaml:"week_end"`
}
