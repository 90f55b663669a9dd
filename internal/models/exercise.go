// ABOUTME: Exercise and MobilityFlow models for the workout catalog.
// ABOUTME: Defines the ExerciseType enum and constructor helpers.
package models

import "strings"

// ExerciseType classifies how an exercise is used within a workout.
type ExerciseType string

const (
	TypeCompound   ExerciseType = "compound"
	TypeIsolation  ExerciseType = "isolation"
	TypeAdvanced   ExerciseType = "advanced"
	TypeSkill      ExerciseType = "skill"
	TypeMobility   ExerciseType = "mobility"
	TypeActivation ExerciseType = "activation"
	TypeStretch    ExerciseType = "stretch"
)

// AllExerciseTypes lists every valid exercise type.
var AllExerciseTypes = []ExerciseType{
	TypeCompound, TypeIsolation, TypeAdvanced, TypeSkill,
	TypeMobility, TypeActivation, TypeStretch,
}

// ParseExerciseType matches a string to an ExerciseType, ignoring case.
// Returns false if the string names no known type.
func ParseExerciseType(s string) (ExerciseType, bool) {
	t := ExerciseType(strings.ToLower(s))
	for _, known := range AllExerciseTypes {
		if t == known {
			return known, true
		}
	}
	return "", false
}

// Exercise is a catalog entry describing a single movement.
// Identity is immutable; all other fields are mutable via update.
type Exercise struct {
	ID           int64        `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	MuscleGroup  string       `json:"muscle_group" yaml:"muscle_group"`
	Type         ExerciseType `json:"type" yaml:"type"`
	Equipment    string       `json:"equipment" yaml:"equipment"`
	Instructions string       `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	CoachNotes   string       `json:"coach_notes,omitempty" yaml:"coach_notes,omitempty"`
}

// NewExercise creates an Exercise with the required catalog fields.
func NewExercise(name, muscleGroup string, typ ExerciseType, equipment string) *Exercise {
	return &Exercise{
		Name:        name,
		MuscleGroup: muscleGroup,
		Type:        typ,
		Equipment:   equipment,
	}
}

// WithInstructions sets how-to text on the exercise.
func (e *Exercise) WithInstructions(s string) *Exercise {
	e.Instructions = s
	return e
}

// WithCoachNotes sets coaching cues on the exercise.
func (e *Exercise) WithCoachNotes(s string) *Exercise {
	e.CoachNotes = s
	return e
}

// MobilityFlow is a standalone catalog entry for a guided mobility sequence.
// FlowNumber is the ordering key within the flow library.
type MobilityFlow struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	FlowNumber  int    `json:"flow_number" yaml:"flow_number"`
	Description string `json:"description" yaml:"description"`
	Duration    string `json:"duration" yaml:"duration"`
}
