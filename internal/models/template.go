// ABOUTME: WorkoutTemplate and ExerciseInstance models with the Phase enum.
// ABOUTME: Templates carry either a flat exercise list or structured instances.
package models

// Phase is one of the four fixed workout-structure stages. Instances are
// grouped by phase when rendering a structured template; ordering within a
// phase is insertion order.
type Phase string

const (
	PhasePrepare  Phase = "prepare"
	PhasePractice Phase = "practice"
	PhasePerform  Phase = "perform"
	PhasePonder   Phase = "ponder"
)

// Phases lists the four phases in workout order.
var Phases = []Phase{PhasePrepare, PhasePractice, PhasePerform, PhasePonder}

// ParsePhase matches a string to a Phase. Returns false for anything
// outside the fixed set.
func ParsePhase(s string) (Phase, bool) {
	p := Phase(s)
	for _, known := range Phases {
		if p == known {
			return known, true
		}
	}
	return "", false
}

// WorkoutTemplate names a reusable workout. A template's exercises come in
// one of two shapes: a flat ordered list of exercise ids, or a set of
// ExerciseInstance rows grouped by phase. ExerciseIDs holds the flat form;
// when it is empty the template is resolved through its instances.
type WorkoutTemplate struct {
	ID          int64   `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	ExerciseIDs []int64 `json:"exercise_ids,omitempty" yaml:"exercise_ids,omitempty"`
}

// ExerciseInstance is a template-specific prescription of a catalog
// exercise. Prescription fields are free-form strings ("5x(1,2,3)",
// "10-15", "90-120s") rather than numbers, matching how coaches write them.
type ExerciseInstance struct {
	ID         int64  `json:"id" yaml:"id"`
	TemplateID int64  `json:"template_id" yaml:"template_id"`
	ExerciseID int64  `json:"exercise_id" yaml:"exercise_id"`
	Phase      Phase  `json:"phase" yaml:"phase"`
	Label      string `json:"label,omitempty" yaml:"label,omitempty"`
	Sets       string `json:"sets,omitempty" yaml:"sets,omitempty"`
	Reps       string `json:"reps,omitempty" yaml:"reps,omitempty"`
	Rest       string `json:"rest,omitempty" yaml:"rest,omitempty"`
	Time       string `json:"time,omitempty" yaml:"time,omitempty"`
	Weight     string `json:"weight,omitempty" yaml:"weight,omitempty"`
	Notes      string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewExerciseInstance creates an instance binding an exercise into a
// template at the given phase.
func NewExerciseInstance(templateID, exerciseID int64, phase Phase) *ExerciseInstance {
	return &ExerciseInstance{
		TemplateID: templateID,
		ExerciseID: exerciseID,
		Phase:      phase,
	}
}

// TemplateContentKind tags the two template shapes.
type TemplateContentKind int

const (
	// TemplateSimple templates hold a flat ordered exercise id list.
	TemplateSimple TemplateContentKind = iota
	// TemplateStructured templates are defined by phase-grouped instances.
	TemplateStructured
)

// TemplateContent is the resolved form of a template's exercise set.
// Exactly one of ExerciseIDs or Instances is meaningful, selected by Kind.
type TemplateContent struct {
	Kind        TemplateContentKind
	ExerciseIDs []int64
	Instances   PhaseGroups
}

// PhaseGroups buckets a template's instances into the four fixed phases.
// Every bucket is present even when empty. Stored rows carrying a phase
// outside the fixed set are excluded from all buckets; that is a documented
// data-quality tolerance, with validation available separately.
type PhaseGroups struct {
	Prepare  []ExerciseInstance `json:"prepare" yaml:"prepare"`
	Practice []ExerciseInstance `json:"practice" yaml:"practice"`
	Perform  []ExerciseInstance `json:"perform" yaml:"perform"`
	Ponder   []ExerciseInstance `json:"ponder" yaml:"ponder"`
}

// GroupByPhase distributes instances into phase buckets, preserving input
// order within each bucket and dropping unknown phases.
func GroupByPhase(instances []ExerciseInstance) PhaseGroups {
	g := PhaseGroups{
		Prepare:  []ExerciseInstance{},
		Practice: []ExerciseInstance{},
		Perform:  []ExerciseInstance{},
		Ponder:   []ExerciseInstance{},
	}
	for _, inst := range instances {
		switch inst.Phase {
		case PhasePrepare:
			g.Prepare = append(g.Prepare, inst)
		case PhasePractice:
			g.Practice = append(g.Practice, inst)
		case PhasePerform:
			g.Perform = append(g.Perform, inst)
		case PhasePonder:
			g.Ponder = append(g.Ponder, inst)
		}
	}
	return g
}

// ForPhase returns the bucket for a phase, nil for unknown phases.
func (g PhaseGroups) ForPhase(p Phase) []ExerciseInstance {
	switch p {
	case PhasePrepare:
		return g.Prepare
	case PhasePractice:
		return g.Practice
	case PhasePerform:
		return g.Perform
	case PhasePonder:
		return g.Ponder
	}
	return nil
}

// Total counts instances across all buckets.
func (g PhaseGroups) Total() int {
	return len(g.Prepare) + len(g.Practice) + len(g.Perform) + len(g.Ponder)
}
