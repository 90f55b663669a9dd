// ABOUTME: Total wrapped data-access surface exposed to the CLI and MCP layers.
// ABOUTME: Each method returns a safe empty value when the store is unusable.
package guard

import (
	"github.com/tomaszwojcikowski/fitrack3/internal/models"
	"github.com/tomaszwojcikowski/fitrack3/internal/storage"
)

// callErr wraps operations that only report an error.
func callErr(g *Guard, op string, fn func(*storage.DB) error) {
	call(g, op, struct{}{}, func(db *storage.DB) (struct{}, error) {
		return struct{}{}, fn(db)
	})
}

// Exercises

func (g *Guard) AddExercise(e *models.Exercise) int64 {
	return call(g, "exercise.add", 0, func(db *storage.DB) (int64, error) {
		return db.AddExercise(e)
	})
}

func (g *Guard) GetExercise(id int64) *models.Exercise {
	return call(g, "exercise.get", nil, func(db *storage.DB) (*models.Exercise, error) {
		return db.GetExercise(id)
	})
}

func (g *Guard) AllExercises() []models.Exercise {
	return call(g, "exercise.all", []models.Exercise{}, func(db *storage.DB) ([]models.Exercise, error) {
		return db.AllExercises()
	})
}

func (g *Guard) ExercisesByMuscle(muscle string) []models.Exercise {
	return call(g, "exercise.by_muscle", []models.Exercise{}, func(db *storage.DB) ([]models.Exercise, error) {
		return db.ExercisesByMuscle(muscle)
	})
}

func (g *Guard) ExerciseByName(name string) *models.Exercise {
	return call(g, "exercise.by_name", nil, func(db *storage.DB) (*models.Exercise, error) {
		return db.ExerciseByName(name)
	})
}

func (g *Guard) UpdateExercise(e *models.Exercise) {
	callErr(g, "exercise.update", func(db *storage.DB) error {
		return db.UpdateExercise(e)
	})
}

func (g *Guard) DeleteExercise(id int64) {
	callErr(g, "exercise.delete", func(db *storage.DB) error {
		return db.DeleteExercise(id)
	})
}

// Templates

func (g *Guard) AddTemplate(t *models.WorkoutTemplate) int64 {
	return call(g, "template.add", 0, func(db *storage.DB) (int64, error) {
		return db.AddTemplate(t)
	})
}

func (g *Guard) GetTemplate(id int64) *models.WorkoutTemplate {
	return call(g, "template.get", nil, func(db *storage.DB) (*models.WorkoutTemplate, error) {
		return db.GetTemplate(id)
	})
}

func (g *Guard) AllTemplates() []models.WorkoutTemplate {
	return call(g, "template.all", []models.WorkoutTemplate{}, func(db *storage.DB) ([]models.WorkoutTemplate, error) {
		return db.AllTemplates()
	})
}

func (g *Guard) UpdateTemplate(t *models.WorkoutTemplate) {
	callErr(g, "template.update", func(db *storage.DB) error {
		return db.UpdateTemplate(t)
	})
}

func (g *Guard) DeleteTemplate(id int64) {
	callErr(g, "template.delete", func(db *storage.DB) error {
		return db.DeleteTemplate(id)
	})
}

func (g *Guard) ResolveTemplateContent(templateID int64) *models.TemplateContent {
	return call(g, "template.resolve", nil, func(db *storage.DB) (*models.TemplateContent, error) {
		return db.ResolveTemplateContent(templateID)
	})
}

func (g *Guard) AddExerciseInstance(inst *models.ExerciseInstance) int64 {
	return call(g, "instance.add", 0, func(db *storage.DB) (int64, error) {
		return db.AddExerciseInstance(inst)
	})
}

func (g *Guard) InstancesByTemplate(templateID int64) []models.ExerciseInstance {
	return call(g, "instance.by_template", []models.ExerciseInstance{}, func(db *storage.DB) ([]models.ExerciseInstance, error) {
		return db.InstancesByTemplate(templateID)
	})
}

func (g *Guard) InstancesByPhase(templateID int64) models.PhaseGroups {
	return call(g, "instance.by_phase", models.GroupByPhase(nil), func(db *storage.DB) (models.PhaseGroups, error) {
		return db.InstancesByPhase(templateID)
	})
}

func (g *Guard) UpdateExerciseInstance(inst *models.ExerciseInstance) {
	callErr(g, "instance.update", func(db *storage.DB) error {
		return db.UpdateExerciseInstance(inst)
	})
}

func (g *Guard) DeleteExerciseInstance(id int64) {
	callErr(g, "instance.delete", func(db *storage.DB) error {
		return db.DeleteExerciseInstance(id)
	})
}

// Workout logs

func (g *Guard) AddWorkoutLog(log *models.WorkoutLog, performance []models.PerformanceEntry) int64 {
	return call(g, "log.add", 0, func(db *storage.DB) (int64, error) {
		return db.AddWorkoutLog(log, performance)
	})
}

func (g *Guard) WorkoutLogs(startDate, endDate string) []models.WorkoutLog {
	return call(g, "log.range", []models.WorkoutLog{}, func(db *storage.DB) ([]models.WorkoutLog, error) {
		return db.WorkoutLogs(startDate, endDate)
	})
}

func (g *Guard) GetWorkoutLog(id int64) *models.WorkoutLog {
	return call(g, "log.get", nil, func(db *storage.DB) (*models.WorkoutLog, error) {
		return db.GetWorkoutLog(id)
	})
}

func (g *Guard) LogPerformance(logID int64) []models.PerformanceEntry {
	return call(g, "log.performance", []models.PerformanceEntry{}, func(db *storage.DB) ([]models.PerformanceEntry, error) {
		return db.LogPerformance(logID)
	})
}

// Programs and progress

func (g *Guard) AddProgram(p *models.Program) int64 {
	return call(g, "program.add", 0, func(db *storage.DB) (int64, error) {
		return db.AddProgram(p)
	})
}

func (g *Guard) GetProgram(id int64) *models.Program {
	return call(g, "program.get", nil, func(db *storage.DB) (*models.Program, error) {
		return db.GetProgram(id)
	})
}

func (g *Guard) ProgramByName(name string) *models.Program {
	return call(g, "program.by_name", nil, func(db *storage.DB) (*models.Program, error) {
		return db.ProgramByName(name)
	})
}

func (g *Guard) AllPrograms() []models.Program {
	return call(g, "program.all", []models.Program{}, func(db *storage.DB) ([]models.Program, error) {
		return db.AllPrograms()
	})
}

func (g *Guard) DeleteProgram(id int64) {
	callErr(g, "program.delete", func(db *storage.DB) error {
		return db.DeleteProgram(id)
	})
}

func (g *Guard) GetProgramProgress(programID int64) *models.ProgramProgress {
	return call(g, "progress.get", nil, func(db *storage.DB) (*models.ProgramProgress, error) {
		return db.GetProgramProgress(programID)
	})
}

func (g *Guard) UpdateProgramProgress(programID int64, update models.ProgressUpdate) *models.ProgramProgress {
	return call(g, "progress.update", nil, func(db *storage.DB) (*models.ProgramProgress, error) {
		return db.UpdateProgramProgress(programID, update)
	})
}

func (g *Guard) ResetProgramProgress(programID int64) *models.ProgramProgress {
	return call(g, "progress.reset", nil, func(db *storage.DB) (*models.ProgramProgress, error) {
		return db.ResetProgramProgress(programID)
	})
}

func (g *Guard) AddBlock(b *models.Block) int64 {
	return call(g, "block.add", 0, func(db *storage.DB) (int64, error) {
		return db.AddBlock(b)
	})
}

func (g *Guard) BlocksByProgram(programID int64) []models.Block {
	return call(g, "block.by_program", []models.Block{}, func(db *storage.DB) ([]models.Block, error) {
		return db.BlocksByProgram(programID)
	})
}

func (g *Guard) BlockForWeek(programID int64, week int) *models.Block {
	return call(g, "block.for_week", nil, func(db *storage.DB) (*models.Block, error) {
		return db.BlockForWeek(programID, week)
	})
}

// Mobility flows

func (g *Guard) AddMobilityFlow(f *models.MobilityFlow) int64 {
	return call(g, "flow.add", 0, func(db *storage.DB) (int64, error) {
		return db.AddMobilityFlow(f)
	})
}

func (g *Guard) AllMobilityFlows() []models.MobilityFlow {
	return call(g, "flow.all", []models.MobilityFlow{}, func(db *storage.DB) ([]models.MobilityFlow, error) {
		return db.AllMobilityFlows()
	})
}

func (g *Guard) MobilityFlowByName(name string) *models.MobilityFlow {
	return call(g, "flow.by_name", nil, func(db *storage.DB) (*models.MobilityFlow, error) {
		return db.MobilityFlowByName(name)
	})
}

func (g *Guard) DeleteMobilityFlow(id int64) {
	callErr(g, "flow.delete", func(db *storage.DB) error {
		return db.DeleteMobilityFlow(id)
	})
}

// Settings

func (g *Guard) GetUserSettings(key string) *models.UserSettings {
	return call(g, "settings.get", nil, func(db *storage.DB) (*models.UserSettings, error) {
		return db.GetUserSettings(key)
	})
}

func (g *Guard) SaveUserSettings(s *models.UserSettings) {
	callErr(g, "settings.save", func(db *storage.DB) error {
		return db.SaveUserSettings(s)
	})
}

// Export

func (g *Guard) GetAllData() *storage.ExportData {
	return call(g, "export.all", nil, func(db *storage.DB) (*storage.ExportData, error) {
		return db.GetAllData()
	})
}
