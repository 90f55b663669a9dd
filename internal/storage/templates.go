// ABOUTME: WorkoutTemplate and ExerciseInstance operations.
// ABOUTME: Resolves the simple/structured template union at read time.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

// AddTemplate inserts a template and its ordered exercise id list (if any)
// in one transaction.
func (d *DB) AddTemplate(t *models.WorkoutTemplate) (int64, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("add template: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`INSERT INTO workout_templates (name) VALUES (?)`, t.Name)
	if err != nil {
		return 0, fmt.Errorf("add template: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add template id: %w", err)
	}

	for pos, exID := range t.ExerciseIDs {
		if _, err := tx.Exec(`
			INSERT INTO template_exercises (template_id, position, exercise_id)
			VALUES (?, ?, ?)`, id, pos, exID); err != nil {
			return 0, fmt.Errorf("add template exercise: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("add template commit: %w", err)
	}
	t.ID = id
	return id, nil
}

// GetTemplate retrieves a template by id with its exercise id list. Nil
// when absent.
func (d *DB) GetTemplate(id int64) (*models.WorkoutTemplate, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	var t models.WorkoutTemplate
	err := d.db.QueryRow(`SELECT id, name FROM workout_templates WHERE id = ?`, id).
		Scan(&t.ID, &t.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}

	ids, err := d.templateExerciseIDs(id)
	if err != nil {
		return nil, err
	}
	t.ExerciseIDs = ids
	return &t, nil
}

// AllTemplates retrieves every template with exercise id lists attached.
func (d *DB) AllTemplates() ([]models.WorkoutTemplate, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`SELECT id, name FROM workout_templates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var out []models.WorkoutTemplate
	for rows.Next() {
		var t models.WorkoutTemplate
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		ids, err := d.templateExerciseIDs(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].ExerciseIDs = ids
	}
	return out, nil
}

// UpdateTemplate overwrites a template's name and replaces its exercise id
// list, atomically.
func (d *DB) UpdateTemplate(t *models.WorkoutTemplate) error {
	if err := d.ready(); err != nil {
		return err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE workout_templates SET name = ? WHERE id = ?`, t.Name, t.ID); err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM template_exercises WHERE template_id = ?`, t.ID); err != nil {
		return fmt.Errorf("update template exercises: %w", err)
	}
	for pos, exID := range t.ExerciseIDs {
		if _, err := tx.Exec(`
			INSERT INTO template_exercises (template_id, position, exercise_id)
			VALUES (?, ?, ?)`, t.ID, pos, exID); err != nil {
			return fmt.Errorf("update template exercises: %w", err)
		}
	}

	return tx.Commit()
}

// DeleteTemplate removes a template; its exercise list rows and instances
// cascade with it.
func (d *DB) DeleteTemplate(id int64) error {
	if err := d.ready(); err != nil {
		return err
	}

	if _, err := d.db.Exec(`DELETE FROM workout_templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

// ResolveTemplateContent determines a template's shape: templates with a
// flat exercise id list are Simple; everything else resolves through
// phase-grouped instances (empty buckets when none exist). Nil when the
// template itself is absent.
func (d *DB) ResolveTemplateContent(templateID int64) (*models.TemplateContent, error) {
	t, err := d.GetTemplate(templateID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	if len(t.ExerciseIDs) > 0 {
		return &models.TemplateContent{
			Kind:        models.TemplateSimple,
			ExerciseIDs: t.ExerciseIDs,
		}, nil
	}

	groups, err := d.InstancesByPhase(templateID)
	if err != nil {
		return nil, err
	}
	return &models.TemplateContent{
		Kind:      models.TemplateStructured,
		Instances: groups,
	}, nil
}

// AddExerciseInstance inserts an instance row and returns its id.
func (d *DB) AddExerciseInstance(inst *models.ExerciseInstance) (int64, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}

	res, err := d.db.Exec(`
		INSERT INTO exercise_instances
			(template_id, exercise_id, phase, label, sets, reps, rest, time, weight, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inst.TemplateID, inst.ExerciseID, string(inst.Phase), inst.Label,
		inst.Sets, inst.Reps, inst.Rest, inst.Time, inst.Weight, inst.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("add exercise instance: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add exercise instance id: %w", err)
	}
	inst.ID = id
	return id, nil
}

// InstancesByTemplate retrieves a template's instances in insertion order,
// including rows whose stored phase is outside the fixed set.
func (d *DB) InstancesByTemplate(templateID int64) ([]models.ExerciseInstance, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, template_id, exercise_id, phase, label, sets, reps, rest, time, weight, notes
		FROM exercise_instances WHERE template_id = ? ORDER BY id`, templateID)
	if err != nil {
		return nil, fmt.Errorf("list exercise instances: %w", err)
	}
	defer rows.Close()

	var out []models.ExerciseInstance
	for rows.Next() {
		var (
			inst  models.ExerciseInstance
			phase string
		)
		if err := rows.Scan(&inst.ID, &inst.TemplateID, &inst.ExerciseID, &phase,
			&inst.Label, &inst.Sets, &inst.Reps, &inst.Rest, &inst.Time, &inst.Weight, &inst.Notes); err != nil {
			return nil, fmt.Errorf("scan exercise instance: %w", err)
		}
		inst.Phase = models.Phase(phase)
		out = append(out, inst)
	}
	return out, rows.Err()
}

// InstancesByPhase groups a template's instances into the four fixed phase
// buckets. Rows with an unknown stored phase are dropped from all buckets.
func (d *DB) InstancesByPhase(templateID int64) (models.PhaseGroups, error) {
	instances, err := d.InstancesByTemplate(templateID)
	if err != nil {
		return models.PhaseGroups{}, err
	}
	return models.GroupByPhase(instances), nil
}

// UpdateExerciseInstance overwrites an instance's prescription fields.
func (d *DB) UpdateExerciseInstance(inst *models.ExerciseInstance) error {
	if err := d.ready(); err != nil {
		return err
	}

	_, err := d.db.Exec(`
		UPDATE exercise_instances
		SET exercise_id = ?, phase = ?, label = ?, sets = ?, reps = ?, rest = ?, time = ?, weight = ?, notes = ?
		WHERE id = ?`,
		inst.ExerciseID, string(inst.Phase), inst.Label, inst.Sets, inst.Reps,
		inst.Rest, inst.Time, inst.Weight, inst.Notes, inst.ID,
	)
	if err != nil {
		return fmt.Errorf("update exercise instance: %w", err)
	}
	return nil
}

// DeleteExerciseInstance removes one instance row.
func (d *DB) DeleteExerciseInstance(id int64) error {
	if err := d.ready(); err != nil {
		return err
	}

	if _, err := d.db.Exec(`DELETE FROM exercise_instances WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete exercise instance: %w", err)
	}
	return nil
}

func (d *DB) templateExerciseIDs(templateID int64) ([]int64, error) {
	rows, err := d.db.Query(`
		SELECT exercise_id FROM template_exercises
		WHERE template_id = ? ORDER BY position`, templateID)
	if err != nil {
		return nil, fmt.Errorf("list template exercises: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan template exercise: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
