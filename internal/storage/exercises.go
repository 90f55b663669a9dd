// ABOUTME: Exercise CRUD operations for SQLite storage.
// ABOUTME: Missing ids read as nil rows, never as errors.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

// AddExercise inserts a catalog exercise and returns its new id.
func (d *DB) AddExercise(e *models.Exercise) (int64, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}

	res, err := d.db.Exec(`
		INSERT INTO exercises (name, muscle_group, type, equipment, instructions, coach_notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Name, e.MuscleGroup, string(e.Type), e.Equipment, e.Instructions, e.CoachNotes,
	)
	if err != nil {
		return 0, fmt.Errorf("add exercise: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add exercise id: %w", err)
	}
	e.ID = id
	return id, nil
}

// GetExercise retrieves an exercise by id. Returns nil when no row exists;
// callers render missing references as "Unknown".
func (d *DB) GetExercise(id int64) (*models.Exercise, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	row := d.db.QueryRow(`
		SELECT id, name, muscle_group, type, equipment, instructions, coach_notes
		FROM exercises WHERE id = ?`, id)
	return scanExercise(row)
}

// AllExercises retrieves the full exercise catalog ordered by name.
func (d *DB) AllExercises() ([]models.Exercise, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, name, muscle_group, type, equipment, instructions, coach_notes
		FROM exercises ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// ExercisesByMuscle filters the catalog by muscle group, matched
// case-insensitively. An empty muscle returns the whole catalog.
func (d *DB) ExercisesByMuscle(muscle string) ([]models.Exercise, error) {
	if muscle == "" {
		return d.AllExercises()
	}
	if err := d.ready(); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, name, muscle_group, type, equipment, instructions, coach_notes
		FROM exercises WHERE LOWER(muscle_group) = LOWER(?) ORDER BY name`, muscle)
	if err != nil {
		return nil, fmt.Errorf("list exercises by muscle: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// ExerciseByName retrieves an exercise by exact name, nil when absent.
// Names are unique by convention, not constraint; the first match wins.
func (d *DB) ExerciseByName(name string) (*models.Exercise, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	row := d.db.QueryRow(`
		SELECT id, name, muscle_group, type, equipment, instructions, coach_notes
		FROM exercises WHERE name = ? LIMIT 1`, name)
	return scanExercise(row)
}

// UpdateExercise overwrites the mutable fields of an exercise.
func (d *DB) UpdateExercise(e *models.Exercise) error {
	if err := d.ready(); err != nil {
		return err
	}

	_, err := d.db.Exec(`
		UPDATE exercises
		SET name = ?, muscle_group = ?, type = ?, equipment = ?, instructions = ?, coach_notes = ?
		WHERE id = ?`,
		e.Name, e.MuscleGroup, string(e.Type), e.Equipment, e.Instructions, e.CoachNotes, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	return nil
}

// DeleteExercise removes an exercise. References from templates or
// instances are not cascaded; readers resolve them to "Unknown".
func (d *DB) DeleteExercise(id int64) error {
	if err := d.ready(); err != nil {
		return err
	}

	if _, err := d.db.Exec(`DELETE FROM exercises WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

func scanExercise(row *sql.Row) (*models.Exercise, error) {
	var (
		e   models.Exercise
		typ string
	)
	err := row.Scan(&e.ID, &e.Name, &e.MuscleGroup, &typ, &e.Equipment, &e.Instructions, &e.CoachNotes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}
	e.Type = models.ExerciseType(typ)
	return &e, nil
}

func scanExercises(rows *sql.Rows) ([]models.Exercise, error) {
	var out []models.Exercise
	for rows.Next() {
		var (
			e   models.Exercise
			typ string
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &typ, &e.Equipment, &e.Instructions, &e.CoachNotes); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		e.Type = models.ExerciseType(typ)
		out = append(out, e)
	}
	return out, rows.Err()
}
