// ABOUTME: Program, Block, and ProgramProgress operations.
// ABOUTME: Progress rows are created lazily and merged on update.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

// AddProgram inserts a program; schedule, goals, and workout descriptions
// are stored as JSON columns.
func (d *DB) AddProgram(p *models.Program) (int64, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}

	goals, err := json.Marshal(p.Goals)
	if err != nil {
		return 0, fmt.Errorf("marshal program goals: %w", err)
	}
	schedule, err := json.Marshal(p.Schedule)
	if err != nil {
		return 0, fmt.Errorf("marshal program schedule: %w", err)
	}
	descriptions, err := json.Marshal(p.WorkoutDescriptions)
	if err != nil {
		return 0, fmt.Errorf("marshal workout descriptions: %w", err)
	}

	res, err := d.db.Exec(`
		INSERT INTO programs (name, description, duration_weeks, philosophy, goals, schedule, workout_descriptions)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.DurationWeeks, p.Philosophy,
		string(goals), string(schedule), string(descriptions),
	)
	if err != nil {
		return 0, fmt.Errorf("add program: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add program id: %w", err)
	}
	p.ID = id
	return id, nil
}

// GetProgram retrieves a program by id, nil when absent.
func (d *DB) GetProgram(id int64) (*models.Program, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	row := d.db.QueryRow(`
		SELECT id, name, description, duration_weeks, philosophy, goals, schedule, workout_descriptions
		FROM programs WHERE id = ?`, id)
	return scanProgram(row)
}

// ProgramByName retrieves a program by exact name, nil when absent. The
// seed loader uses this as its idempotency marker.
func (d *DB) ProgramByName(name string) (*models.Program, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	row := d.db.QueryRow(`
		SELECT id, name, description, duration_weeks, philosophy, goals, schedule, workout_descriptions
		FROM programs WHERE name = ? LIMIT 1`, name)
	return scanProgram(row)
}

// AllPrograms retrieves every program.
func (d *DB) AllPrograms() ([]models.Program, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, name, description, duration_weeks, philosophy, goals, schedule, workout_descriptions
		FROM programs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	var out []models.Program
	for rows.Next() {
		p, err := scanProgramRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// DeleteProgram removes a program; its blocks cascade, its progress row is
// removed alongside.
func (d *DB) DeleteProgram(id int64) error {
	if err := d.ready(); err != nil {
		return err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM programs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM program_progress WHERE program_id = ?`, id); err != nil {
		return fmt.Errorf("delete program progress: %w", err)
	}
	return tx.Commit()
}

// GetProgramProgress reads a program's progress row, creating and
// persisting one at week 1, day 1 when none exists yet. It is both a
// reader and a lazy initializer.
func (d *DB) GetProgramProgress(programID int64) (*models.ProgramProgress, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	prog, err := d.readProgress(programID)
	if err != nil {
		return nil, err
	}
	if prog != nil {
		return prog, nil
	}

	prog = models.NewProgramProgress(programID)
	if err := d.writeProgress(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

// UpdateProgramProgress shallow-merges the non-nil update fields into the
// current progress row (initializing it if absent) and writes the result
// back. Last writer wins.
func (d *DB) UpdateProgramProgress(programID int64, update models.ProgressUpdate) (*models.ProgramProgress, error) {
	prog, err := d.GetProgramProgress(programID)
	if err != nil {
		return nil, err
	}

	if update.CurrentWeek != nil {
		prog.CurrentWeek = *update.CurrentWeek
	}
	if update.CurrentDay != nil {
		prog.CurrentDay = *update.CurrentDay
	}
	if update.LastWorkoutDate != nil {
		prog.LastWorkoutDate = update.LastWorkoutDate
	}

	if err := d.writeProgress(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

// ResetProgramProgress unconditionally rewrites progress to week 1, day 1
// with a fresh start date and no last-workout date.
func (d *DB) ResetProgramProgress(programID int64) (*models.ProgramProgress, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	prog := models.NewProgramProgress(programID)
	if err := d.writeProgress(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

// AddBlock inserts a training block for a program.
func (d *DB) AddBlock(b *models.Block) (int64, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}

	res, err := d.db.Exec(`
		INSERT INTO blocks (program_id, block_number, name, goals, skill_a, skill_b, week_start, week_end)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ProgramID, b.BlockNumber, b.Name, b.Goals, b.SkillA, b.SkillB, b.WeekStart, b.WeekEnd,
	)
	if err != nil {
		return 0, fmt.Errorf("add block: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add block id: %w", err)
	}
	b.ID = id
	return id, nil
}

// BlocksByProgram retrieves a program's blocks ordered by block number.
func (d *DB) BlocksByProgram(programID int64) ([]models.Block, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, program_id, block_number, name, goals, skill_a, skill_b, week_start, week_end
		FROM blocks WHERE program_id = ? ORDER BY block_number`, programID)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()

	var out []models.Block
	for rows.Next() {
		var b models.Block
		if err := rows.Scan(&b.ID, &b.ProgramID, &b.BlockNumber, &b.Name,
			&b.Goals, &b.SkillA, &b.SkillB, &b.WeekStart, &b.WeekEnd); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// BlockForWeek returns the block covering a week of a program, nil when
// the week falls outside every block.
func (d *DB) BlockForWeek(programID int64, week int) (*models.Block, error) {
	blocks, err := d.BlocksByProgram(programID)
	if err != nil {
		return nil, err
	}
	for i := range blocks {
		if week >= blocks[i].WeekStart && week <= blocks[i].WeekEnd {
			return &blocks[i], nil
		}
	}
	return nil, nil
}

func (d *DB) readProgress(programID int64) (*models.ProgramProgress, error) {
	var (
		prog     models.ProgramProgress
		start    string
		lastDate sql.NullString
	)
	err := d.db.QueryRow(`
		SELECT program_id, current_week, current_day, start_date, last_workout_date
		FROM program_progress WHERE program_id = ?`, programID).
		Scan(&prog.ProgramID, &prog.CurrentWeek, &prog.CurrentDay, &start, &lastDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get program progress: %w", err)
	}

	prog.StartDate, _ = time.Parse(time.RFC3339, start)
	if lastDate.Valid {
		t, _ := time.Parse(time.RFC3339, lastDate.String)
		prog.LastWorkoutDate = &t
	}
	return &prog, nil
}

func (d *DB) writeProgress(prog *models.ProgramProgress) error {
	var last any
	if prog.LastWorkoutDate != nil {
		last = prog.LastWorkoutDate.UTC().Format(time.RFC3339)
	}
	_, err := d.db.Exec(`
		INSERT INTO program_progress (program_id, current_week, current_day, start_date, last_workout_date)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(program_id) DO UPDATE SET
			current_week = excluded.current_week,
			current_day = excluded.current_day,
			start_date = excluded.start_date,
			last_workout_date = excluded.last_workout_date`,
		prog.ProgramID, prog.CurrentWeek, prog.CurrentDay,
		prog.StartDate.UTC().Format(time.RFC3339), last,
	)
	if err != nil {
		return fmt.Errorf("write program progress: %w", err)
	}
	return nil
}

func scanProgram(row *sql.Row) (*models.Program, error) {
	var (
		p                             models.Program
		goals, schedule, descriptions string
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.DurationWeeks,
		&p.Philosophy, &goals, &schedule, &descriptions)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan program: %w", err)
	}
	if err := unmarshalProgramJSON(&p, goals, schedule, descriptions); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProgramRow(rows *sql.Rows) (*models.Program, error) {
	var (
		p                             models.Program
		goals, schedule, descriptions string
	)
	err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.DurationWeeks,
		&p.Philosophy, &goals, &schedule, &descriptions)
	if err != nil {
		return nil, fmt.Errorf("scan program: %w", err)
	}
	if err := unmarshalProgramJSON(&p, goals, schedule, descriptions); err != nil {
		return nil, err
	}
	return &p, nil
}

func unmarshalProgramJSON(p *models.Program, goals, schedule, descriptions string) error {
	if err := json.Unmarshal([]byte(goals), &p.Goals); err != nil {
		return fmt.Errorf("unmarshal program goals: %w", err)
	}
	if err := json.Unmarshal([]byte(schedule), &p.Schedule); err != nil {
		return fmt.Errorf("unmarshal program schedule: %w", err)
	}
	if err := json.Unmarshal([]byte(descriptions), &p.WorkoutDescriptions); err != nil {
		return fmt.Errorf("unmarshal workout descriptions: %w", err)
	}
	return nil
}
