// ABOUTME: WorkoutLog and PerformanceEntry operations.
// ABOUTME: Log plus performance rows are written in one transaction.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

// AddWorkoutLog inserts a log row and bulk-inserts its performance rows as
// one all-or-nothing transaction: a failed performance insert leaves no
// orphaned log behind. Callers ensure the performance slice is non-empty.
func (d *DB) AddWorkoutLog(log *models.WorkoutLog, performance []models.PerformanceEntry) (int64, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("add workout log: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var programID, week, day any
	if log.Program != nil {
		programID = log.Program.ProgramID
		week = log.Program.Week
		day = log.Program.Day
	}

	res, err := tx.Exec(`
		INSERT INTO workout_logs (date, template_id, program_id, week, day)
		VALUES (?, ?, ?, ?, ?)`,
		log.Date, log.TemplateID, programID, week, day,
	)
	if err != nil {
		return 0, fmt.Errorf("add workout log: %w", err)
	}
	logID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add workout log id: %w", err)
	}

	for i := range performance {
		p := &performance[i]
		p.LogID = logID
		res, err := tx.Exec(`
			INSERT INTO log_performance (log_id, exercise_id, reps, weight)
			VALUES (?, ?, ?, ?)`,
			p.LogID, p.ExerciseID, p.Reps, p.Weight,
		)
		if err != nil {
			return 0, fmt.Errorf("add log performance: %w", err)
		}
		if p.ID, err = res.LastInsertId(); err != nil {
			return 0, fmt.Errorf("add log performance id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("add workout log commit: %w", err)
	}
	log.ID = logID
	return logID, nil
}

// WorkoutLogs retrieves logs, optionally bounded by inclusive ISO-8601
// dates. Empty bounds are open. ISO-8601 strings order lexicographically,
// so string comparison is date comparison.
func (d *DB) WorkoutLogs(startDate, endDate string) ([]models.WorkoutLog, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	query := `
		SELECT id, date, template_id, program_id, week, day
		FROM workout_logs`
	var args []any
	switch {
	case startDate != "" && endDate != "":
		query += ` WHERE date >= ? AND date <= ?`
		args = append(args, startDate, endDate)
	case startDate != "":
		query += ` WHERE date >= ?`
		args = append(args, startDate)
	case endDate != "":
		query += ` WHERE date <= ?`
		args = append(args, endDate)
	}
	query += ` ORDER BY date`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	defer rows.Close()

	var out []models.WorkoutLog
	for rows.Next() {
		log, err := scanWorkoutLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *log)
	}
	return out, rows.Err()
}

// GetWorkoutLog retrieves one log by id, without performance rows. Nil
// when absent.
func (d *DB) GetWorkoutLog(id int64) (*models.WorkoutLog, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, date, template_id, program_id, week, day
		FROM workout_logs WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get workout log: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanWorkoutLog(rows)
}

// LogPerformance retrieves the performance rows for one log, in set order.
func (d *DB) LogPerformance(logID int64) ([]models.PerformanceEntry, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, log_id, exercise_id, reps, weight
		FROM log_performance WHERE log_id = ? ORDER BY id`, logID)
	if err != nil {
		return nil, fmt.Errorf("list log performance: %w", err)
	}
	defer rows.Close()

	var out []models.PerformanceEntry
	for rows.Next() {
		var p models.PerformanceEntry
		if err := rows.Scan(&p.ID, &p.LogID, &p.ExerciseID, &p.Reps, &p.Weight); err != nil {
			return nil, fmt.Errorf("scan log performance: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanWorkoutLog(rows *sql.Rows) (*models.WorkoutLog, error) {
	var (
		log       models.WorkoutLog
		programID sql.NullInt64
		week, day sql.NullInt64
	)
	if err := rows.Scan(&log.ID, &log.Date, &log.TemplateID, &programID, &week, &day); err != nil {
		return nil, fmt.Errorf("scan workout log: %w", err)
	}
	if programID.Valid {
		log.Program = &models.ProgramRef{
			ProgramID: programID.Int64,
			Week:      int(week.Int64),
			Day:       int(day.Int64),
		}
	}
	return &log, nil
}
