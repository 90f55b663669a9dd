// ABOUTME: Versioned SQLite schema definition and upgrade migrations.
// ABOUTME: Tracks applied versions in schema_version; steps never re-run.
package storage

import (
	"database/sql"
	"fmt"
)

// latestSchemaVersion is the schema version a fresh database is created at.
// Increment when adding a migration step.
const latestSchemaVersion = 6

// migration brings the schema from (version-1) to version. Steps are
// applied strictly in order inside one transaction each; a populated step
// must be idempotent in its data effects (backfills use guarded UPDATEs,
// column adds check for presence first).
type migration struct {
	version int
	name    string
	apply   func(tx *sql.Tx) error
}

var migrations = []migration{
	{1, "base tables", applyV1},
	{2, "exercise instructions and coach notes", applyV2},
	{3, "programs, progress, blocks, mobility flows", applyV3},
	{4, "exercise instances", applyV4},
	{5, "program position on workout logs", applyV5},
	{6, "performance range constraints", applyV6},
}

// migrate brings an open database up to latestSchemaVersion, applying
// every intervening step in order and never skipping versions.
func (d *DB) migrate() error {
	if _, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version    INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		)`); err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	current, err := d.SchemaVersion()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if m.version != current+1 {
			return fmt.Errorf("schema version gap: at %d, next step is %d", current, m.version)
		}

		tx, err := d.db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}
		if err := m.apply(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, m.version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}
		current = m.version
	}

	return nil
}

// SchemaVersion returns the highest applied schema version, 0 for a fresh
// database.
func (d *DB) SchemaVersion() (int, error) {
	var version sql.NullInt64
	err := d.db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return int(version.Int64), nil
}

func applyV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE IF NOT EXISTS exercises (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		name         TEXT NOT NULL,
		muscle_group TEXT NOT NULL,
		type         TEXT NOT NULL,
		equipment    TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS workout_templates (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS template_exercises (
		template_id INTEGER NOT NULL REFERENCES workout_templates(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		PRIMARY KEY (template_id, position)
	);

	CREATE TABLE IF NOT EXISTS workout_logs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		date        TEXT NOT NULL,
		template_id INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS log_performance (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		log_id      INTEGER NOT NULL REFERENCES workout_logs(id) ON DELETE CASCADE,
		exercise_id INTEGER NOT NULL,
		reps        INTEGER NOT NULL,
		weight      REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS user_settings (
		key         TEXT PRIMARY KEY,
		weight_unit TEXT NOT NULL DEFAULT 'lbs',
		theme       TEXT NOT NULL DEFAULT 'light'
	);

	CREATE INDEX IF NOT EXISTS idx_exercises_muscle ON exercises(muscle_group);
	CREATE INDEX IF NOT EXISTS idx_exercises_name ON exercises(name);
	CREATE INDEX IF NOT EXISTS idx_template_exercises_exercise ON template_exercises(exercise_id);
	CREATE INDEX IF NOT EXISTS idx_logs_date ON workout_logs(date);
	CREATE INDEX IF NOT EXISTS idx_logs_template ON workout_logs(template_id);
	CREATE INDEX IF NOT EXISTS idx_performance_log ON log_performance(log_id);
	CREATE INDEX IF NOT EXISTS idx_performance_exercise ON log_performance(exercise_id);
	`)
	return err
}

func applyV2(tx *sql.Tx) error {
	for _, col := range []string{"instructions", "coach_notes"} {
		present, err := hasColumn(tx, "exercises", col)
		if err != nil {
			return err
		}
		if present {
			continue
		}
		if _, err := tx.Exec(fmt.Sprintf(`ALTER TABLE exercises ADD COLUMN %s TEXT`, col)); err != nil {
			return err
		}
	}

	// Backfill pre-existing rows with empty strings. Safe to run twice.
	_, err := tx.Exec(`
		UPDATE exercises SET instructions = '' WHERE instructions IS NULL;
		UPDATE exercises SET coach_notes  = '' WHERE coach_notes  IS NULL;
	`)
	return err
}

func applyV3(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE IF NOT EXISTS programs (
		id                   INTEGER PRIMARY KEY AUTOINCREMENT,
		name                 TEXT NOT NULL,
		description          TEXT NOT NULL DEFAULT '',
		duration_weeks       INTEGER NOT NULL,
		philosophy           TEXT NOT NULL DEFAULT '',
		goals                TEXT NOT NULL DEFAULT '[]',
		schedule             TEXT NOT NULL DEFAULT '{}',
		workout_descriptions TEXT NOT NULL DEFAULT '{}'
	);

	CREATE TABLE IF NOT EXISTS program_progress (
		program_id        INTEGER PRIMARY KEY,
		current_week      INTEGER NOT NULL DEFAULT 1,
		current_day       INTEGER NOT NULL DEFAULT 1,
		start_date        TEXT NOT NULL,
		last_workout_date TEXT
	);

	CREATE TABLE IF NOT EXISTS blocks (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		program_id   INTEGER NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		block_number INTEGER NOT NULL,
		name         TEXT NOT NULL,
		goals        TEXT NOT NULL DEFAULT '',
		skill_a      TEXT NOT NULL DEFAULT '',
		skill_b      TEXT NOT NULL DEFAULT '',
		week_start   INTEGER NOT NULL,
		week_end     INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS mobility_flows (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		flow_number INTEGER NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		duration    TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_programs_name ON programs(name);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_blocks_program_number ON blocks(program_id, block_number);
	CREATE INDEX IF NOT EXISTS idx_flows_number ON mobility_flows(flow_number);
	`)
	return err
}

func applyV4(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE IF NOT EXISTS exercise_instances (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		template_id INTEGER NOT NULL REFERENCES workout_templates(id) ON DELETE CASCADE,
		exercise_id INTEGER NOT NULL,
		phase       TEXT NOT NULL,
		label       TEXT NOT NULL DEFAULT '',
		sets        TEXT NOT NULL DEFAULT '',
		reps        TEXT NOT NULL DEFAULT '',
		rest        TEXT NOT NULL DEFAULT '',
		time        TEXT NOT NULL DEFAULT '',
		weight      TEXT NOT NULL DEFAULT '',
		notes       TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_instances_template_phase ON exercise_instances(template_id, phase);
	CREATE INDEX IF NOT EXISTS idx_instances_label ON exercise_instances(label);
	`)
	return err
}

func applyV5(tx *sql.Tx) error {
	for _, col := range []string{"program_id", "week", "day"} {
		present, err := hasColumn(tx, "workout_logs", col)
		if err != nil {
			return err
		}
		if present {
			continue
		}
		if _, err := tx.Exec(fmt.Sprintf(`ALTER TABLE workout_logs ADD COLUMN %s INTEGER`, col)); err != nil {
			return err
		}
	}
	return nil
}

// applyV6 rebuilds log_performance with CHECK constraints on reps and
// weight. SQLite cannot add a CHECK to an existing table, so the step
// copies rows into a replacement table and renames it into place.
func applyV6(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE log_performance_v6 (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		log_id      INTEGER NOT NULL REFERENCES workout_logs(id) ON DELETE CASCADE,
		exercise_id INTEGER NOT NULL,
		reps        INTEGER NOT NULL CHECK (reps >= 1),
		weight      REAL NOT NULL CHECK (weight >= 0)
	);

	INSERT INTO log_performance_v6 (id, log_id, exercise_id, reps, weight)
		SELECT id, log_id, exercise_id, MAX(reps, 1), MAX(weight, 0)
		FROM log_performance;

	DROP TABLE log_performance;
	ALTER TABLE log_performance_v6 RENAME TO log_performance;

	CREATE INDEX IF NOT EXISTS idx_performance_log ON log_performance(log_id);
	CREATE INDEX IF NOT EXISTS idx_performance_exercise ON log_performance(exercise_id);
	`)
	return err
}

// hasColumn reports whether a table already declares a column.
func hasColumn(tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return false, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return false, fmt.Errorf("scan table_info %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
