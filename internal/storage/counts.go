// ABOUTME: Row-count queries used by the liveness probe and diagnostics.
// ABOUTME: Table names are drawn from a fixed list, never caller input.
package storage

import (
	"context"
	"fmt"
)

// Tables lists every data table, in diagnostics display order.
var Tables = []string{
	"exercises",
	"workout_templates",
	"exercise_instances",
	"workout_logs",
	"log_performance",
	"user_settings",
	"programs",
	"program_progress",
	"blocks",
	"mobility_flows",
}

// CountExercises is the liveness probe query: opening a database can
// succeed while reads still fail, so availability checks count rows too.
func (d *DB) CountExercises() (int64, error) {
	return d.CountTable(context.Background(), "exercises")
}

// CountTable counts the rows of one known table. The context bounds the
// query so one stalled table cannot wedge a diagnostics sweep.
func (d *DB) CountTable(ctx context.Context, table string) (int64, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	if !knownTable(table) {
		return 0, fmt.Errorf("unknown table: %s", table)
	}

	var n int64
	err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func knownTable(table string) bool {
	for _, t := range Tables {
		if t == table {
			return true
		}
	}
	return false
}
