// ABOUTME: MobilityFlow catalog operations.
// ABOUTME: Flows are ordered by flow number, the library's ordering key.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

// AddMobilityFlow inserts a flow and returns its id.
func (d *DB) AddMobilityFlow(f *models.MobilityFlow) (int64, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}

	res, err := d.db.Exec(`
		INSERT INTO mobility_flows (name, flow_number, description, duration)
		VALUES (?, ?, ?, ?)`,
		f.Name, f.FlowNumber, f.Description, f.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("add mobility flow: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add mobility flow id: %w", err)
	}
	f.ID = id
	return id, nil
}

// AllMobilityFlows retrieves the flow library ordered by flow number.
func (d *DB) AllMobilityFlows() ([]models.MobilityFlow, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, name, flow_number, description, duration
		FROM mobility_flows ORDER BY flow_number`)
	if err != nil {
		return nil, fmt.Errorf("list mobility flows: %w", err)
	}
	defer rows.Close()

	var out []models.MobilityFlow
	for rows.Next() {
		var f models.MobilityFlow
		if err := rows.Scan(&f.ID, &f.Name, &f.FlowNumber, &f.Description, &f.Duration); err != nil {
			return nil, fmt.Errorf("scan mobility flow: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// MobilityFlowByName retrieves a flow by exact name, nil when absent.
func (d *DB) MobilityFlowByName(name string) (*models.MobilityFlow, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	var f models.MobilityFlow
	err := d.db.QueryRow(`
		SELECT id, name, flow_number, description, duration
		FROM mobility_flows WHERE name = ? LIMIT 1`, name).
		Scan(&f.ID, &f.Name, &f.FlowNumber, &f.Description, &f.Duration)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get mobility flow: %w", err)
	}
	return &f, nil
}

// DeleteMobilityFlow removes a flow from the library.
func (d *DB) DeleteMobilityFlow(id int64) error {
	if err := d.ready(); err != nil {
		return err
	}

	if _, err := d.db.Exec(`DELETE FROM mobility_flows WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete mobility flow: %w", err)
	}
	return nil
}
