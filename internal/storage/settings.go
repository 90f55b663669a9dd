// ABOUTME: UserSettings operations, keyed by a string settings key.
// ABOUTME: Save is an upsert; reads of absent keys return nil.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

// GetUserSettings retrieves settings for a key, nil when never saved.
func (d *DB) GetUserSettings(key string) (*models.UserSettings, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	var (
		s     models.UserSettings
		unit  string
		theme string
	)
	err := d.db.QueryRow(`
		SELECT key, weight_unit, theme FROM user_settings WHERE key = ?`, key).
		Scan(&s.Key, &unit, &theme)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user settings: %w", err)
	}
	s.WeightUnit = models.WeightUnit(unit)
	s.Theme = models.Theme(theme)
	return &s, nil
}

// SaveUserSettings writes settings for a key, inserting or overwriting.
func (d *DB) SaveUserSettings(s *models.UserSettings) error {
	if err := d.ready(); err != nil {
		return err
	}

	_, err := d.db.Exec(`
		INSERT INTO user_settings (key, weight_unit, theme)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			weight_unit = excluded.weight_unit,
			theme = excluded.theme`,
		s.Key, string(s.WeightUnit), string(s.Theme),
	)
	if err != nil {
		return fmt.Errorf("save user settings: %w", err)
	}
	return nil
}
