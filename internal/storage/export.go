// ABOUTME: Full-database export and import for backups.
// ABOUTME: Supports JSON and YAML envelopes.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

// ExportData is the full export envelope. ExportID makes independently
// produced dumps distinguishable.
type ExportData struct {
	Version       string                    `json:"version" yaml:"version"`
	ExportID      string                    `json:"export_id" yaml:"export_id"`
	ExportedAt    time.Time                 `json:"exported_at" yaml:"exported_at"`
	Tool          string                    `json:"tool" yaml:"tool"`
	SchemaVersion int                       `json:"schema_version" yaml:"schema_version"`
	Exercises     []models.Exercise         `json:"exercises" yaml:"exercises"`
	Templates     []models.WorkoutTemplate  `json:"templates" yaml:"templates"`
	Instances     []models.ExerciseInstance `json:"instances" yaml:"instances"`
	Logs          []models.WorkoutLog       `json:"logs" yaml:"logs"`
	Programs      []models.Program          `json:"programs" yaml:"programs"`
	Blocks        []models.Block            `json:"blocks" yaml:"blocks"`
	Flows         []models.MobilityFlow     `json:"flows" yaml:"flows"`
	Settings      []models.UserSettings     `json:"settings" yaml:"settings"`
}

// GetAllData retrieves every table for export. Logs carry their
// performance rows inline.
func (d *DB) GetAllData() (*ExportData, error) {
	schemaVersion, err := d.SchemaVersion()
	if err != nil {
		return nil, err
	}

	exercises, err := d.AllExercises()
	if err != nil {
		return nil, fmt.Errorf("export exercises: %w", err)
	}
	templates, err := d.AllTemplates()
	if err != nil {
		return nil, fmt.Errorf("export templates: %w", err)
	}

	var instances []models.ExerciseInstance
	for _, t := range templates {
		insts, err := d.InstancesByTemplate(t.ID)
		if err != nil {
			return nil, fmt.Errorf("export instances: %w", err)
		}
		instances = append(instances, insts...)
	}

	logs, err := d.WorkoutLogs("", "")
	if err != nil {
		return nil, fmt.Errorf("export logs: %w", err)
	}
	for i := range logs {
		perf, err := d.LogPerformance(logs[i].ID)
		if err != nil {
			return nil, fmt.Errorf("export log performance: %w", err)
		}
		logs[i].Performance = perf
	}

	programs, err := d.AllPrograms()
	if err != nil {
		return nil, fmt.Errorf("export programs: %w", err)
	}

	var blocks []models.Block
	for _, p := range programs {
		bs, err := d.BlocksByProgram(p.ID)
		if err != nil {
			return nil, fmt.Errorf("export blocks: %w", err)
		}
		blocks = append(blocks, bs...)
	}

	flows, err := d.AllMobilityFlows()
	if err != nil {
		return nil, fmt.Errorf("export flows: %w", err)
	}

	var settings []models.UserSettings
	if s, err := d.GetUserSettings(models.DefaultSettingsKey); err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	} else if s != nil {
		settings = append(settings, *s)
	}

	return &ExportData{
		Version:       "1.0",
		ExportID:      uuid.NewString(),
		ExportedAt:    time.Now().UTC(),
		Tool:          "fitrack",
		SchemaVersion: schemaVersion,
		Exercises:     exercises,
		Templates:     templates,
		Instances:     instances,
		Logs:          logs,
		Programs:      programs,
		Blocks:        blocks,
		Flows:         flows,
		Settings:      settings,
	}, nil
}

// MarshalIndentJSON renders the export as indented JSON.
func (e *ExportData) MarshalIndentJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// MarshalYAMLBytes renders the export as YAML.
func (e *ExportData) MarshalYAMLBytes() ([]byte, error) {
	return yaml.Marshal(e)
}
