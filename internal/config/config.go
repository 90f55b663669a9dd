// ABOUTME: Fitrack configuration management.
// ABOUTME: Handles the config file, path expansion, and the guarded store factory.

package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tomaszwojcikowski/fitrack3/internal/guard"
	"github.com/tomaszwojcikowski/fitrack3/internal/storage"
)

// Config stores fitrack configuration.
type Config struct {
	// DataDir is the root directory for data storage; fitrack.db lives
	// here. Supports ~ expansion for home directory. Defaults to
	// ~/.local/share/fitrack.
	DataDir string `json:"data_dir,omitempty"`

	// SeedProgram controls whether the bundled 20-week program is
	// installed on first run. Defaults to true.
	SeedProgram *bool `json:"seed_program,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetSeedProgram reports whether first-run seeding is enabled.
func (c *Config) GetSeedProgram() bool {
	if c.SeedProgram == nil {
		return true
	}
	return *c.SeedProgram
}

// DBPath returns the database file path under the configured data dir.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "fitrack.db")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates an availability guard around the configured database
// and runs its initial probe. The guard is returned even when the probe
// fails; callers read its status to decide what to tell the user.
func (c *Config) OpenStore(logger *slog.Logger) *guard.Guard {
	dbPath := c.DBPath()
	g := guard.New(func() (*storage.DB, error) {
		return storage.Open(dbPath)
	}, logger)
	g.Check()
	return g
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitrack", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
