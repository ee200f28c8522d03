// Package config provides YAML-based configuration loading and difficulty
// presets for the treasure hunt hosts.
package config

import "github.com/vovakirdan/treasure-hunt/internal/core"

// HuntConfig contains all host configuration.
type HuntConfig struct {
	Grid       GridConfig `yaml:"grid"`
	Seed       int64      `yaml:"seed"` // 0 = time-based
	DBPath     string     `yaml:"db_path"`
	LayoutsDir string     `yaml:"layouts_dir"`
	Log        LogConfig  `yaml:"log"`
	SSH        SSHConfig  `yaml:"ssh"`
}

// GridConfig defines the default board size.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// LogConfig defines host logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SSHConfig defines the Wish server settings.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Runtime converts the config into the engine's runtime configuration.
func (c HuntConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Rows: c.Grid.Rows,
		Cols: c.Grid.Cols,
		Seed: c.Seed,
	}
}

// fillDefaults replaces zero values with the hard-coded defaults so a partial
// YAML file still yields a usable config.
func (c *HuntConfig) fillDefaults() {
	def := DefaultConfig()
	if c.Grid.Rows <= 0 {
		c.Grid.Rows = def.Grid.Rows
	}
	if c.Grid.Cols <= 0 {
		c.Grid.Cols = def.Grid.Cols
	}
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.SSH.Address == "" {
		c.SSH.Address = def.SSH.Address
	}
	if c.SSH.HostKey == "" {
		c.SSH.HostKey = def.SSH.HostKey
	}
	if c.SSH.IdleTimeoutMinutes <= 0 {
		c.SSH.IdleTimeoutMinutes = def.SSH.IdleTimeoutMinutes
	}
}
