package config

import (
	_ "embed"
)

//go:embed defaults/hunt.yaml
var defaultHuntYAML []byte

// DefaultConfig returns the hard-coded configuration.
func DefaultConfig() HuntConfig {
	return HuntConfig{
		Grid: GridConfig{
			Rows: 5,
			Cols: 5,
		},
		Seed:   0,
		DBPath: "hunt.db",
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:            ":2323",
			HostKey:            ".ssh/hunt_ed25519",
			IdleTimeoutMinutes: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHuntYAML
}
