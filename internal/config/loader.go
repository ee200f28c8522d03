package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the hunt configuration.
// Search order: customPath -> ~/.hunt/config.yaml -> ./configs/hunt.yaml -> embedded default
func Load(customPath string) (HuntConfig, error) {
	var cfg HuntConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.fillDefaults()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.fillDefaults()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	cfg = HuntConfig{}
	if data, err := os.ReadFile(filepath.Join("configs", "hunt.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.fillDefaults()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = HuntConfig{}
	if err := yaml.Unmarshal(defaultHuntYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.fillDefaults()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hunt", filename)
}
