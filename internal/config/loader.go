package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory under $HOME for configs, the score
// database and screenshots.
const AppDir = ".whale"

const configFile = "whale.yaml"

// LoadWhale loads the round configuration.
// Search order: customPath -> ~/.whale/configs/whale.yaml -> ./configs/whale.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys
// it changes. A custom path that cannot be read or parsed is an error; the
// other locations are skipped silently.
func LoadWhale(customPath string) (WhaleConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WhaleConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return WhaleConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultWhaleYAML)
	if err != nil {
		return DefaultWhaleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(data []byte) (WhaleConfig, error) {
	cfg := DefaultWhaleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WhaleConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg WhaleConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// UserPath joins elem under ~/.whale, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}
