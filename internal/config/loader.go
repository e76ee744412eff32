package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game's configuration.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are decoded over the hardcoded defaults, so a partial file only
// overrides the keys it names.
func load[T any](id, customPath string, embedded []byte, fallback func() T) (T, error) {
	cfg := fallback()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := id + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = fallback()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = fallback()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
}

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, defaultSnakeYAML, DefaultSnakeConfig)
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris", customPath, defaultTetrisYAML, DefaultTetrisConfig)
}
