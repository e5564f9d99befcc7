package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvWindowSize   = "SNAKE_WINDOW_SIZE"
	EnvBlockSize    = "SNAKE_BLOCK_SIZE"
	EnvFPS          = "SNAKE_FPS"
	EnvUpdatePeriod = "SNAKE_UPDATE_PERIOD"
)

// Load loads the snake configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over the defaults, so a file may set only the keys it changes.
func Load(customPath string) (Snake, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Snake{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Snake{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnake(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration.
func Parse(data []byte) (Snake, error) {
	cfg := DefaultSnake()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Snake{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Snake) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// ApplyEnv overrides numeric settings from the environment.
// Unset variables leave the config unchanged.
func ApplyEnv(cfg *Snake) error {
	overrides := []struct {
		name string
		dst  *int
	}{
		{EnvWindowSize, &cfg.World.WindowSize},
		{EnvBlockSize, &cfg.World.BlockSize},
		{EnvFPS, &cfg.Timing.FPS},
		{EnvUpdatePeriod, &cfg.Timing.UpdatePeriod},
	}

	for _, o := range overrides {
		raw, ok := os.LookupEnv(o.name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %s=%q is not an integer: %w", o.name, raw, err)
		}
		*o.dst = v
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
