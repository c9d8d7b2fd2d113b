package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.phases/config.yaml -> ./configs/phases.yaml -> embedded default.
// Values missing in a file keep their default value.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", customPath, err)
		}

		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", customPath, err)
		}

		return cfg, nil
	}

	for _, candidate := range []string{userConfigPath(), filepath.Join("configs", "phases.yaml")} {
		if candidate == "" {
			continue
		}

		data, err := os.ReadFile(candidate)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", candidate, err)
		}

		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", candidate, err)
		}

		return cfg, nil
	}

	return Default(), nil
}

// parse decodes the data on top of the embedded defaults.
func parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("embedded defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values that would break the games.
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width < MinWindowWidth || c.Window.Height < MinWindowHeight {
		errs = append(errs, fmt.Errorf("window size must be at least %dx%d, got %dx%d",
			MinWindowWidth, MinWindowHeight, c.Window.Width, c.Window.Height))
	}

	if c.Runner.MinGap <= 0 || c.Runner.MaxGap < c.Runner.MinGap {
		errs = append(errs, fmt.Errorf("runner gap range [%v, %v] is invalid", c.Runner.MinGap, c.Runner.MaxGap))
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"runner wall_interval", c.Runner.WallInterval},
		{"runner scroll_speed", c.Runner.ScrollSpeed},
		{"runner flap_impulse", c.Runner.FlapImpulse},
		{"runner player_radius", c.Runner.PlayerRadius},
		{"dice target_score", float64(c.Dice.TargetScore)},
		{"dice computer_hold_at", float64(c.Dice.ComputerHoldAt)},
		{"dice computer_roll_delay", c.Dice.ComputerRollDelay},
	}

	for _, field := range positive {
		if field.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", field.name, field.value))
		}
	}

	return errors.Join(errs...)
}

// ExpandHome replaces a leading ~ with the users home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand home directory: %w", err)
	}

	return filepath.Join(home, path[1:]), nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".phases", "config.yaml")
}
