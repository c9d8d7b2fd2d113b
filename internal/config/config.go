// Package config loads the arcade configuration from yaml.
package config

import (
	_ "embed"
	"time"
)

//go:embed defaults.yaml
var defaultYAML []byte

type Config struct {
	Window   WindowConfig        `yaml:"window"`
	Controls map[string][]string `yaml:"controls"`
	Assets   map[string]string   `yaml:"assets"`
	Runner   RunnerConfig        `yaml:"runner"`
	Dice     DiceConfig          `yaml:"dice"`
	Scores   ScoresConfig        `yaml:"scores"`
}

// The smallest window the menu graphics can be laid out in.
const (
	MinWindowWidth  = 160
	MinWindowHeight = 120
)

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// RunnerConfig tunes the side scrolling game. Distances are in pixels, times in seconds.
type RunnerConfig struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
	WallInterval float64 `yaml:"wall_interval"`
	WallWidth    float64 `yaml:"wall_width"`
	MinGap       float64 `yaml:"min_gap"`
	MaxGap       float64 `yaml:"max_gap"`
	PlayerRadius float64 `yaml:"player_radius"`
}

type DiceConfig struct {
	TargetScore       int     `yaml:"target_score"`
	ComputerHoldAt    int     `yaml:"computer_hold_at"`
	ComputerRollDelay float64 `yaml:"computer_roll_delay"`
}

func (c DiceConfig) RollDelay() time.Duration {
	return time.Duration(c.ComputerRollDelay * float64(time.Second))
}

type ScoresConfig struct {
	Database string `yaml:"database"`
}

// Default returns the configuration embedded into the binary.
func Default() Config {
	cfg, err := parse(defaultYAML)
	if err != nil {
		panic(err)
	}

	return cfg
}
