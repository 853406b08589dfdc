// Package config loads the simulator's tunables from a YAML file, falling
// back to built-in defaults when no file is present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChaseStyle selects how chasing ghosts pick their next move.
const (
	ChaseGreedy = "greedy" // local neighbor search toward the target tile
	ChaseAStar  = "astar"  // full A* pursuit of the personality target
)

// Config is the complete tunable surface. Durations are seconds, speeds are
// pixels per second.
type Config struct {
	TileSize    float64 `yaml:"tileSize"`
	PlayerSpeed float64 `yaml:"playerSpeed"`
	GhostSpeed  float64 `yaml:"ghostSpeed"`

	FrightenedDuration float64 `yaml:"frightenedDuration"`
	FrightenedSpeedMul float64 `yaml:"frightenedSpeedMul"`
	EatenDuration      float64 `yaml:"eatenDuration"`
	DyingDuration      float64 `yaml:"dyingDuration"`

	StartingLives int    `yaml:"startingLives"`
	ChaseStyle    string `yaml:"chaseStyle"`

	AudioEnabled bool `yaml:"audioEnabled"`
}

// Default returns the built-in configuration, matching the classic tuning:
// 7s frightened window, 3s eaten recovery, 1.5s death pause, 3 lives.
func Default() *Config {
	return &Config{
		TileSize:           25,
		PlayerSpeed:        120,
		GhostSpeed:         90,
		FrightenedDuration: 7,
		FrightenedSpeedMul: 0.5,
		EatenDuration:      3,
		DyingDuration:      1.5,
		StartingLives:      3,
		ChaseStyle:         ChaseAStar,
		AudioEnabled:       false,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged; a missing or malformed file is an error so a user typo
// never silently reverts to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("tileSize must be positive, got %v", c.TileSize)
	}
	if c.PlayerSpeed <= 0 || c.GhostSpeed <= 0 {
		return fmt.Errorf("speeds must be positive, got player=%v ghost=%v", c.PlayerSpeed, c.GhostSpeed)
	}
	if c.StartingLives <= 0 {
		return fmt.Errorf("startingLives must be positive, got %d", c.StartingLives)
	}
	if c.ChaseStyle != ChaseGreedy && c.ChaseStyle != ChaseAStar {
		return fmt.Errorf("chaseStyle must be %q or %q, got %q", ChaseGreedy, ChaseAStar, c.ChaseStyle)
	}
	return nil
}
