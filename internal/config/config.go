// Package config provides YAML-based configuration loading and the fixed
// timing presets for the whale simulator.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-whale/internal/core"
	"github.com/vovakirdan/tui-whale/internal/whale"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// WhaleConfig contains all configuration for a round.
// Durations are plain milliseconds, the round length is in seconds.
type WhaleConfig struct {
	Field    FieldConfig   `yaml:"field"`
	Whale    WhaleSettings `yaml:"whale"`
	Krill    KrillConfig   `yaml:"krill"`
	Boats    BoatConfig    `yaml:"boats"`
	Harpoons HarpoonConfig `yaml:"harpoons"`
	Round    RoundConfig   `yaml:"round"`
}

// FieldConfig defines the layout of the playing field.
type FieldConfig struct {
	ReservedTop int `yaml:"reserved_top"` // Rows above the water
}

// WhaleSettings defines whale parameters.
type WhaleSettings struct {
	StunMS int `yaml:"stun_ms"`
}

// KrillConfig defines krill spawning.
type KrillConfig struct {
	SpawnMinMS int `yaml:"spawn_min_ms"`
	SpawnMaxMS int `yaml:"spawn_max_ms"`
	Density    int `yaml:"density"` // One krill per this many cells
}

// BoatConfig defines boat spawning and movement.
type BoatConfig struct {
	SpawnMinMS int `yaml:"spawn_min_ms"`
	SpawnMaxMS int `yaml:"spawn_max_ms"`
	MoveMS     int `yaml:"move_ms"`
}

// HarpoonConfig defines harpoon launching and falling.
type HarpoonConfig struct {
	LaunchMinMS int `yaml:"launch_min_ms"`
	LaunchMaxMS int `yaml:"launch_max_ms"`
	MoveMS      int `yaml:"move_ms"`
}

// RoundConfig defines round pacing.
type RoundConfig struct {
	LengthSec int `yaml:"length_sec"`
	TickRate  int `yaml:"tick_rate"`
}

// Validate checks every field and reports the first problem found.
func (c WhaleConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"field.reserved_top must be at least 2", c.Field.ReservedTop >= 2},
		{"whale.stun_ms must be positive", c.Whale.StunMS > 0},
		{"krill.spawn_min_ms must not be negative", c.Krill.SpawnMinMS >= 0},
		{"krill.spawn_max_ms must be above spawn_min_ms", c.Krill.SpawnMaxMS > c.Krill.SpawnMinMS},
		{"krill.density must be positive", c.Krill.Density > 0},
		{"boats.spawn_min_ms must not be negative", c.Boats.SpawnMinMS >= 0},
		{"boats.spawn_max_ms must be above spawn_min_ms", c.Boats.SpawnMaxMS > c.Boats.SpawnMinMS},
		{"boats.move_ms must be positive", c.Boats.MoveMS > 0},
		{"harpoons.launch_min_ms must not be negative", c.Harpoons.LaunchMinMS >= 0},
		{"harpoons.launch_max_ms must be above launch_min_ms", c.Harpoons.LaunchMaxMS > c.Harpoons.LaunchMinMS},
		{"harpoons.move_ms must be positive", c.Harpoons.MoveMS > 0},
		{"round.length_sec must be positive", c.Round.LengthSec > 0},
		{"round.tick_rate must be between 1 and 240", c.Round.TickRate >= 1 && c.Round.TickRate <= 240},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.name)
		}
	}
	return nil
}

// Params converts the config into engine parameters for a w x h field.
// The field size itself is checked by the engine.
func (c WhaleConfig) Params(w, h int) whale.Params {
	return whale.Params{
		Field:        core.Field{W: w, H: h},
		ReservedTop:  c.Field.ReservedTop,
		StunDuration: ms(c.Whale.StunMS),
		KrillSpawn:   whale.Jitter{Min: ms(c.Krill.SpawnMinMS), Max: ms(c.Krill.SpawnMaxMS)},
		KrillDensity: c.Krill.Density,
		BoatSpawn:    whale.Jitter{Min: ms(c.Boats.SpawnMinMS), Max: ms(c.Boats.SpawnMaxMS)},
		BoatMove:     ms(c.Boats.MoveMS),
		HarpoonLaunch: whale.Jitter{
			Min: ms(c.Harpoons.LaunchMinMS),
			Max: ms(c.Harpoons.LaunchMaxMS),
		},
		HarpoonMove: ms(c.Harpoons.MoveMS),
	}
}

// RoundLength returns the round length as a duration.
func (c WhaleConfig) RoundLength() time.Duration {
	return time.Duration(c.Round.LengthSec) * time.Second
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
