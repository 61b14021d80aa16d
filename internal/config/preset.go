package config

import (
	"fmt"
	"slices"
)

// Preset is a named set of timings picked before a round starts.
// Timings never change during a round.
type Preset string

const (
	PresetRelaxed Preset = "relaxed"
	PresetNormal  Preset = "normal"
	PresetFrantic Preset = "frantic"
)

// Presets lists the known presets in order of pressure.
func Presets() []Preset {
	return []Preset{PresetRelaxed, PresetNormal, PresetFrantic}
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (Preset, error) {
	if name == "" {
		return PresetNormal, nil
	}
	p := Preset(name)
	if !slices.Contains(Presets(), p) {
		return "", fmt.Errorf("%w: unknown preset %q (want one of %v)", ErrInvalidConfig, name, Presets())
	}
	return p, nil
}

// ApplyPreset modifies the config for a preset. Normal leaves it untouched
// so a loaded file keeps its own timings.
func ApplyPreset(cfg *WhaleConfig, preset Preset) {
	switch preset {
	case PresetRelaxed:
		cfg.Whale.StunMS = 1500
		cfg.Krill.SpawnMinMS = 300
		cfg.Krill.SpawnMaxMS = 3000
		cfg.Boats.SpawnMinMS = 4000
		cfg.Boats.SpawnMaxMS = 8000
		cfg.Boats.MoveMS = 1500
		cfg.Harpoons.LaunchMinMS = 8000
		cfg.Harpoons.LaunchMaxMS = 14000
		cfg.Harpoons.MoveMS = 400
	case PresetFrantic:
		cfg.Whale.StunMS = 2500
		cfg.Krill.SpawnMinMS = 1000
		cfg.Krill.SpawnMaxMS = 6000
		cfg.Boats.SpawnMinMS = 1200
		cfg.Boats.SpawnMaxMS = 2500
		cfg.Boats.MoveMS = 500
		cfg.Harpoons.LaunchMinMS = 2000
		cfg.Harpoons.LaunchMaxMS = 4000
		cfg.Harpoons.MoveMS = 120
	}
}
