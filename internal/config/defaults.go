package config

import (
	_ "embed"
)

//go:embed defaults/whale.yaml
var defaultWhaleYAML []byte

// DefaultWhaleConfig returns the built-in configuration.
func DefaultWhaleConfig() WhaleConfig {
	return WhaleConfig{
		Field: FieldConfig{
			ReservedTop: 5,
		},
		Whale: WhaleSettings{
			StunMS: 2000,
		},
		Krill: KrillConfig{
			SpawnMinMS: 500,
			SpawnMaxMS: 5000,
			Density:    100,
		},
		Boats: BoatConfig{
			SpawnMinMS: 2500,
			SpawnMaxMS: 5000,
			MoveMS:     1000,
		},
		Harpoons: HarpoonConfig{
			LaunchMinMS: 5000,
			LaunchMaxMS: 10000,
			MoveMS:      250,
		},
		Round: RoundConfig{
			LengthSec: 600,
			TickRate:  30,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultWhaleYAML
}
