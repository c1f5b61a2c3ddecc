package config

import (
	_ "embed"
)

//go:embed defaults/quantum.yaml
var defaultQuantumYAML []byte

// DefaultQuantumConfig returns the hardcoded configuration.
// It mirrors defaults/quantum.yaml and is used if the embedded file fails to parse.
func DefaultQuantumConfig() QuantumConfig {
	return QuantumConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:       20,
			Height:      20,
			SpawnX:      100,
			SpawnY:      300,
			TrailLength: 20,
		},
		Physics: PhysicsConfig{
			MoveSpeed:          5,
			Friction:           0.8,
			JumpImpulse:        12,
			WarpFallMultiplier: 4,
			WarpRiseMultiplier: 0.5,
			FieldAmplitude:     0.15,
			FieldFreqX:         0.001,
			FieldFreqY:         0.0015,
			MaxRiseSpeed:       8,
			UpperBoundary:      -60,
		},
		Energy: EnergyConfig{
			Max:          100,
			Heal:         10,
			HazardDamage: 20,
			FallDamage:   50,
		},
		Boundary: BoundaryConfig{
			LimitMS: 5000,
		},
		Pacing: PacingConfig{
			VictoryDelayMS: 1000,
			AdvanceDelayMS: 2000,
			TickRate:       60,
		},
		Modes: ModesConfig{
			Challenge: LevelRange{First: 1, Last: 10},
			Casual:    LevelRange{First: 11, Last: 20},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Generator: GeneratorConfig{
			Seed:             0,
			BasePlatforms:    5,
			PlatformSpacing:  120,
			BaseShards:       3,
			ShardSpacing:     200,
			HazardsFromLevel: 3,
			HazardSpacing:    200,
		},
	}
}
