// Package config provides YAML-based configuration loading and difficulty
// presets for Quantum Jumper.
package config

import (
	"github.com/vovakirdan/quantum-jumper/internal/levels"
	"github.com/vovakirdan/quantum-jumper/internal/sim"
)

// QuantumConfig contains all tunable settings of the game.
type QuantumConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Energy    EnergyConfig    `yaml:"energy"`
	Boundary  BoundaryConfig  `yaml:"boundary"`
	Pacing    PacingConfig    `yaml:"pacing"`
	Modes     ModesConfig     `yaml:"modes"`
	Audio     AudioConfig     `yaml:"audio"`
	Generator GeneratorConfig `yaml:"generator"`
}

// WorldConfig defines the play area in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player body and spawn point.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
	TrailLength int     `yaml:"trail_length"`
}

// PhysicsConfig defines movement and dimension physics.
type PhysicsConfig struct {
	MoveSpeed          float64 `yaml:"move_speed"`
	Friction           float64 `yaml:"friction"`
	JumpImpulse        float64 `yaml:"jump_impulse"`
	WarpFallMultiplier float64 `yaml:"warp_fall_multiplier"`
	WarpRiseMultiplier float64 `yaml:"warp_rise_multiplier"`
	FieldAmplitude     float64 `yaml:"field_amplitude"`
	FieldFreqX         float64 `yaml:"field_freq_x"`
	FieldFreqY         float64 `yaml:"field_freq_y"`
	MaxRiseSpeed       float64 `yaml:"max_rise_speed"`
	UpperBoundary      float64 `yaml:"upper_boundary"`
}

// EnergyConfig defines the energy pool and its changes.
type EnergyConfig struct {
	Max          int `yaml:"max"`
	Heal         int `yaml:"heal"`
	HazardDamage int `yaml:"hazard_damage"`
	FallDamage   int `yaml:"fall_damage"`
}

// BoundaryConfig defines how long the player may stay pinned to the ceiling.
type BoundaryConfig struct {
	LimitMS float64 `yaml:"limit_ms"`
}

// PacingConfig defines delays between level completion and what follows.
type PacingConfig struct {
	VictoryDelayMS float64 `yaml:"victory_delay_ms"`
	AdvanceDelayMS float64 `yaml:"advance_delay_ms"`
	TickRate       int     `yaml:"tick_rate"`
}

// ModesConfig defines the level range of each mode.
type ModesConfig struct {
	Challenge LevelRange `yaml:"challenge"`
	Casual    LevelRange `yaml:"casual"`
}

// LevelRange is an inclusive range of level numbers.
type LevelRange struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

// AudioConfig controls cue playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// GeneratorConfig shapes levels without authored data.
type GeneratorConfig struct {
	Seed             int64   `yaml:"seed"`
	BasePlatforms    int     `yaml:"base_platforms"`
	PlatformSpacing  float64 `yaml:"platform_spacing"`
	BaseShards       int     `yaml:"base_shards"`
	ShardSpacing     float64 `yaml:"shard_spacing"`
	HazardsFromLevel int     `yaml:"hazards_from_level"`
	HazardSpacing    float64 `yaml:"hazard_spacing"`
}

// ToTuning converts the config into simulation constants.
func (c QuantumConfig) ToTuning() sim.Tuning {
	return sim.Tuning{
		World: sim.Bounds{W: c.World.Width, H: c.World.Height},
		Spawn: sim.Vec{X: c.Player.SpawnX, Y: c.Player.SpawnY},

		PlayerW:     c.Player.Width,
		PlayerH:     c.Player.Height,
		MoveSpeed:   c.Physics.MoveSpeed,
		Friction:    c.Physics.Friction,
		JumpImpulse: c.Physics.JumpImpulse,
		TrailLength: c.Player.TrailLength,

		WarpFallMultiplier: c.Physics.WarpFallMultiplier,
		WarpRiseMultiplier: c.Physics.WarpRiseMultiplier,

		FieldAmplitude: c.Physics.FieldAmplitude,
		FieldFreqX:     c.Physics.FieldFreqX,
		FieldFreqY:     c.Physics.FieldFreqY,

		MaxRiseSpeed:  c.Physics.MaxRiseSpeed,
		UpperBoundary: c.Physics.UpperBoundary,

		MaxEnergy:    c.Energy.Max,
		HealAmount:   c.Energy.Heal,
		HazardDamage: c.Energy.HazardDamage,
		FallDamage:   c.Energy.FallDamage,

		BoundaryLimitMS: c.Boundary.LimitMS,

		VictoryDelayMS: c.Pacing.VictoryDelayMS,
		AdvanceDelayMS: c.Pacing.AdvanceDelayMS,

		ChallengeFirst: c.Modes.Challenge.First,
		ChallengeLast:  c.Modes.Challenge.Last,
		CasualFirst:    c.Modes.Casual.First,
		CasualLast:     c.Modes.Casual.Last,
	}
}

// ToGenParams converts the generator section for the level source.
func (c QuantumConfig) ToGenParams() levels.GenParams {
	g := c.Generator
	return levels.GenParams{
		Seed:             g.Seed,
		BasePlatforms:    g.BasePlatforms,
		PlatformSpacing:  g.PlatformSpacing,
		BaseShards:       g.BaseShards,
		ShardSpacing:     g.ShardSpacing,
		HazardsFromLevel: g.HazardsFromLevel,
		HazardSpacing:    g.HazardSpacing,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
