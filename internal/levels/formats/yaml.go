// Package formats parses level files into simulation descriptors.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/quantum-jumper/internal/sim"
)

// Default collectible edge length when a file omits w/h.
const shardSize = 15

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Number       int               `yaml:"number"`
	Name         string            `yaml:"name"`
	Platforms    []YAMLPlatform    `yaml:"platforms"`
	Collectibles []YAMLCollectible `yaml:"collectibles"`
	Hazards      []YAMLHazard      `yaml:"hazards,omitempty"`
}

// YAMLPlatform is one platform entry. A missing dimension makes the
// platform exist in every dimension.
type YAMLPlatform struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	W         float64 `yaml:"w"`
	H         float64 `yaml:"h"`
	Dimension *int    `yaml:"dimension,omitempty"`

	Moving          bool    `yaml:"moving,omitempty"`
	MoveX           float64 `yaml:"moveX,omitempty"`
	MoveY           float64 `yaml:"moveY,omitempty"`
	MoveSpeed       float64 `yaml:"moveSpeed,omitempty"`
	Active          *bool   `yaml:"active,omitempty"`
	PulseRate       float64 `yaml:"pulseRate,omitempty"`
	GravityToggle   bool    `yaml:"gravityToggle,omitempty"`
	ToggleRate      float64 `yaml:"toggleRate,omitempty"`
	TimePulse       bool    `yaml:"timePulse,omitempty"`
	TimeIntensity   float64 `yaml:"timeIntensity,omitempty"`
	EnergyBurst     bool    `yaml:"energyBurst,omitempty"`
	BurstRate       float64 `yaml:"burstRate,omitempty"`
	EnergyDirection string  `yaml:"energyDirection,omitempty"`
	Intensity       float64 `yaml:"intensity,omitempty"`
}

// YAMLCollectible is one shard entry.
type YAMLCollectible struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w,omitempty"`
	H float64 `yaml:"h,omitempty"`
}

// YAMLHazard is one hazard entry.
type YAMLHazard struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	W         float64 `yaml:"w"`
	H         float64 `yaml:"h"`
	Dimension int     `yaml:"dimension"`
	Type      string  `yaml:"type,omitempty"`

	Active       *bool   `yaml:"active,omitempty"`
	BlinkRate    float64 `yaml:"blinkRate,omitempty"`
	Delay        float64 `yaml:"delay,omitempty"`
	Moving       bool    `yaml:"moving,omitempty"`
	MoveX        float64 `yaml:"moveX,omitempty"`
	MoveY        float64 `yaml:"moveY,omitempty"`
	MoveSpeed    float64 `yaml:"moveSpeed,omitempty"`
	EnergyLinked bool    `yaml:"energyLinked,omitempty"`
	TimeEffect   bool    `yaml:"timeEffect,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (sim.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return sim.Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := yl.validate(); err != nil {
		return sim.Level{}, err
	}
	return yl.ToLevel(), nil
}

func (yl *YAMLLevel) validate() error {
	if yl.Number <= 0 {
		return fmt.Errorf("level number must be positive, got %d", yl.Number)
	}
	for i, p := range yl.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("platform %d: non-positive size %vx%v", i, p.W, p.H)
		}
		if p.Dimension != nil && (*p.Dimension < 0 || *p.Dimension >= sim.DimensionCount) {
			return fmt.Errorf("platform %d: dimension %d out of range", i, *p.Dimension)
		}
	}
	for i, h := range yl.Hazards {
		if h.Dimension < 0 || h.Dimension >= sim.DimensionCount {
			return fmt.Errorf("hazard %d: dimension %d out of range", i, h.Dimension)
		}
	}
	return nil
}

// ToLevel converts the file structure to a simulation descriptor.
func (yl *YAMLLevel) ToLevel() sim.Level {
	lvl := sim.Level{
		Number:       yl.Number,
		Name:         yl.Name,
		Platforms:    make([]sim.Platform, 0, len(yl.Platforms)),
		Collectibles: make([]sim.Collectible, 0, len(yl.Collectibles)),
		Hazards:      make([]sim.Hazard, 0, len(yl.Hazards)),
	}

	for _, p := range yl.Platforms {
		lvl.Platforms = append(lvl.Platforms, sim.Platform{
			Rect:      sim.R(p.X, p.Y, p.W, p.H),
			Dimension: p.Dimension,
			Behavior: sim.PlatformBehavior{
				Moving:          p.Moving,
				MoveX:           p.MoveX,
				MoveY:           p.MoveY,
				MoveSpeed:       p.MoveSpeed,
				Active:          p.Active,
				PulseRate:       p.PulseRate,
				GravityToggle:   p.GravityToggle,
				ToggleRate:      p.ToggleRate,
				TimePulse:       p.TimePulse,
				TimeIntensity:   p.TimeIntensity,
				EnergyBurst:     p.EnergyBurst,
				BurstRate:       p.BurstRate,
				EnergyDirection: p.EnergyDirection,
				Intensity:       p.Intensity,
			},
		})
	}

	for _, c := range yl.Collectibles {
		w, h := c.W, c.H
		if w <= 0 {
			w = shardSize
		}
		if h <= 0 {
			h = shardSize
		}
		lvl.Collectibles = append(lvl.Collectibles, sim.Collectible{Rect: sim.R(c.X, c.Y, w, h)})
	}

	for _, hz := range yl.Hazards {
		typ := hz.Type
		if typ == "" {
			typ = "laser"
		}
		lvl.Hazards = append(lvl.Hazards, sim.Hazard{
			Rect:      sim.R(hz.X, hz.Y, hz.W, hz.H),
			Dimension: hz.Dimension,
			Type:      typ,
			Behavior: sim.HazardBehavior{
				Active:       hz.Active,
				BlinkRate:    hz.BlinkRate,
				Delay:        hz.Delay,
				Moving:       hz.Moving,
				MoveX:        hz.MoveX,
				MoveY:        hz.MoveY,
				MoveSpeed:    hz.MoveSpeed,
				EnergyLinked: hz.EnergyLinked,
				TimeEffect:   hz.TimeEffect,
			},
		})
	}

	return lvl
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
