package sim

// PlatformBehavior holds authored modifiers for dynamic platforms.
// They are carried through for presentation and tooling; the simulation
// treats every platform as static.
type PlatformBehavior struct {
	Moving          bool
	MoveX           float64
	MoveY           float64
	MoveSpeed       float64
	Active          *bool
	PulseRate       float64
	GravityToggle   bool
	ToggleRate      float64
	TimePulse       bool
	TimeIntensity   float64
	EnergyBurst     bool
	BurstRate       float64
	EnergyDirection string
	Intensity       float64
}

// HazardBehavior holds authored modifiers for dynamic hazards.
// Like PlatformBehavior, these are not simulated.
type HazardBehavior struct {
	Active       *bool
	BlinkRate    float64
	Delay        float64
	Moving       bool
	MoveX        float64
	MoveY        float64
	MoveSpeed    float64
	EnergyLinked bool
	TimeEffect   bool
}

// Platform is a solid surface. A nil Dimension means it exists in every dimension.
type Platform struct {
	Rect      Rect
	Dimension *int
	Behavior  PlatformBehavior
}

// ActiveIn reports whether the platform participates in the given dimension.
func (p Platform) ActiveIn(dim int) bool {
	return p.Dimension == nil || *p.Dimension == dim
}

// Collectible is a quantum shard pickup.
type Collectible struct {
	Rect      Rect
	Collected bool
}

// Hazard damages the player on contact while its dimension is active.
type Hazard struct {
	Rect      Rect
	Dimension int
	Type      string // "laser" only affects rendering
	Behavior  HazardBehavior
}

// Level is the descriptor of one level's geometry.
type Level struct {
	Number       int
	Name         string
	Generated    bool
	Platforms    []Platform
	Collectibles []Collectible
	Hazards      []Hazard
}

// Clone returns a deep copy so the collected flags of the copy can be
// mutated without touching the source.
func (l Level) Clone() Level {
	clone := l
	clone.Platforms = make([]Platform, len(l.Platforms))
	for i, p := range l.Platforms {
		clone.Platforms[i] = p
		if p.Dimension != nil {
			d := *p.Dimension
			clone.Platforms[i].Dimension = &d
		}
		if p.Behavior.Active != nil {
			a := *p.Behavior.Active
			clone.Platforms[i].Behavior.Active = &a
		}
	}
	clone.Collectibles = make([]Collectible, len(l.Collectibles))
	copy(clone.Collectibles, l.Collectibles)
	clone.Hazards = make([]Hazard, len(l.Hazards))
	for i, h := range l.Hazards {
		clone.Hazards[i] = h
		if h.Behavior.Active != nil {
			a := *h.Behavior.Active
			clone.Hazards[i].Behavior.Active = &a
		}
	}
	return clone
}

// CollectedCount returns how many shards of this level have been picked up.
func (l *Level) CollectedCount() int {
	n := 0
	for _, c := range l.Collectibles {
		if c.Collected {
			n++
		}
	}
	return n
}

// LevelSource supplies level descriptors by number.
// Implementations must return a fresh copy on every call and must never
// fail: numbers without authored data get generated content.
type LevelSource interface {
	Level(number int) Level
}

// LevelSourceFunc adapts a function to LevelSource.
type LevelSourceFunc func(number int) Level

// Level implements LevelSource.
func (f LevelSourceFunc) Level(number int) Level {
	return f(number)
}

// IntPtr returns a pointer to v. Handy for platform dimensions.
func IntPtr(v int) *int {
	return &v
}
