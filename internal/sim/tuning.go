package sim

// Tuning holds every numeric constant of the simulation.
// It is filled from config; DefaultTuning matches the shipped game.
type Tuning struct {
	World Bounds
	Spawn Vec

	PlayerW, PlayerH float64
	MoveSpeed        float64
	Friction         float64
	JumpImpulse      float64
	TrailLength      int

	// Time-warp gravity multipliers
	WarpFallMultiplier float64
	WarpRiseMultiplier float64

	// Force-field oscillation: v += f(t*freq)*amp
	FieldAmplitude float64
	FieldFreqX     float64
	FieldFreqY     float64

	// Anti-gravity ceiling
	MaxRiseSpeed  float64
	UpperBoundary float64

	MaxEnergy    int
	HealAmount   int
	HazardDamage int
	FallDamage   int

	BoundaryLimitMS float64

	VictoryDelayMS float64
	AdvanceDelayMS float64

	ChallengeFirst, ChallengeLast int
	CasualFirst, CasualLast       int
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		World: Bounds{W: 800, H: 600},
		Spawn: Vec{X: 100, Y: 300},

		PlayerW:     20,
		PlayerH:     20,
		MoveSpeed:   5,
		Friction:    0.8,
		JumpImpulse: 12,
		TrailLength: 20,

		WarpFallMultiplier: 4,
		WarpRiseMultiplier: 0.5,

		FieldAmplitude: 0.15,
		FieldFreqX:     0.001,
		FieldFreqY:     0.0015,

		MaxRiseSpeed:  8,
		UpperBoundary: -60,

		MaxEnergy:    100,
		HealAmount:   10,
		HazardDamage: 20,
		FallDamage:   50,

		BoundaryLimitMS: 5000,

		VictoryDelayMS: 1000,
		AdvanceDelayMS: 2000,

		ChallengeFirst: 1,
		ChallengeLast:  10,
		CasualFirst:    11,
		CasualLast:     20,
	}
}

// FirstLevel returns the starting level of a mode.
func (t Tuning) FirstLevel(m Mode) int {
	if m == ModeCasual {
		return t.CasualFirst
	}
	return t.ChallengeFirst
}

// LastLevel returns the final level of a mode. An unset mode plays as challenge.
func (t Tuning) LastLevel(m Mode) int {
	if m == ModeCasual {
		return t.CasualLast
	}
	return t.ChallengeLast
}
