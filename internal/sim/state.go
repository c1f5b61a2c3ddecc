package sim

// Mode selects the level range being played.
type Mode int

const (
	ModeUnset Mode = iota
	ModeChallenge
	ModeCasual
)

// String returns the mode's persistent name.
func (m Mode) String() string {
	switch m {
	case ModeChallenge:
		return "challenge"
	case ModeCasual:
		return "casual"
	default:
		return ""
	}
}

// ParseMode converts a name back to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "challenge":
		return ModeChallenge, true
	case "casual":
		return ModeCasual, true
	default:
		return ModeUnset, false
	}
}

// GameState is the orchestrator's top-level state.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "menu"
	}
}

// RunState is the per-run bookkeeping shown in the HUD.
type RunState struct {
	State         GameState
	Mode          Mode
	Level         int
	Shards        int
	Energy        int
	MaxEnergy     int
	Dimension     int
	LevelComplete bool // latched once per level
	Victory       bool // last level of the mode cleared
}

// World is the complete simulation state. Engine.Update consumes a World
// and returns the next one; callers must not share Level or Player slices
// between worlds they intend to keep.
type World struct {
	Run     RunState
	Player  Player
	Level   Level
	Guard   BoundaryGuard
	Pending Transition

	SimTimeMS float64 // accumulated effective dt while playing
	Tick      uint64
}

// ActiveDimension returns the dimension the player is currently in.
func (w *World) ActiveDimension() Dimension {
	return DimensionByID(w.Run.Dimension)
}

// Clone returns a deep copy of the world.
func (w World) Clone() World {
	c := w
	c.Player = w.Player.clone()
	c.Level = w.Level.Clone()
	return c
}
