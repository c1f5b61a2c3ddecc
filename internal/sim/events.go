package sim

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventJump EventKind = iota
	EventCollect
	EventDamage
	EventFallThrough
	EventBoundaryExceeded
	EventRespawn
	EventLevelComplete
	EventLevelAdvanced
	EventVictory
	EventDimensionSwitch
	EventLevelLoaded
	EventProgressError
)

var eventNames = map[EventKind]string{
	EventJump:             "jump",
	EventCollect:          "collect",
	EventDamage:           "damage",
	EventFallThrough:      "fall_through",
	EventBoundaryExceeded: "boundary_exceeded",
	EventRespawn:          "respawn",
	EventLevelComplete:    "level_complete",
	EventLevelAdvanced:    "level_advanced",
	EventVictory:          "victory",
	EventDimensionSwitch:  "dimension_switch",
	EventLevelLoaded:      "level_loaded",
	EventProgressError:    "progress_error",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return "unknown"
}

// Audio cue names.
const (
	CueDimensionSwitch = "dimensionSwitch"
	CueCollectShard    = "collectShard"
	CuePlayerJump      = "playerJump"
	CueHazardHit       = "hazardHit"
)

// Event is a side-effect signal for presentation collaborators.
type Event struct {
	Kind   EventKind
	Amount int   // damage dealt, shards after collect
	Index  int   // collectible index, dimension id
	Level  int   // level the event refers to
	Mode   Mode  // mode for progress events
	Err    error // EventProgressError only
	Silent bool  // dimension switch without a cue (quick switch)
}

// Cue returns the audio cue for the event, or "" if it has none.
func (e Event) Cue() string {
	switch e.Kind {
	case EventJump:
		return CuePlayerJump
	case EventCollect:
		return CueCollectShard
	case EventDamage:
		return CueHazardHit
	case EventDimensionSwitch:
		if e.Silent {
			return ""
		}
		return CueDimensionSwitch
	default:
		return ""
	}
}
