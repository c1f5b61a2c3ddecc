package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow - held movement
	ActionRight              // D, Right arrow - held movement
	ActionJump               // W, Up, Space - held jump
	ActionDim1               // 1 - normal dimension
	ActionDim2               // 2 - anti-gravity
	ActionDim3               // 3 - time warp
	ActionDim4               // 4 - force field
	ActionCycleNext          // ] - next dimension
	ActionCyclePrev          // [ - previous dimension
	ActionQuickSwitch        // Tab - next dimension, no cue
	ActionPause              // P, Escape - pause/unpause game
	ActionRestart            // R - restart from the mode's first level
	ActionNextLevel          // N - skip the level-complete delay
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B - back to mode selection
	ActionQuit               // Q, Ctrl+C - exit game/session
)

var actionNames = [...]string{
	ActionNone:        "None",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionJump:        "Jump",
	ActionDim1:        "Dim1",
	ActionDim2:        "Dim2",
	ActionDim3:        "Dim3",
	ActionDim4:        "Dim4",
	ActionCycleNext:   "CycleNext",
	ActionCyclePrev:   "CyclePrev",
	ActionQuickSwitch: "QuickSwitch",
	ActionPause:       "Pause",
	ActionRestart:     "Restart",
	ActionNextLevel:   "NextLevel",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// DimensionAction maps a dimension slot (0-3) to its direct-switch action.
func DimensionAction(slot int) Action {
	if slot < 0 || slot > 3 {
		return ActionNone
	}
	return ActionDim1 + Action(slot)
}

// InputFrame represents the input state for one simulation tick.
// Movement actions are present while held; the rest are one-shot presses.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
