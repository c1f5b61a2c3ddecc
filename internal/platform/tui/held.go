package tui

import (
	"time"

	"github.com/vovakirdan/quantum-jumper/internal/core"
)

// HoldConfig controls held-key emulation. Terminals report presses and
// auto-repeats but never releases, so a movement key counts as held for
// Initial after the first press and for Repeat after each repeat.
// Initial must bridge the keyboard's auto-repeat delay.
type HoldConfig struct {
	Initial time.Duration
	Repeat  time.Duration
}

// DefaultHoldConfig suits common auto-repeat settings.
func DefaultHoldConfig() HoldConfig {
	return HoldConfig{
		Initial: 300 * time.Millisecond,
		Repeat:  90 * time.Millisecond,
	}
}

// isHoldable reports whether an action is a continuous movement key.
func isHoldable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionJump
}

// heldKeys tracks when each movement key stops counting as held.
type heldKeys struct {
	cfg   HoldConfig
	until map[core.Action]time.Time
}

func newHeldKeys(cfg HoldConfig) *heldKeys {
	return &heldKeys{cfg: cfg, until: make(map[core.Action]time.Time)}
}

// Press records a press or auto-repeat of a.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	// Opposite directions cancel so a quick reversal doesn't stall.
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}

	d := h.cfg.Initial
	if h.Held(a, now) {
		d = h.cfg.Repeat
	}
	if t := now.Add(d); t.After(h.until[a]) {
		h.until[a] = t
	}
}

// Held reports whether a is held at now.
func (h *heldKeys) Held(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Apply sets every held action on frame and forgets expired ones.
func (h *heldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Release drops all held keys.
func (h *heldKeys) Release() {
	clear(h.until)
}
