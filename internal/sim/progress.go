package sim

// LevelComplete reports whether every collectible inside the visible world
// has been picked up. Collectibles placed outside the world never block
// completion. A level without collectibles never completes.
func LevelComplete(lvl *Level, world Bounds) bool {
	if len(lvl.Collectibles) == 0 {
		return false
	}
	for _, c := range lvl.Collectibles {
		if !c.Collected && world.ContainsPoint(c.Rect.X, c.Rect.Y) {
			return false
		}
	}
	return true
}

// TransitionKind is what a pending transition does when it elapses.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionAdvance
	TransitionVictory
)

// Transition is a deferred, cancellable level change.
type Transition struct {
	Kind        TransitionKind
	RemainingMS float64
}

// Active reports whether a transition is scheduled.
func (t Transition) Active() bool {
	return t.Kind != TransitionNone
}

// Schedule arms the transition.
func (t *Transition) Schedule(kind TransitionKind, delayMS float64) {
	t.Kind = kind
	t.RemainingMS = delayMS
}

// Cancel disarms the transition.
func (t *Transition) Cancel() {
	*t = Transition{}
}

// Tick counts the transition down and returns its kind once it elapses.
// An elapsed transition disarms itself.
func (t *Transition) Tick(dtMS float64) TransitionKind {
	if !t.Active() {
		return TransitionNone
	}
	t.RemainingMS -= dtMS
	if t.RemainingMS > 0 {
		return TransitionNone
	}
	kind := t.Kind
	t.Cancel()
	return kind
}
