package sim

// BoundaryGuard limits how long the player may stay pinned against the
// anti-gravity ceiling. TimerMS is zero whenever Warning is false.
type BoundaryGuard struct {
	TimerMS float64
	Warning bool
}

// Observe advances the guard by one tick and reports whether the dwell
// limit was exceeded. The guard resets itself after firing.
func (g *BoundaryGuard) Observe(contact bool, gravity, y, h, dtMS, limitMS float64) bool {
	if gravity >= 0 {
		g.Clear()
		return false
	}

	switch {
	case contact && !g.Warning:
		g.Warning = true
		g.TimerMS = 0
	case contact:
		g.TimerMS += dtMS
		if g.TimerMS > limitMS {
			g.Clear()
			return true
		}
	case g.Warning && y > -h:
		g.Clear()
	}
	return false
}

// Clear returns the guard to idle.
func (g *BoundaryGuard) Clear() {
	g.TimerMS = 0
	g.Warning = false
}

// Suppresses reports whether ordinary damage is currently ignored.
func (g *BoundaryGuard) Suppresses(gravity float64) bool {
	return gravity < 0 && g.Warning
}

// RemainingMS returns the time left before the guard fires.
func (g *BoundaryGuard) RemainingMS(limitMS float64) float64 {
	if !g.Warning {
		return limitMS
	}
	if r := limitMS - g.TimerMS; r > 0 {
		return r
	}
	return 0
}
