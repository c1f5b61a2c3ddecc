package sim

import "math"

// Snapshot is a flat view of the world for determinism checks.
type Snapshot struct {
	Tick      uint64
	State     int
	Mode      int
	Level     int
	Shards    int
	Energy    int
	Dimension int
	Complete  bool
	Victory   bool

	X, Y, VX, VY float64
	OnGround     bool

	GuardTimerMS float64
	GuardWarning bool
	PendingKind  int
	PendingMS    float64
	SimTimeMS    float64

	Collected []bool
}

// Snapshot captures the current world.
func (w *World) Snapshot() Snapshot {
	collected := make([]bool, len(w.Level.Collectibles))
	for i, c := range w.Level.Collectibles {
		collected[i] = c.Collected
	}
	return Snapshot{
		Tick:         w.Tick,
		State:        int(w.Run.State),
		Mode:         int(w.Run.Mode),
		Level:        w.Run.Level,
		Shards:       w.Run.Shards,
		Energy:       w.Run.Energy,
		Dimension:    w.Run.Dimension,
		Complete:     w.Run.LevelComplete,
		Victory:      w.Run.Victory,
		X:            w.Player.Pos.X,
		Y:            w.Player.Pos.Y,
		VX:           w.Player.Vel.X,
		VY:           w.Player.Vel.Y,
		OnGround:     w.Player.OnGround,
		GuardTimerMS: w.Guard.TimerMS,
		GuardWarning: w.Guard.Warning,
		PendingKind:  int(w.Pending.Kind),
		PendingMS:    w.Pending.RemainingMS,
		SimTimeMS:    w.SimTimeMS,
		Collected:    collected,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	for _, v := range []int{s.State, s.Mode, s.Level, s.Shards, s.Energy, s.Dimension, s.PendingKind} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, f := range []float64{s.X, s.Y, s.VX, s.VY, s.GuardTimerMS, s.PendingMS, s.SimTimeMS} {
		h = h*31 + math.Float64bits(f)
	}
	for _, b := range []bool{s.Complete, s.Victory, s.OnGround, s.GuardWarning} {
		h = h*31 + boolBit(b)
	}
	for _, b := range s.Collected {
		h = h*31 + boolBit(b)
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
