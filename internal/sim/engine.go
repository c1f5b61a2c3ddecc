package sim

// ProgressStore persists the current level per mode.
// Absent or unreadable progress is never fatal: the engine falls back to
// the mode's first level.
type ProgressStore interface {
	SaveProgress(mode Mode, level int) error
	LoadProgress(mode Mode) (level int, ok bool, err error)
}

// Engine runs the simulation. It holds only immutable collaborators;
// all mutable state lives in World.
type Engine struct {
	tun      Tuning
	levels   LevelSource
	progress ProgressStore
}

// NewEngine creates an engine. progress may be nil.
func NewEngine(tun Tuning, levels LevelSource, progress ProgressStore) *Engine {
	if levels == nil {
		levels = LevelSourceFunc(func(n int) Level { return Level{Number: n} })
	}
	return &Engine{tun: tun, levels: levels, progress: progress}
}

// Tuning returns the engine's constants.
func (e *Engine) Tuning() Tuning {
	return e.tun
}

// NewWorld returns a world sitting in the menu.
func (e *Engine) NewWorld() World {
	return World{
		Run: RunState{
			State:     StateMenu,
			Level:     e.tun.ChallengeFirst,
			Energy:    e.tun.MaxEnergy,
			MaxEnergy: e.tun.MaxEnergy,
		},
		Player: NewPlayer(e.tun),
	}
}

// Update applies the input's commands and, while playing, advances the
// simulation by dtMS of wall-clock time. The input world is not modified.
func (e *Engine) Update(w World, in Input, dtMS float64) (World, []Event) {
	next := w.Clone()
	t := &tick{e: e, w: &next}

	for _, cmd := range in.Commands {
		t.apply(cmd)
	}
	if next.Run.State != StatePlaying {
		return next, t.events
	}
	if dtMS < 0 {
		dtMS = 0
	}
	t.step(in, dtMS)
	return next, t.events
}

// tick carries the world and the events of one Update call.
type tick struct {
	e      *Engine
	w      *World
	events []Event

	respawned bool
}

func (t *tick) emit(ev Event) {
	t.events = append(t.events, ev)
}

func (t *tick) step(in Input, dtMS float64) {
	w, tun := t.w, t.e.tun
	dim := w.ActiveDimension()
	dtEff := dtMS * dim.TimeScale
	w.SimTimeMS += dtEff
	w.Tick++

	motion := Advance(&w.Player, dim, in, tun, w.SimTimeMS)
	if motion.Jumped {
		t.emit(Event{Kind: EventJump, Level: w.Run.Level})
	}

	c := Resolve(&w.Player, &w.Level, dim, tun.World)
	for _, idx := range c.Collected {
		w.Run.Shards++
		w.Run.Energy = min(w.Run.Energy+tun.HealAmount, w.Run.MaxEnergy)
		t.emit(Event{Kind: EventCollect, Index: idx, Amount: w.Run.Shards, Level: w.Run.Level})
	}
	for range c.HazardHits {
		if t.respawned {
			break
		}
		t.damage(tun.HazardDamage)
	}
	if c.FellThrough && !t.respawned {
		t.emit(Event{Kind: EventFallThrough, Level: w.Run.Level})
		t.damage(tun.FallDamage)
		t.resetPlayer()
	}

	now := w.ActiveDimension()
	contact := motion.BoundaryContact && !t.respawned && now.Inverted()
	if w.Guard.Observe(contact, now.Gravity, w.Player.Pos.Y, w.Player.H, dtEff, tun.BoundaryLimitMS) {
		t.emit(Event{Kind: EventBoundaryExceeded, Level: w.Run.Level})
		t.respawn()
	}

	// Transitions scheduled on this tick start counting on the next one.
	pending := w.Pending.Active()
	t.checkCompletion()
	if pending {
		switch w.Pending.Tick(dtMS) {
		case TransitionAdvance:
			t.nextLevel()
		case TransitionVictory:
			t.victory()
		}
	}
}

// damage applies the ordinary damage path.
func (t *tick) damage(amount int) {
	w := t.w
	if w.Guard.Suppresses(w.ActiveDimension().Gravity) {
		return
	}
	w.Run.Energy = max(0, w.Run.Energy-amount)
	t.emit(Event{Kind: EventDamage, Amount: amount, Level: w.Run.Level})
	if w.Run.Energy <= 0 {
		t.respawn()
	}
}

// respawn restarts the current level in place.
func (t *tick) respawn() {
	w := t.w
	w.Run.Energy = w.Run.MaxEnergy
	w.Run.Shards = 0
	w.Guard.Clear()
	t.resetPlayer()
	t.loadLevel(w.Run.Level)
	t.respawned = true
	t.emit(Event{Kind: EventRespawn, Level: w.Run.Level})
}

func (t *tick) resetPlayer() {
	t.w.Player.Reset(t.e.tun)
	t.w.Run.Dimension = DimensionNormal
}

func (t *tick) loadLevel(n int) {
	lvl := t.e.levels.Level(n)
	lvl.Number = n
	t.w.Level = lvl
	t.emit(Event{Kind: EventLevelLoaded, Level: n})
}

func (t *tick) checkCompletion() {
	w, tun := t.w, t.e.tun
	if w.Run.LevelComplete || !LevelComplete(&w.Level, tun.World) {
		return
	}
	w.Run.LevelComplete = true
	t.emit(Event{Kind: EventLevelComplete, Level: w.Run.Level, Amount: w.Run.Shards, Mode: w.Run.Mode})
	if w.Run.Level >= tun.LastLevel(w.Run.Mode) {
		w.Pending.Schedule(TransitionVictory, tun.VictoryDelayMS)
	} else {
		w.Pending.Schedule(TransitionAdvance, tun.AdvanceDelayMS)
	}
}

func (t *tick) nextLevel() {
	w, tun := t.w, t.e.tun
	w.Pending.Cancel()
	if w.Run.Level >= tun.LastLevel(w.Run.Mode) {
		t.victory()
		return
	}
	w.Run.Level++
	w.Run.Energy = w.Run.MaxEnergy
	w.Run.LevelComplete = false
	w.Run.Shards = 0
	w.Guard.Clear()
	t.loadLevel(w.Run.Level)
	t.resetPlayer()
	t.emit(Event{Kind: EventLevelAdvanced, Level: w.Run.Level, Mode: w.Run.Mode})
	t.saveProgress()
}

func (t *tick) victory() {
	w := t.w
	w.Pending.Cancel()
	w.Run.State = StatePaused
	w.Run.Victory = true
	t.emit(Event{Kind: EventVictory, Level: w.Run.Level, Mode: w.Run.Mode})
}

func (t *tick) saveProgress() {
	store := t.e.progress
	if store == nil {
		return
	}
	mode := t.w.Run.Mode
	if mode == ModeUnset {
		mode = ModeChallenge
	}
	if err := store.SaveProgress(mode, t.w.Run.Level); err != nil {
		t.emit(Event{Kind: EventProgressError, Err: err, Mode: mode, Level: t.w.Run.Level})
	}
}

// loadProgress returns the saved level for mode, or the mode's first level.
func (t *tick) loadProgress(mode Mode) int {
	tun := t.e.tun
	first, last := tun.FirstLevel(mode), tun.LastLevel(mode)
	store := t.e.progress
	if store == nil {
		return first
	}
	lvl, ok, err := store.LoadProgress(mode)
	if err != nil {
		t.emit(Event{Kind: EventProgressError, Err: err, Mode: mode})
		return first
	}
	if !ok || lvl < first || lvl > last {
		return first
	}
	return lvl
}
