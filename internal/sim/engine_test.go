package sim

import (
	"errors"
	"testing"
)

const frameMS = 1000.0 / 60

type fakeStore struct {
	levels  map[Mode]int
	loadErr error
	saveErr error
	saves   []int
}

func (s *fakeStore) SaveProgress(mode Mode, level int) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if s.levels == nil {
		s.levels = map[Mode]int{}
	}
	s.levels[mode] = level
	s.saves = append(s.saves, level)
	return nil
}

func (s *fakeStore) LoadProgress(mode Mode) (int, bool, error) {
	if s.loadErr != nil {
		return 0, false, s.loadErr
	}
	lvl, ok := s.levels[mode]
	return lvl, ok, nil
}

func fixedLevels(lvl Level) LevelSource {
	return LevelSourceFunc(func(n int) Level {
		c := lvl.Clone()
		c.Number = n
		return c
	})
}

// spawnShards places three shards where the spawned player falls through.
func spawnShards() []Collectible {
	return []Collectible{
		{Rect: R(100, 300, 15, 15)},
		{Rect: R(105, 305, 15, 15)},
		{Rect: R(110, 310, 5, 5)},
	}
}

// started applies StartMode without running a simulation step.
func started(t *testing.T, e *Engine, mode Mode) World {
	t.Helper()
	w := e.NewWorld()
	tk := &tick{e: e, w: &w}
	tk.apply(StartMode(mode))
	if w.Run.State != StatePlaying {
		t.Fatalf("state = %v, want playing", w.Run.State)
	}
	return w
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestStartModeProgress(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		store     *fakeStore
		wantLevel int
		wantErr   bool
	}{
		{"challenge default", ModeChallenge, &fakeStore{}, 1, false},
		{"casual default", ModeCasual, &fakeStore{}, 11, false},
		{"saved challenge", ModeChallenge, &fakeStore{levels: map[Mode]int{ModeChallenge: 4}}, 4, false},
		{"saved casual", ModeCasual, &fakeStore{levels: map[Mode]int{ModeCasual: 15}}, 15, false},
		{"out of range", ModeChallenge, &fakeStore{levels: map[Mode]int{ModeChallenge: 15}}, 1, false},
		{"load error", ModeCasual, &fakeStore{loadErr: errors.New("disk gone")}, 11, true},
		{"unset plays challenge", ModeUnset, &fakeStore{}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(DefaultTuning(), fixedLevels(groundLevel()), tt.store)
			w, events := e.Update(e.NewWorld(), Input{Commands: []Command{StartMode(tt.mode)}}, 0)
			if w.Run.Level != tt.wantLevel {
				t.Errorf("level = %d, want %d", w.Run.Level, tt.wantLevel)
			}
			if w.Level.Number != tt.wantLevel {
				t.Errorf("loaded level = %d, want %d", w.Level.Number, tt.wantLevel)
			}
			if got := countEvents(events, EventProgressError) > 0; got != tt.wantErr {
				t.Errorf("progress error event = %v, want %v", got, tt.wantErr)
			}
		})
	}
}

func TestStartModeWithoutStore(t *testing.T) {
	e := NewEngine(DefaultTuning(), nil, nil)
	w := started(t, e, ModeCasual)
	if w.Run.Level != 11 {
		t.Errorf("level = %d, want 11", w.Run.Level)
	}
}

func TestEngineFreeFall(t *testing.T) {
	e := NewEngine(DefaultTuning(), fixedLevels(groundLevel()), nil)
	w := started(t, e, ModeChallenge)

	for range 120 {
		w, _ = e.Update(w, Input{}, frameMS)
	}
	if w.Player.Pos.Y != 530 || w.Player.Vel.Y != 0 || !w.Player.OnGround {
		t.Errorf("y=%v vy=%v ground=%v, want 530 0 true", w.Player.Pos.Y, w.Player.Vel.Y, w.Player.OnGround)
	}
	if w.Player.Pos.X != 100 {
		t.Errorf("x = %v, want 100", w.Player.Pos.X)
	}
}

func TestEngineFallThrough(t *testing.T) {
	e := NewEngine(DefaultTuning(), fixedLevels(Level{}), nil)
	w := started(t, e, ModeChallenge)
	w.Player.Pos.Y = 650

	w, events := e.Update(w, Input{}, frameMS)

	if n := countEvents(events, EventFallThrough); n != 1 {
		t.Errorf("fall-through events = %d, want 1", n)
	}
	damage := 0
	for _, ev := range events {
		if ev.Kind == EventDamage {
			damage++
			if ev.Amount != 50 {
				t.Errorf("damage = %d, want 50", ev.Amount)
			}
		}
	}
	if damage != 1 {
		t.Errorf("damage events = %d, want 1", damage)
	}
	if w.Player.Pos != (Vec{X: 100, Y: 300}) {
		t.Errorf("position = %v, want spawn", w.Player.Pos)
	}
	if w.Run.Energy != 50 {
		t.Errorf("energy = %d, want 50", w.Run.Energy)
	}
}

func TestEngineHazardDamagesEveryTick(t *testing.T) {
	lvl := groundLevel()
	lvl.Hazards = []Hazard{{Rect: R(0, 0, 800, 540), Dimension: DimensionNormal, Type: "laser"}}
	e := NewEngine(DefaultTuning(), fixedLevels(lvl), nil)
	w := started(t, e, ModeChallenge)

	var events []Event
	for range 3 {
		var evs []Event
		w, evs = e.Update(w, Input{}, frameMS)
		events = append(events, evs...)
	}
	if n := countEvents(events, EventDamage); n != 3 {
		t.Errorf("damage events = %d, want 3", n)
	}
	if w.Run.Energy != 40 {
		t.Errorf("energy = %d, want 40", w.Run.Energy)
	}
	for _, ev := range events {
		if ev.Kind == EventDamage && ev.Cue() != CueHazardHit {
			t.Errorf("damage cue = %q", ev.Cue())
		}
	}
}

func TestEngineEnergyDepletionRespawns(t *testing.T) {
	lvl := groundLevel()
	lvl.Hazards = []Hazard{{Rect: R(0, 0, 800, 540), Dimension: DimensionNormal}}
	e := NewEngine(DefaultTuning(), fixedLevels(lvl), nil)
	w := started(t, e, ModeChallenge)
	w.Run.Energy = 10
	w.Run.Shards = 2
	w.Run.Dimension = DimensionNormal

	w, events := e.Update(w, Input{}, frameMS)
	if countEvents(events, EventRespawn) != 1 {
		t.Fatalf("expected one respawn, events: %v", events)
	}
	if w.Run.Energy != w.Run.MaxEnergy {
		t.Errorf("energy = %d, want %d", w.Run.Energy, w.Run.MaxEnergy)
	}
	if w.Run.Shards != 0 {
		t.Errorf("shards = %d, want 0", w.Run.Shards)
	}
	if w.Player.Pos != (Vec{X: 100, Y: 300}) {
		t.Errorf("position = %v, want spawn", w.Player.Pos)
	}
}

func TestEngineHealClamped(t *testing.T) {
	lvl := groundLevel()
	lvl.Collectibles = []Collectible{{Rect: R(95, 295, 15, 15)}, {Rect: R(400, 100, 15, 15)}}
	e := NewEngine(DefaultTuning(), fixedLevels(lvl), nil)
	w := started(t, e, ModeChallenge)
	w.Run.Energy = 95

	w, events := e.Update(w, Input{}, frameMS)
	if countEvents(events, EventCollect) != 1 {
		t.Fatalf("expected one collect, events: %v", events)
	}
	if w.Run.Energy != 100 {
		t.Errorf("energy = %d, want 100", w.Run.Energy)
	}
	if w.Run.Shards != 1 {
		t.Errorf("shards = %d, want 1", w.Run.Shards)
	}
}

func TestEngineLevelCompleteOnce(t *testing.T) {
	lvl := groundLevel()
	lvl.Collectibles = spawnShards()
	store := &fakeStore{}
	e := NewEngine(DefaultTuning(), fixedLevels(lvl), store)
	w := started(t, e, ModeChallenge)

	var all []Event
	for range 30 {
		var evs []Event
		w, evs = e.Update(w, Input{}, frameMS)
		all = append(all, evs...)
	}
	if n := countEvents(all, EventLevelComplete); n != 1 {
		t.Fatalf("level complete events = %d, want 1", n)
	}
	if n := countEvents(all, EventCollect); n != 3 {
		t.Errorf("collect events = %d, want 3", n)
	}
	if !w.Pending.Active() || w.Pending.Kind != TransitionAdvance {
		t.Fatalf("pending = %+v, want advance", w.Pending)
	}

	// 2000 ms of wall time later the next level is loaded.
	advanced := false
	for range 200 {
		var evs []Event
		w, evs = e.Update(w, Input{}, frameMS)
		if countEvents(evs, EventLevelAdvanced) > 0 {
			advanced = true
			break
		}
	}
	if !advanced {
		t.Fatal("level never advanced")
	}
	if w.Run.Level != 2 || w.Run.LevelComplete || w.Run.Shards != 0 {
		t.Errorf("after advance: level=%d complete=%v shards=%d", w.Run.Level, w.Run.LevelComplete, w.Run.Shards)
	}
	if last := store.saves[len(store.saves)-1]; last != 2 {
		t.Errorf("saved level = %d, want 2", last)
	}
}

func TestEngineVictory(t *testing.T) {
	lvl := groundLevel()
	lvl.Collectibles = spawnShards()
	store := &fakeStore{levels: map[Mode]int{ModeChallenge: 10}}
	e := NewEngine(DefaultTuning(), fixedLevels(lvl), store)
	w := started(t, e, ModeChallenge)

	won := false
	for range 200 {
		var evs []Event
		w, evs = e.Update(w, Input{}, frameMS)
		if countEvents(evs, EventVictory) > 0 {
			won = true
			break
		}
	}
	if !won {
		t.Fatal("victory never reached")
	}
	if w.Run.State != StatePaused || !w.Run.Victory {
		t.Errorf("state=%v victory=%v", w.Run.State, w.Run.Victory)
	}

	w, _ = e.Update(w, Input{Commands: []Command{TogglePause}}, frameMS)
	if w.Run.State != StatePaused {
		t.Error("pause toggle must not leave the victory screen")
	}

	w, _ = e.Update(w, Input{Commands: []Command{Restart}}, frameMS)
	if w.Run.Level != 1 || w.Run.Victory || w.Run.State != StatePlaying {
		t.Errorf("after restart: level=%d victory=%v state=%v", w.Run.Level, w.Run.Victory, w.Run.State)
	}
}

func TestRestartCancelsPendingTransition(t *testing.T) {
	// Only level 13 completes on the first tick.
	source := LevelSourceFunc(func(n int) Level {
		lvl := groundLevel()
		lvl.Number = n
		if n == 13 {
			lvl.Collectibles = spawnShards()
		}
		return lvl
	})
	e := NewEngine(DefaultTuning(), source, &fakeStore{levels: map[Mode]int{ModeCasual: 13}})
	w := started(t, e, ModeCasual)

	w, _ = e.Update(w, Input{}, frameMS)
	if !w.Pending.Active() {
		t.Fatal("expected a pending transition")
	}
	w, _ = e.Update(w, Input{Commands: []Command{Restart}}, frameMS)
	if w.Pending.Active() {
		t.Error("restart must cancel the pending transition")
	}
	if w.Run.Level != 11 {
		t.Errorf("level = %d, want 11", w.Run.Level)
	}
}

func TestQuitCancelsPendingTransition(t *testing.T) {
	lvl := groundLevel()
	lvl.Collectibles = spawnShards()
	e := NewEngine(DefaultTuning(), fixedLevels(lvl), nil)
	w := started(t, e, ModeChallenge)

	w, _ = e.Update(w, Input{}, frameMS)
	w, _ = e.Update(w, Input{Commands: []Command{Quit}}, frameMS)
	if w.Pending.Active() || w.Run.State != StateMenu {
		t.Errorf("pending=%v state=%v", w.Pending.Active(), w.Run.State)
	}
	for range 300 {
		w, _ = e.Update(w, Input{}, frameMS)
	}
	if w.Run.Level != 1 {
		t.Errorf("level = %d, want 1", w.Run.Level)
	}
}

func TestJumpInvertsAfterDimensionSwitch(t *testing.T) {
	lvl := Level{Platforms: []Platform{
		{Rect: R(0, 550, 800, 50)},
		{Rect: R(0, 100, 800, 20)},
	}}
	e := NewEngine(DefaultTuning(), fixedLevels(lvl), nil)
	w := started(t, e, ModeChallenge)

	for range 120 {
		w, _ = e.Update(w, Input{}, frameMS)
	}
	if !w.Player.OnGround {
		t.Fatal("player should rest on the floor")
	}

	w, events := e.Update(w, Input{Jump: true}, frameMS)
	if countEvents(events, EventJump) != 1 || w.Player.Vel.Y >= 0 {
		t.Fatalf("normal jump: events=%v vy=%v", events, w.Player.Vel.Y)
	}

	// Switch while airborne and rise onto the ceiling's underside.
	w, events = e.Update(w, Input{Commands: []Command{SwitchDimension(DimensionAntiGravity)}}, frameMS)
	if countEvents(events, EventDimensionSwitch) != 1 {
		t.Fatal("expected dimension switch event")
	}
	for range 200 {
		if w.Player.OnGround {
			break
		}
		w, _ = e.Update(w, Input{}, frameMS)
	}
	if !w.Player.OnGround || w.Player.Pos.Y != 120 {
		t.Fatalf("expected to rest under the ceiling, y=%v ground=%v", w.Player.Pos.Y, w.Player.OnGround)
	}

	w, events = e.Update(w, Input{Jump: true}, frameMS)
	if countEvents(events, EventJump) != 1 {
		t.Fatal("inverted jump rejected")
	}
	if w.Player.Vel.Y <= 0 {
		t.Errorf("inverted jump vy = %v, want downward", w.Player.Vel.Y)
	}
}

func TestBoundaryExceededRespawns(t *testing.T) {
	e := NewEngine(DefaultTuning(), fixedLevels(Level{}), nil)
	w := started(t, e, ModeChallenge)
	w, _ = e.Update(w, Input{Commands: []Command{SwitchDimension(DimensionAntiGravity)}}, 100)

	exceeded := 0
	var respawnWorld World
	for range 300 {
		var evs []Event
		w, evs = e.Update(w, Input{}, 100)
		if n := countEvents(evs, EventBoundaryExceeded); n > 0 {
			exceeded += n
			respawnWorld = w
			break
		}
	}
	if exceeded != 1 {
		t.Fatalf("boundary exceeded = %d, want 1", exceeded)
	}
	if respawnWorld.Run.Dimension != DimensionNormal {
		t.Errorf("dimension = %d, want normal", respawnWorld.Run.Dimension)
	}
	if respawnWorld.Guard.Warning {
		t.Error("guard must be cleared after respawn")
	}
	if respawnWorld.Run.Energy != respawnWorld.Run.MaxEnergy {
		t.Errorf("energy = %d, want max", respawnWorld.Run.Energy)
	}
}

func TestDamageSuppressedDuringBoundaryWarning(t *testing.T) {
	e := NewEngine(DefaultTuning(), nil, nil)
	w := started(t, e, ModeChallenge)
	w.Run.Dimension = DimensionAntiGravity
	w.Guard = BoundaryGuard{Warning: true, TimerMS: 100}

	tk := &tick{e: e, w: &w}
	tk.damage(20)
	if w.Run.Energy != 100 || len(tk.events) != 0 {
		t.Errorf("energy=%d events=%v, want suppressed", w.Run.Energy, tk.events)
	}

	w.Run.Dimension = DimensionNormal
	tk.damage(120)
	if w.Run.Energy != 100 {
		t.Errorf("energy after lethal hit = %d, want respawned to 100", w.Run.Energy)
	}
	if countEvents(tk.events, EventRespawn) != 1 {
		t.Error("expected respawn after depletion")
	}
}

func TestSwitchDimensionClearsWarningWhenBackInside(t *testing.T) {
	e := NewEngine(DefaultTuning(), nil, nil)
	w := started(t, e, ModeChallenge)
	w.Run.Dimension = DimensionAntiGravity
	w.Guard = BoundaryGuard{Warning: true, TimerMS: 1200}
	w.Player.Pos.Y = 50

	w, _ = e.Update(w, Input{Commands: []Command{SwitchDimension(DimensionTimeWarp)}}, 0)
	if w.Guard.Warning {
		t.Error("switching away inside the world must clear the warning")
	}
}

func TestDimensionCommands(t *testing.T) {
	e := NewEngine(DefaultTuning(), nil, nil)

	menu := e.NewWorld()
	w, events := e.Update(menu, Input{Commands: []Command{SwitchDimension(2)}}, 0)
	if w.Run.Dimension != 0 || len(events) != 0 {
		t.Error("dimension switch must be ignored outside play")
	}

	w = started(t, e, ModeChallenge)
	w, events = e.Update(w, Input{Commands: []Command{CycleDimension(-1)}}, 0)
	if w.Run.Dimension != 3 || events[0].Cue() != CueDimensionSwitch {
		t.Errorf("cycle back: dim=%d cue=%q", w.Run.Dimension, events[0].Cue())
	}

	w, events = e.Update(w, Input{Commands: []Command{QuickSwitch}}, 0)
	if w.Run.Dimension != 0 || events[0].Cue() != "" {
		t.Errorf("quick switch: dim=%d cue=%q", w.Run.Dimension, events[0].Cue())
	}

	w, _ = e.Update(w, Input{Commands: []Command{SwitchDimension(7)}}, 0)
	if w.Run.Dimension != 0 {
		t.Error("out-of-range dimension must be ignored")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	e := NewEngine(DefaultTuning(), fixedLevels(groundLevel()), nil)
	w := started(t, e, ModeChallenge)
	w, _ = e.Update(w, Input{Commands: []Command{TogglePause}}, frameMS)
	before := w.Snapshot()

	for range 10 {
		w, _ = e.Update(w, Input{Right: true}, frameMS)
	}
	after := w.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused world changed")
	}

	w, _ = e.Update(w, Input{Commands: []Command{TogglePause}}, frameMS)
	if w.Run.State != StatePlaying || w.Tick == before.Tick {
		t.Error("unpause must resume ticking")
	}
}

func TestReturnToMenuUnsetsMode(t *testing.T) {
	e := NewEngine(DefaultTuning(), nil, nil)
	w := started(t, e, ModeCasual)
	w, _ = e.Update(w, Input{Commands: []Command{ReturnToMenu}}, 0)
	if w.Run.State != StateMenu || w.Run.Mode != ModeUnset {
		t.Errorf("state=%v mode=%v", w.Run.State, w.Run.Mode)
	}
}

func TestSaveErrorIsReported(t *testing.T) {
	e := NewEngine(DefaultTuning(), nil, &fakeStore{saveErr: errors.New("read-only")})
	_, events := e.Update(e.NewWorld(), Input{Commands: []Command{StartMode(ModeChallenge)}}, 0)
	found := false
	for _, ev := range events {
		if ev.Kind == EventProgressError && ev.Err != nil {
			found = true
		}
	}
	if !found {
		t.Error("expected progress error event")
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	lvl := groundLevel()
	lvl.Collectibles = spawnShards()
	e := NewEngine(DefaultTuning(), fixedLevels(lvl), nil)
	w := started(t, e, ModeChallenge)

	next, _ := e.Update(w, Input{}, frameMS)
	if next.Level.CollectedCount() != 3 {
		t.Fatalf("collected = %d, want 3", next.Level.CollectedCount())
	}
	if w.Level.CollectedCount() != 0 || w.Tick != 0 || len(w.Player.Trail) != 0 {
		t.Error("Update modified its input world")
	}
}

func TestDeterminism(t *testing.T) {
	lvl := groundLevel()
	lvl.Platforms = append(lvl.Platforms, Platform{Rect: R(300, 420, 100, 20), Dimension: IntPtr(DimensionForceField)})
	lvl.Collectibles = []Collectible{{Rect: R(320, 380, 15, 15)}, {Rect: R(600, 500, 15, 15)}}
	lvl.Hazards = []Hazard{{Rect: R(450, 520, 60, 20), Dimension: DimensionNormal}}

	inputs := make([]Input, 600)
	for i := range inputs {
		switch {
		case i == 0:
			inputs[i].Commands = []Command{StartMode(ModeChallenge)}
		case i%150 == 40:
			inputs[i].Commands = []Command{CycleDimension(1)}
		case i%7 == 0:
			inputs[i].Jump = true
		}
		inputs[i].Right = i%90 < 45
		inputs[i].Left = i%90 >= 70
	}

	run := func() Snapshot {
		e := NewEngine(DefaultTuning(), fixedLevels(lvl), &fakeStore{})
		w := e.NewWorld()
		for _, in := range inputs {
			w, _ = e.Update(w, in, frameMS)
		}
		return w.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("hashes differ: %d vs %d", s1.Hash(), s2.Hash())
	}
	if s1.Tick == 0 {
		t.Error("simulation never ran")
	}
}
