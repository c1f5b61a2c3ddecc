// Package quantum adapts the simulation core to the platform's Game
// interface. It registers one game per mode.
package quantum

import (
	"fmt"
	"time"

	"github.com/vovakirdan/quantum-jumper/internal/core"
	"github.com/vovakirdan/quantum-jumper/internal/registry"
	"github.com/vovakirdan/quantum-jumper/internal/sim"
)

// Game drives one sim.World for a fixed mode.
type Game struct {
	mode   sim.Mode
	env    registry.Env
	engine *sim.Engine
	world  sim.World
	config core.RuntimeConfig
	events []sim.Event

	levelStartMS float64          // sim time when the current level loaded
	now          func() time.Time // wall clock for banner blinking
}

// New creates a game bound to mode.
func New(mode sim.Mode, env registry.Env) *Game {
	if mode == sim.ModeUnset {
		mode = sim.ModeChallenge
	}
	g := &Game{
		mode:   mode,
		env:    env,
		engine: sim.NewEngine(env.Tuning, env.Levels, env.Progress),
		config: core.DefaultConfig(),
		now:    time.Now,
	}
	g.world = g.engine.NewWorld()
	return g
}

// ID returns the mode name.
func (g *Game) ID() string {
	return g.mode.String()
}

// Title returns the display name including the level range.
func (g *Game) Title() string {
	tun := g.env.Tuning
	name := "Challenge"
	if g.mode == sim.ModeCasual {
		name = "Casual"
	}
	return fmt.Sprintf("Quantum Jumper: %s (levels %d-%d)", name, tun.FirstLevel(g.mode), tun.LastLevel(g.mode))
}

// Mode returns the mode this game plays.
func (g *Game) Mode() sim.Mode {
	return g.mode
}

// Reset returns to the mode's start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.world = g.engine.NewWorld()
	g.events = nil
	g.levelStartMS = 0
}

// Step advances the world by one frame of wall time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	before := g.world.SimTimeMS
	g.world, g.events = g.engine.Update(g.world, g.translate(in), g.config.FrameMS())

	var cues []string
	for _, ev := range g.events {
		if cue := ev.Cue(); cue != "" {
			cues = append(cues, cue)
		}
		switch ev.Kind {
		case sim.EventLevelLoaded:
			g.levelStartMS = before
		case sim.EventLevelComplete:
			g.recordClear(ev)
		}
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// translate maps platform actions to simulation input.
func (g *Game) translate(in core.InputFrame) sim.Input {
	out := sim.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	}
	cmd := func(c sim.Command) { out.Commands = append(out.Commands, c) }

	run := g.world.Run
	if in.Has(core.ActionConfirm) {
		switch {
		case run.State == sim.StateMenu:
			cmd(sim.StartMode(g.mode))
		case run.Victory:
			cmd(sim.Restart)
		}
	}
	for slot := range sim.DimensionCount {
		if in.Has(core.DimensionAction(slot)) {
			cmd(sim.SwitchDimension(slot))
		}
	}
	if in.Has(core.ActionCycleNext) {
		cmd(sim.CycleDimension(1))
	}
	if in.Has(core.ActionCyclePrev) {
		cmd(sim.CycleDimension(-1))
	}
	if in.Has(core.ActionQuickSwitch) {
		cmd(sim.QuickSwitch)
	}
	if in.Has(core.ActionPause) {
		cmd(sim.TogglePause)
	}
	if in.Has(core.ActionRestart) {
		cmd(sim.Restart)
	}
	if in.Has(core.ActionNextLevel) {
		cmd(sim.NextLevel)
	}
	if in.Has(core.ActionBack) {
		cmd(sim.ReturnToMenu)
	}
	if in.Has(core.ActionQuit) {
		cmd(sim.Quit)
	}
	return out
}

// recordClear stores a completed level. Failures surface as progress
// error events so the platform logs them alongside save failures.
func (g *Game) recordClear(ev sim.Event) {
	if g.env.Records == nil {
		return
	}
	elapsed := g.world.SimTimeMS - g.levelStartMS
	if err := g.env.Records.SaveClear(g.mode.String(), ev.Level, ev.Amount, elapsed); err != nil {
		g.events = append(g.events, sim.Event{Kind: sim.EventProgressError, Err: err, Mode: g.mode, Level: ev.Level})
	}
}

// State reports the run for the platform.
func (g *Game) State() core.GameState {
	run := g.world.Run
	st := core.GameState{
		Score:    run.Shards,
		GameOver: run.Victory,
		Paused:   run.State == sim.StatePaused && !run.Victory,
		InMenu:   run.State == sim.StateMenu,
	}
	if !st.InMenu {
		st.Level = run.Level
	}
	return st
}

// World returns a copy of the current simulation state.
func (g *Game) World() sim.World {
	return g.world.Clone()
}

// Events returns the events raised by the last Step.
func (g *Game) Events() []sim.Event {
	return g.events
}

// SetClock replaces the wall clock used for blinking.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

func init() {
	registry.Register(sim.ModeChallenge.String(), func(env registry.Env) registry.Game {
		return New(sim.ModeChallenge, env)
	})
	registry.Register(sim.ModeCasual.String(), func(env registry.Env) registry.Game {
		return New(sim.ModeCasual, env)
	})
}
