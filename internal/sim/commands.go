package sim

func (t *tick) apply(cmd Command) {
	switch cmd.Kind {
	case CmdStartMode:
		t.startMode(cmd.Mode)
	case CmdTogglePause:
		t.togglePause()
	case CmdRestart:
		t.restart()
	case CmdQuit:
		t.quit()
	case CmdReturnToMenu:
		t.returnToMenu()
	case CmdNextLevel:
		if t.w.Run.State != StateMenu {
			t.nextLevel()
		}
	case CmdSwitchDimension:
		t.switchDimension(cmd.Dimension)
	case CmdCycleDimension:
		t.cycleDimension(cmd.Direction)
	case CmdQuickSwitch:
		t.quickSwitch()
	}
}

func (t *tick) startMode(mode Mode) {
	if mode == ModeUnset {
		mode = ModeChallenge
	}
	t.w.Run.Mode = mode
	t.startGame(t.loadProgress(mode))
}

// startGame begins play on the given level with a fresh run.
func (t *tick) startGame(level int) {
	w := t.w
	w.Pending.Cancel()
	w.Guard.Clear()
	w.Run.State = StatePlaying
	w.Run.Victory = false
	w.Run.LevelComplete = false
	w.Run.Level = level
	w.Run.Shards = 0
	w.Run.Energy = w.Run.MaxEnergy
	t.resetPlayer()
	t.loadLevel(level)
	t.saveProgress()
}

func (t *tick) togglePause() {
	r := &t.w.Run
	switch {
	case r.Victory:
		// only restart or menu leave the victory screen
	case r.State == StatePlaying:
		r.State = StatePaused
	case r.State == StatePaused:
		r.State = StatePlaying
	}
}

func (t *tick) restart() {
	if t.w.Run.State == StateMenu {
		return
	}
	t.startGame(t.e.tun.FirstLevel(t.w.Run.Mode))
}

func (t *tick) quit() {
	w := t.w
	w.Pending.Cancel()
	w.Run.State = StateMenu
	w.Run.Victory = false
}

func (t *tick) returnToMenu() {
	w := t.w
	w.Pending.Cancel()
	w.Run.State = StateMenu
	w.Run.Victory = false
	w.Run.LevelComplete = false
	w.Run.Mode = ModeUnset
}

func (t *tick) switchDimension(id int) {
	w := t.w
	if w.Run.State != StatePlaying || id < 0 || id >= DimensionCount {
		return
	}
	w.Run.Dimension = id
	t.emit(Event{Kind: EventDimensionSwitch, Index: id})
	if w.Guard.Warning && id != DimensionAntiGravity && w.Player.Pos.Y > -w.Player.H {
		w.Guard.Clear()
	}
}

func (t *tick) cycleDimension(dir int) {
	w := t.w
	if w.Run.State != StatePlaying || dir == 0 {
		return
	}
	if dir > 0 {
		dir = 1
	} else {
		dir = -1
	}
	w.Run.Dimension = (w.Run.Dimension + dir + DimensionCount) % DimensionCount
	t.emit(Event{Kind: EventDimensionSwitch, Index: w.Run.Dimension})
}

func (t *tick) quickSwitch() {
	w := t.w
	if w.Run.State != StatePlaying {
		return
	}
	w.Run.Dimension = (w.Run.Dimension + 1) % DimensionCount
	t.emit(Event{Kind: EventDimensionSwitch, Index: w.Run.Dimension, Silent: true})
}
