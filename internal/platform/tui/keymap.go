package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quantum-jumper/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Jump        key.Binding
	Dim1        key.Binding
	Dim2        key.Binding
	Dim3        key.Binding
	Dim4        key.Binding
	CycleNext   key.Binding
	CyclePrev   key.Binding
	QuickSwitch key.Binding
	Pause       key.Binding
	Restart     key.Binding
	NextLevel   key.Binding
	Confirm     key.Binding
	Back        key.Binding
	Quit        key.Binding
	Exit        key.Binding
	Screenshot  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Jump, k.Dim1, k.CycleNext, k.QuickSwitch, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Dim1, k.Dim2, k.Dim3, k.Dim4},
		{k.CycleNext, k.CyclePrev, k.QuickSwitch},
		{k.Pause, k.Restart, k.NextLevel, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/w/space", "jump"),
		),
		Dim1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-4", "dimension"),
		),
		Dim2: key.NewBinding(key.WithKeys("2")),
		Dim3: key.NewBinding(key.WithKeys("3")),
		Dim4: key.NewBinding(key.WithKeys("4")),
		CycleNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]/[", "cycle"),
		),
		CyclePrev: key.NewBinding(key.WithKeys("[")),
		QuickSwitch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "quick switch"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Exit:       key.NewBinding(key.WithKeys("ctrl+c")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys    GameKeyMap
	actions []boundAction
}

type boundAction struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	k := DefaultGameKeyMap()
	return &KeyMapper{
		keys: k,
		actions: []boundAction{
			{k.Left, core.ActionLeft},
			{k.Right, core.ActionRight},
			{k.Jump, core.ActionJump},
			{k.Dim1, core.ActionDim1},
			{k.Dim2, core.ActionDim2},
			{k.Dim3, core.ActionDim3},
			{k.Dim4, core.ActionDim4},
			{k.CycleNext, core.ActionCycleNext},
			{k.CyclePrev, core.ActionCyclePrev},
			{k.QuickSwitch, core.ActionQuickSwitch},
			{k.Pause, core.ActionPause},
			{k.Restart, core.ActionRestart},
			{k.NextLevel, core.ActionNextLevel},
			{k.Confirm, core.ActionConfirm},
			{k.Back, core.ActionBack},
			{k.Quit, core.ActionQuit},
		},
	}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// isExit reports a request to leave the program entirely.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isExit bool) {
	if key.Matches(msg, km.keys.Exit) {
		return core.ActionQuit, true
	}
	for _, b := range km.actions {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// IsScreenshot reports whether msg requests a screen dump.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionRecords
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionRecords
	}

	return MenuActionNone
}
