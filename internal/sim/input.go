package sim

// CommandKind enumerates UI actions the orchestrator understands.
type CommandKind int

const (
	CmdStartMode CommandKind = iota
	CmdTogglePause
	CmdRestart
	CmdQuit
	CmdReturnToMenu
	CmdNextLevel
	CmdSwitchDimension
	CmdCycleDimension
	CmdQuickSwitch
)

// Command is a discrete UI action applied at the start of a tick.
type Command struct {
	Kind      CommandKind
	Mode      Mode // CmdStartMode
	Dimension int  // CmdSwitchDimension
	Direction int  // CmdCycleDimension: +1 or -1
}

// StartMode returns a command that begins (or resumes) a mode.
func StartMode(m Mode) Command { return Command{Kind: CmdStartMode, Mode: m} }

// SwitchDimension returns a direct dimension switch command.
func SwitchDimension(id int) Command { return Command{Kind: CmdSwitchDimension, Dimension: id} }

// CycleDimension returns a relative dimension switch command.
func CycleDimension(dir int) Command { return Command{Kind: CmdCycleDimension, Direction: dir} }

// Simple commands without arguments.
var (
	TogglePause  = Command{Kind: CmdTogglePause}
	Restart      = Command{Kind: CmdRestart}
	Quit         = Command{Kind: CmdQuit}
	ReturnToMenu = Command{Kind: CmdReturnToMenu}
	NextLevel    = Command{Kind: CmdNextLevel}
	QuickSwitch  = Command{Kind: CmdQuickSwitch}
)

// Input is sampled once per tick: the held movement keys plus any
// commands issued since the previous tick.
type Input struct {
	Left, Right, Jump bool
	Commands          []Command
}
