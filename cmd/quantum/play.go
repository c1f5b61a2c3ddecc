package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-jumper/internal/platform/tui"
	"github.com/vovakirdan/quantum-jumper/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode. Press Enter on the title screen
to begin; saved progress resumes at the last level reached.

Modes:
  challenge  - levels 1-10, authored
  casual     - levels 11-20, generated

Controls:
  ←/→ or A/D   - Move
  ↑/W/Space    - Jump
  1-4          - Switch to dimension
  [ / ]        - Cycle dimensions
  Tab          - Quick switch (no sound)
  P/Esc        - Pause
  R            - Restart level
  N            - Skip to next level
  B            - Back to title
  Q            - Quit to title, then exit
  Ctrl+S       - Screenshot

Difficulty options:
  easy   - More energy, longer above the world
  normal - Default tuning
  hard   - Less energy, shorter above the world

Examples:
  quantum play challenge
  quantum play casual --difficulty hard
  quantum play challenge --levels ./my-levels`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode := args[0]

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'quantum list' to see available modes.")
		os.Exit(1)
	}

	a, err := setup(setupOptions{audio: true})
	exitOnError("starting", err)
	defer a.Close()

	game, err := registry.Create(mode, a.env())
	exitOnError("creating game", err)

	a.logger.Info("play", "mode", mode, "difficulty", flagDifficulty)
	if err := tui.Run(game, a.deps(), a.runtimeConfig()); err != nil {
		a.Close()
		exitOnError("running game", err)
	}
}
