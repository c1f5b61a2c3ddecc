package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-jumper/internal/platform/tui"
	"github.com/vovakirdan/quantum-jumper/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start Quantum Jumper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Leaving a mode's title screen returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Level clear records
  Q            - Quit

Examples:
  quantum menu
  quantum menu --fps 30
  quantum menu --db ./quantum.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a, err := setup(setupOptions{audio: true})
	exitOnError("starting", err)
	defer a.Close()

	deps := a.deps()
	cfg := a.runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(deps, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsRecords {
			goBack, rErr := tui.RunRecords(a.store, cfg.ScreenW, cfg.ScreenH)
			if rErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", rErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID, deps.Env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		a.logger.Info("play", "mode", menuResult.GameID, "difficulty", flagDifficulty)
		if err := tui.Run(game, deps, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
