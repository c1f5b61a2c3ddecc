// quantum is a terminal platformer where the player shifts between four
// overlapping dimensions to reach every quantum shard.
//
// Usage:
//
//	quantum                   - Start the mode picker menu
//	quantum play <mode>       - Play challenge or casual directly
//	quantum list              - List available modes
//	quantum levels            - Describe the level set
//	quantum records [mode]    - Show level clear records
//	quantum serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: from config)
//	--seed <value>         - Seed for generated levels
//	--db <path>            - Set database path (default: ~/.quantum/quantum.db)
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--levels <dir>         - Directory of level files overriding the built-in set
//	--log <path>           - Log file (default: ~/.quantum/quantum.log)
//	--mute                 - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/quantum-jumper/internal/games/quantum"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogPath    string
	flagDebug      bool
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quantum",
	Short: "Quantum Jumper - a dimension-shifting platformer for your terminal",
	Long: `Quantum Jumper is a terminal platformer. Platforms exist in one of four
dimensions; switch between them to find solid ground, collect every
quantum shard, and keep an eye on your energy.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker (default)
  list     - Show available modes
  levels   - Describe the level set
  records  - View level clear records
  serve    - Start SSH server for remote play

Examples:
  quantum
  quantum play challenge
  quantum play casual --difficulty easy
  quantum levels --from 11 --to 20
  quantum serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "Seed for generated levels (0 = from config)")
	pf.StringVar(&flagDBPath, "db", "~/.quantum/quantum.db", "Path to progress database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of level files overriding built-in levels")
	pf.StringVar(&flagLogPath, "log", "~/.quantum/quantum.log", "Path to log file")
	pf.BoolVar(&flagDebug, "debug", false, "Log debug events")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}
