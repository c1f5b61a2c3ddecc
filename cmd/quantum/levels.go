package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-jumper/internal/levels"
	"github.com/vovakirdan/quantum-jumper/internal/sim"
)

var (
	flagFrom int
	flagTo   int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Describe the level set",
	Long: `Print a summary of each level: platform, shard and hazard counts,
the dimensions that have platforms, and where the level comes from.

Levels without an authored file are generated from --seed.

Examples:
  quantum levels
  quantum levels --from 11 --to 20 --seed 7
  quantum levels --levels ./my-levels`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagFrom, "from", 0, "First level (default: first challenge level)")
	levelsCmd.Flags().IntVar(&flagTo, "to", 0, "Last level (default: last casual level)")
}

func runLevels(_ *cobra.Command, _ []string) {
	a, err := setup(setupOptions{logTo: os.Stderr})
	exitOnError("starting", err)
	defer a.Close()

	tun := a.cfg.ToTuning()
	from, to := flagFrom, flagTo
	if from <= 0 {
		from = tun.FirstLevel(sim.ModeChallenge)
	}
	if to <= 0 {
		to = tun.LastLevel(sim.ModeCasual)
	}
	if to < from {
		exitOnError("listing levels", fmt.Errorf("--to %d is before --from %d", to, from))
	}

	fmt.Printf("  %-5s  %-22s  %-9s  %-6s  %-7s  %-10s  %s\n",
		"Level", "Name", "Platforms", "Shards", "Hazards", "Dimensions", "Source")
	fmt.Printf("  %-5s  %-22s  %-9s  %-6s  %-7s  %-10s  %s\n",
		"-----", "----", "---------", "------", "-------", "----------", "------")

	for _, s := range a.levels.Summaries(from, to) {
		fmt.Printf("  %-5d  %-22s  %-9d  %-6d  %-7d  %-10s  %s\n",
			s.Number, s.Name, s.Platforms, s.Shards, s.Hazards, dimensionNames(s.Dimensions), source(s))
	}
}

func dimensionNames(ids []int) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, sim.DimensionByID(id).Name[:1])
	}
	return strings.Join(names, "")
}

func source(s levels.Summary) string {
	switch {
	case s.Generated:
		return "generated"
	case strings.HasPrefix(s.File, "data/"):
		return "built-in"
	default:
		return s.File
	}
}
