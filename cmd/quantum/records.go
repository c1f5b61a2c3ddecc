package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-jumper/internal/platform/tui"
	"github.com/vovakirdan/quantum-jumper/internal/registry"
	"github.com/vovakirdan/quantum-jumper/internal/storage"
)

var (
	flagInteractive bool
	flagReset       bool
	flagLimit       int
)

var recordsCmd = &cobra.Command{
	Use:   "records [mode]",
	Short: "Show level clear records",
	Long: `Display the best level clears for a mode: deepest level first,
then fastest simulated time. Without a mode, every mode is shown.

--reset deletes the mode's clears and the local saved progress.

Examples:
  quantum records
  quantum records challenge --limit 20
  quantum records -i
  quantum records casual --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse records in the terminal UI")
	recordsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the mode's records and local progress")
	recordsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of clears to show")
}

func runRecords(_ *cobra.Command, args []string) {
	modes := make([]string, 0, 2)
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'quantum list' to see available modes.")
			os.Exit(1)
		}
		modes = append(modes, args[0])
	} else {
		for _, g := range registry.List() {
			modes = append(modes, g.ID)
		}
	}

	a, err := setup(setupOptions{logTo: os.Stderr})
	exitOnError("starting", err)
	defer a.Close()

	if a.store == nil {
		a.Close()
		exitOnError("opening progress database", fmt.Errorf("no database at %s", flagDBPath))
	}

	if flagInteractive {
		cfg := a.runtimeConfig()
		if _, err := tui.RunRecords(a.store, cfg.ScreenW, cfg.ScreenH); err != nil {
			a.Close()
			exitOnError("showing records", err)
		}
		return
	}

	if flagReset {
		if len(args) == 0 {
			a.Close()
			exitOnError("resetting", fmt.Errorf("--reset needs a mode"))
		}
		resetMode(a.store, args[0])
		return
	}

	for i, mode := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printRecords(a.store, mode); err != nil {
			a.Close()
			exitOnError("retrieving records", err)
		}
	}
}

func printRecords(store *storage.Store, mode string) error {
	clears, err := store.TopClears(mode, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Level Clears - %s\n", mode)
	fmt.Println()

	if len(clears) == 0 {
		fmt.Println("No levels cleared yet.")
		fmt.Printf("Play 'quantum play %s' to set the first record!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-8s  %-12s  %s\n", "Rank", "Level", "Shards", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "------", "----", "------", "----")
	for i, c := range clears {
		fmt.Printf("  %-4d  %-5d  %-6d  %-8s  %-12s  %s\n",
			i+1, c.Level, c.Shards, tui.FormatSimTime(c.SimMS), c.Profile, c.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(mode)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Clears: %d  Best level: %d  Shards: %d\n", stats.Clears, stats.HighestLevel, stats.TotalShards)
	return nil
}

func resetMode(store *storage.Store, mode string) {
	exitOnError("clearing records", store.ClearRecords(mode))
	exitOnError("clearing progress", store.ClearProgress(storage.DefaultProfile, mode))
	fmt.Printf("Cleared records and local progress for %s.\n", mode)
}
