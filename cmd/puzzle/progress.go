package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/puzzlekit/internal/difficulty"
	"github.com/vovakirdan/puzzlekit/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show completion per difficulty",
	Args:  cobra.NoArgs,
	RunE:  runProgress,
}

var resetProgressCmd = &cobra.Command{
	Use:   "reset-progress",
	Short: "Forget all recorded progress",
	Args:  cobra.NoArgs,
	RunE:  runResetProgress,
}

func runProgress(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	store, err := storage.Open(a.prefs.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	best := bestMoves(store)

	fmt.Println("Progress")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %s\n", "Tier", "Solved", "Optimal")
	fmt.Printf("  %-8s  %-8s  %s\n", "----", "------", "-------")

	total := 0
	for _, tier := range difficulty.Tiers() {
		numbers := a.catalog.LevelNumbersIn(tier)
		solved, optimal := 0, 0
		for _, n := range numbers {
			moves, ok := best[n]
			if !ok {
				continue
			}
			solved++
			if lvl, found := a.catalog.Level(n); found && moves <= lvl.ShortestPath() {
				optimal++
			}
		}
		total += solved
		fmt.Printf("  %-8s  %-8s  %d\n", tier.Title(), fmt.Sprintf("%d/%d", solved, len(numbers)), optimal)
	}

	fmt.Println()
	fmt.Printf("Total: %d/%d levels solved\n", total, a.catalog.Count())
	return nil
}

func runResetProgress(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	store, err := storage.Open(a.prefs.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Reset(); err != nil {
		return err
	}
	a.logger.Info("progress cleared", "db", a.prefs.DBPath)
	return nil
}
