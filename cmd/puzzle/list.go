package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/puzzlekit/internal/difficulty"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels grouped by difficulty",
	Long:  `Shows every level in the campaign, grouped by difficulty, with par and your best.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}
	best := bestMoves(store)

	if a.catalog.Count() == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	for _, tier := range difficulty.Tiers() {
		numbers := a.catalog.LevelNumbersIn(tier)
		if len(numbers) == 0 {
			continue
		}

		fmt.Printf("%s\n", tier.Title())
		fmt.Printf("  %-4s  %-20s  %-4s  %s\n", "#", "Name", "Par", "Best")
		fmt.Printf("  %-4s  %-20s  %-4s  %s\n", "--", "----", "---", "----")
		for _, n := range numbers {
			lvl, _ := a.catalog.Level(n)
			bestStr := "-"
			if b, ok := best[n]; ok {
				bestStr = fmt.Sprint(b)
			}
			fmt.Printf("  %-4d  %-20s  %-4d  %s\n", n+1, lvl.Name, lvl.Par(), bestStr)
		}
		fmt.Println()
	}

	fmt.Println("Run 'puzzle play <#>' to play a level.")
	return nil
}
