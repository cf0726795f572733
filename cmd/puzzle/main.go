// puzzle is a terminal grid-puzzle game with a 30-level campaign.
//
// Usage:
//
//	puzzle list              - List levels grouped by difficulty
//	puzzle play [level]      - Play a level (1-based, default: first unsolved)
//	puzzle progress          - Show completion per difficulty
//	puzzle reset-progress    - Forget all recorded progress
//
// Global flags:
//
//	--config <path>  - Preferences YAML (default: ~/.puzzlekit/prefs.yaml)
//	--db <path>      - Progress database path
//	--levels <dir>   - Load levels from a directory instead of the built-in pack
//	--dev            - Enable developer logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLevelsDir string
	flagDev       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Grid puzzles in your terminal",
	Long: `puzzle is a terminal grid-puzzle game. Walk from the start to the goal
around the walls in as few moves as you can.

Levels 1-10 are easy, 11-20 medium and 21-30 hard.

Examples:
  puzzle list
  puzzle play
  puzzle play 12
  puzzle play --tier hard
  puzzle progress`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to preferences YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDev, "dev", false, "Enable developer logging (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetProgressCmd)
}
