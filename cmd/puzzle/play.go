package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/puzzlekit/internal/audio"
	"github.com/vovakirdan/puzzlekit/internal/devlog"
	"github.com/vovakirdan/puzzlekit/internal/difficulty"
	"github.com/vovakirdan/puzzlekit/internal/events"
	"github.com/vovakirdan/puzzlekit/internal/game"
	"github.com/vovakirdan/puzzlekit/internal/platform/tui"
)

var flagTier string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing at the given level (1-based). Without a level, play starts
at the first unsolved level.

Controls:
  Arrows/WASD  - Move
  R            - Restart level
  N/Enter      - Next level
  P            - Previous level
  ?            - Toggle help
  Q/Esc        - Quit

Examples:
  puzzle play
  puzzle play 7
  puzzle play --tier medium`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTier, "tier", "", "Start at the first level of a tier: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	if a.catalog.Count() == 0 {
		return fmt.Errorf("no levels available")
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	start, err := startLevel(a, args, bestMoves(store))
	if err != nil {
		return err
	}

	devLog, closeLog := openDevLog(a.prefs.DevModeEnabled)
	defer closeLog()

	// Restarting the bell is only cheap when we own a real terminal
	player := audio.Player{
		AudioDisabled:   a.prefs.AudioDisabled,
		SupportsRestart: term.IsTerminal(int(os.Stdout.Fd())),
	}

	opts := sessionOptions(a, player, audio.NewBellClip(os.Stdout), devLog)
	if store != nil {
		opts.Recorder = store
	}

	session := game.NewSession(opts)
	defer session.Close()
	session.Load(start)

	return tui.Run(session)
}

// sessionOptions wires the bell to solves, and to every move when the
// step_sound preference is on.
func sessionOptions(a *app, player audio.Player, bell audio.Clip, devLog *devlog.Logger) game.Options {
	opts := game.Options{
		Catalog:   a.catalog,
		Bus:       events.NewBus(),
		Audio:     player,
		SolveClip: bell,
		Log:       devLog,
	}
	if a.prefs.StepSound {
		opts.StepClip = bell
	}
	return opts
}

// startLevel picks the zero-based level to open from args, --tier, or progress.
func startLevel(a *app, args []string, best map[int]int) (int, error) {
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > a.catalog.Count() {
			return 0, fmt.Errorf("level must be a number from 1 to %d", a.catalog.Count())
		}
		return n - 1, nil
	}

	if flagTier != "" {
		tier, ok := difficulty.ParseTier(flagTier)
		if !ok {
			return 0, fmt.Errorf("unknown tier %q (want easy, medium, or hard)", flagTier)
		}
		numbers := a.catalog.LevelNumbersIn(tier)
		if len(numbers) == 0 {
			return 0, fmt.Errorf("no %s levels available", tier)
		}
		return numbers[0], nil
	}

	for n := 0; n < a.catalog.Count(); n++ {
		if _, solved := best[n]; !solved {
			return n, nil
		}
	}
	return 0, nil
}

// openDevLog returns the developer logger. The TUI owns the terminal, so in
// developer mode messages go to ~/.puzzlekit/dev.log.
func openDevLog(devMode bool) (*devlog.Logger, func()) {
	if !devMode {
		return &devlog.Logger{DevMode: false}, func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return &devlog.Logger{DevMode: false}, func() {}
	}
	dir := filepath.Join(home, ".puzzlekit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &devlog.Logger{DevMode: false}, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "dev.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return &devlog.Logger{DevMode: false}, func() {}
	}
	return devlog.New(f, true), func() { f.Close() }
}
