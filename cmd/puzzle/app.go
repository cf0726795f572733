package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/puzzlekit/internal/config"
	"github.com/vovakirdan/puzzlekit/internal/levels"
	"github.com/vovakirdan/puzzlekit/internal/storage"
)

// app bundles what every command needs.
type app struct {
	prefs   config.Prefs
	catalog *levels.Catalog
	logger  *log.Logger
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "puzzle",
	})
}

// loadApp reads preferences, applies flag overrides, and loads the levels.
func loadApp() (*app, error) {
	logger := newLogger()

	prefs, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		prefs.DBPath = flagDBPath
	}
	if flagLevelsDir != "" {
		prefs.LevelsDir = flagLevelsDir
	}
	if flagDev {
		prefs.DevModeEnabled = true
	}
	if prefs.DevModeEnabled {
		logger.SetLevel(log.DebugLevel)
	}

	catalog, err := levels.Load(prefs.LevelsDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("levels loaded", "count", catalog.Count(), "dir", prefs.LevelsDir)

	return &app{prefs: prefs, catalog: catalog, logger: logger}, nil
}

// openStore opens the progress database. Commands that can run without it
// get nil and a warning.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.prefs.DBPath)
	if err != nil {
		a.logger.Warn("could not open progress database", "path", a.prefs.DBPath, "error", err)
		return nil
	}
	return store
}

// bestMoves returns the best recorded moves per level number.
func bestMoves(store *storage.Store) map[int]int {
	best := make(map[int]int)
	if store == nil {
		return best
	}
	entries, err := store.CompletedLevels()
	if err != nil {
		return best
	}
	for _, e := range entries {
		best[e.LevelNumber] = e.BestMoves
	}
	return best
}
