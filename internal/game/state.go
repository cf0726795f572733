// Package game implements a single puzzle session: a reducer-driven state
// slice plus the side effects (sound, logging, progress) around it.
package game

import (
	"github.com/vovakirdan/puzzlekit/internal/core"
	"github.com/vovakirdan/puzzlekit/internal/difficulty"
	"github.com/vovakirdan/puzzlekit/internal/levels"
)

// NoLevel is the LevelNumber of a session with nothing loaded.
const NoLevel = -1

// State is the session state slice. Handlers return new values and never
// modify the level they were given.
type State struct {
	LevelNumber int
	Level       levels.Level
	Player      core.Position
	Moves       int
	Solved      bool
}

// InitialState returns the state before any level is loaded.
func InitialState() State {
	return State{LevelNumber: NoLevel}
}

// Loaded reports whether a level is loaded.
func (s State) Loaded() bool {
	return s.LevelNumber != NoLevel
}

// Tier returns the difficulty tier of the loaded level.
func (s State) Tier() difficulty.Tier {
	return difficulty.FromLevelNumber(s.LevelNumber)
}

// DistanceToGoal returns the Manhattan distance from the player to the goal.
func (s State) DistanceToGoal() int {
	return core.Distance(s.Player, s.Level.Goal)
}
