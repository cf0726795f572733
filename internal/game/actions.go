package game

import (
	"github.com/vovakirdan/puzzlekit/internal/core"
	"github.com/vovakirdan/puzzlekit/internal/levels"
	"github.com/vovakirdan/puzzlekit/internal/reducer"
)

// Action types handled by the session reducer.
const (
	TypeLoadLevel reducer.Type = "LOAD_LEVEL"
	TypeMove      reducer.Type = "MOVE"
	TypeRestart   reducer.Type = "RESTART"
)

// LoadLevelAction replaces the session with a freshly started level.
type LoadLevelAction struct {
	LevelNumber int
	Level       levels.Level
}

func (LoadLevelAction) ActionType() reducer.Type { return TypeLoadLevel }

// MoveAction moves the player one cell.
type MoveAction struct {
	Dir core.Direction
}

func (MoveAction) ActionType() reducer.Type { return TypeMove }

// RestartAction puts the player back on the start cell.
type RestartAction struct{}

func (RestartAction) ActionType() reducer.Type { return TypeRestart }

// Handlers returns the session's handler table.
func Handlers() reducer.Handlers[State] {
	return reducer.Handlers[State]{
		TypeLoadLevel: handleLoadLevel,
		TypeMove:      handleMove,
		TypeRestart:   handleRestart,
	}
}

// NewReducer creates the session reducer starting from InitialState.
func NewReducer(opts ...reducer.Option) *reducer.Reducer[State] {
	return reducer.New(InitialState(), Handlers(), opts...)
}

// loadLevelPayload and movePayload accept actions dispatched by value or by
// pointer. Anything else reports false and the handler leaves state alone.
func loadLevelPayload(a reducer.Action) (LoadLevelAction, bool) {
	switch act := a.(type) {
	case LoadLevelAction:
		return act, true
	case *LoadLevelAction:
		if act != nil {
			return *act, true
		}
	}
	return LoadLevelAction{}, false
}

func movePayload(a reducer.Action) (MoveAction, bool) {
	switch act := a.(type) {
	case MoveAction:
		return act, true
	case *MoveAction:
		if act != nil {
			return *act, true
		}
	}
	return MoveAction{}, false
}

func handleLoadLevel(s State, a reducer.Action) State {
	act, ok := loadLevelPayload(a)
	if !ok {
		return s
	}
	return State{
		LevelNumber: act.LevelNumber,
		Level:       act.Level,
		Player:      act.Level.Start,
	}
}

func handleMove(s State, a reducer.Action) State {
	act, ok := movePayload(a)
	if !ok || !s.Loaded() || s.Solved {
		return s
	}

	next := s.Player.Step(act.Dir)
	if next == s.Player || !s.Level.Walkable(next) {
		return s
	}

	s.Player = next
	s.Moves++
	s.Solved = next == s.Level.Goal
	return s
}

func handleRestart(s State, _ reducer.Action) State {
	if !s.Loaded() {
		return s
	}
	s.Player = s.Level.Start
	s.Moves = 0
	s.Solved = false
	return s
}
