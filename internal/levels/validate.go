package levels

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrEmptyID      = errors.New("level has no id")
	ErrBadSize      = errors.New("level size must be positive")
	ErrStartBlocked = errors.New("start is outside the grid or on a wall")
	ErrGoalBlocked  = errors.New("goal is outside the grid or on a wall")
	ErrStartIsGoal  = errors.New("start and goal are the same cell")
	ErrNoPathToGoal = errors.New("goal is unreachable from start")
)

// Validate checks that a level is playable.
func Validate(l *Level) error {
	if l.ID == "" {
		return ErrEmptyID
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrBadSize, l.Width, l.Height)
	}
	if !l.Walkable(l.Start) {
		return fmt.Errorf("%w: %v", ErrStartBlocked, l.Start)
	}
	if !l.Walkable(l.Goal) {
		return fmt.Errorf("%w: %v", ErrGoalBlocked, l.Goal)
	}
	if l.Start == l.Goal {
		return ErrStartIsGoal
	}
	if l.ShortestPath() < 0 {
		return ErrNoPathToGoal
	}
	return nil
}
