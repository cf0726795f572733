// Package core provides fundamental types and utilities for puzzlekit.
// It contains no external dependencies to keep game logic pure and testable.
package core

import "fmt"

// Position is a cell on the level grid.
// Row increases downward, Column increases to the right.
// No bounds are enforced here; the level decides what is in range.
type Position struct {
	Row    int `yaml:"row"`
	Column int `yaml:"column"`
}

// P is a convenience constructor for Position.
func P(row, column int) Position {
	return Position{Row: row, Column: column}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// Step returns the position one cell away in the given direction.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Column: p.Column + dc}
}

// Distance returns the number of single-cell moves between two positions
// when diagonal movement is not allowed (Manhattan distance).
func Distance(a, b Position) int {
	return Abs(a.Row-b.Row) + Abs(a.Column-b.Column)
}

// Direction is one of the four grid movement directions.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (row, column) offset for one step in this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
