// Package levels provides the level source: level definitions, loading
// from YAML files, and the embedded default level pack.
package levels

import (
	"github.com/gammazero/deque"

	"github.com/vovakirdan/puzzlekit/internal/core"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Start    core.Position
	Goal     core.Position
	Walls    map[core.Position]bool
	Metadata map[string]string
	FilePath string
}

// InBounds reports whether p lies on the grid.
func (l *Level) InBounds(p core.Position) bool {
	return p.Row >= 0 && p.Row < l.Height && p.Column >= 0 && p.Column < l.Width
}

// IsWall reports whether p is a wall cell.
func (l *Level) IsWall(p core.Position) bool {
	return l.Walls[p]
}

// Walkable reports whether a player may stand on p.
func (l *Level) Walkable(p core.Position) bool {
	return l.InBounds(p) && !l.IsWall(p)
}

// Par returns the fewest moves the level could take if there were no walls.
func (l *Level) Par() int {
	return core.Distance(l.Start, l.Goal)
}

// ShortestPath returns the minimum number of moves from Start to Goal,
// or -1 if the goal is unreachable.
func (l *Level) ShortestPath() int {
	if !l.Walkable(l.Start) || !l.Walkable(l.Goal) {
		return -1
	}

	dist := map[core.Position]int{l.Start: 0}
	var q deque.Deque[core.Position]
	q.PushBack(l.Start)

	dirs := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}
	for q.Len() > 0 {
		cur := q.PopFront()
		if cur == l.Goal {
			return dist[cur]
		}
		for _, d := range dirs {
			next := cur.Step(d)
			if _, seen := dist[next]; seen || !l.Walkable(next) {
				continue
			}
			dist[next] = dist[cur] + 1
			q.PushBack(next)
		}
	}

	return -1
}
