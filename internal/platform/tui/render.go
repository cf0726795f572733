package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/puzzlekit/internal/core"
	"github.com/vovakirdan/puzzlekit/internal/game"
)

// Cell glyphs.
const (
	glyphFloor  = "·"
	glyphWall   = "#"
	glyphPlayer = "@"
	glyphGoal   = "*"
)

// RenderSession draws the HUD and the level grid.
func RenderSession(st game.State, theme Theme) string {
	if !st.Loaded() {
		return theme.HUDLabel.Render("No level loaded. Press n to start.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHUD(st, theme),
		theme.Board.Render(RenderGrid(st, theme)),
	)
}

func renderHUD(st game.State, theme Theme) string {
	tier := st.Tier()
	title := fmt.Sprintf("Level %d: %s", st.LevelNumber+1, st.Level.Name)

	stats := []string{
		theme.TierStyle(tier).Render(tier.Title()),
		theme.HUDLabel.Render("moves ") + theme.HUDValue.Render(fmt.Sprint(st.Moves)),
		theme.HUDLabel.Render("par ") + theme.HUDValue.Render(fmt.Sprint(st.Level.Par())),
		theme.HUDLabel.Render("to goal ") + theme.HUDValue.Render(fmt.Sprint(st.DistanceToGoal())),
	}

	lines := []string{
		theme.HUDTitle.Render(title),
		strings.Join(stats, theme.HUDLabel.Render("  |  ")),
	}
	if st.Solved {
		lines = append(lines, theme.Solved.Render("Solved! Press n for the next level."))
	}
	return strings.Join(lines, "\n")
}

// RenderGrid draws the level grid with the player and goal.
func RenderGrid(st game.State, theme Theme) string {
	var sb strings.Builder
	for row := 0; row < st.Level.Height; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < st.Level.Width; col++ {
			if col > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(renderCell(st, core.P(row, col), theme))
		}
	}
	return sb.String()
}

func renderCell(st game.State, p core.Position, theme Theme) string {
	switch {
	case p == st.Player:
		return theme.Player.Render(glyphPlayer)
	case p == st.Level.Goal:
		return theme.Goal.Render(glyphGoal)
	case st.Level.IsWall(p):
		return theme.Wall.Render(glyphWall)
	default:
		return theme.Floor.Render(glyphFloor)
	}
}
