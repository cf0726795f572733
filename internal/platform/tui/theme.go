package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/puzzlekit/internal/difficulty"
)

// Theme contains the visual styles for the puzzle screen.
type Theme struct {
	// Grid cells
	Floor  lipgloss.Style
	Wall   lipgloss.Style
	Player lipgloss.Style
	Goal   lipgloss.Style

	// HUD styles
	HUDTitle lipgloss.Style
	HUDValue lipgloss.Style
	HUDLabel lipgloss.Style
	Solved   lipgloss.Style

	Tiers map[difficulty.Tier]lipgloss.Style

	Board lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Floor:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Wall:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Player: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Bright yellow
		Goal:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),  // Lime green

		HUDTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Solved:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),

		Tiers: map[difficulty.Tier]lipgloss.Style{
			difficulty.Easy:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			difficulty.Medium: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			difficulty.Hard:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		},

		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// TierStyle returns the style for a tier, or a plain style if unknown.
func (t Theme) TierStyle(tier difficulty.Tier) lipgloss.Style {
	if s, ok := t.Tiers[tier]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
