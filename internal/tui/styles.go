package tui

import "github.com/charmbracelet/lipgloss"

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	orange  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

	banner = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86"))
)

// palette indexes for canvas cells
const (
	inkNone = iota
	inkEdge
	inkPlatform
	inkGrass
	inkGrassFading
	inkP1
	inkP2
	inkImpact
	inkCoin
	inkHazard
)

var palette = []lipgloss.Style{
	inkNone:        lipgloss.NewStyle(),
	inkEdge:        dimmer,
	inkPlatform:    yellow,
	inkGrass:       green,
	inkGrassFading: dim,
	inkP1:          cyan,
	inkP2:          magenta,
	inkImpact:      orange,
	inkCoin:        yellow,
	inkHazard:      red,
}
