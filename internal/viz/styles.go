package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subtleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	canvasStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444466")).Padding(0, 1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	stagedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Italic(true)
	infoStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	pausedStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	runningStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))

	gaugeHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	gaugeMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	gaugeLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
)

// GaugeBar renders a horizontal bar filled to fraction of width.
func GaugeBar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if fraction > 0.75 {
		return gaugeHigh.Render(bar)
	} else if fraction > 0.35 {
		return gaugeMid.Render(bar)
	}
	return gaugeLow.Render(bar)
}
