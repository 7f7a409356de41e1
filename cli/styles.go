package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette shared with the status colors of the desktop app.
const (
	colorConnected  = lipgloss.Color("#2ec27e")
	colorConnecting = lipgloss.Color("#e5a50a")
	colorError      = lipgloss.Color("#e01b24")
)

// Styles renders status lines. The zero value renders plain text.
type Styles struct {
	Step    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles returns colored styles when color is true, plain ones otherwise.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{Step: plain, Success: plain, Error: plain}
	}
	return Styles{
		Step:    lipgloss.NewStyle().Foreground(colorConnecting),
		Success: lipgloss.NewStyle().Bold(true).Foreground(colorConnected),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(colorError),
	}
}
