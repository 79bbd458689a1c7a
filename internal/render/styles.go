package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"} // Purple
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#CA8A04", Dark: "#FACC15"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#38BDF8"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// Styles contains the line-oriented output styles
type Styles struct {
	Banner  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style

	// Help listing styles
	HelpCommand lipgloss.Style
	HelpDesc    lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() *Styles {
	s := &Styles{}

	s.Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	s.Success = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	s.Warning = lipgloss.NewStyle().
		Foreground(ColorWarning)

	s.Error = lipgloss.NewStyle().
		Foreground(ColorError)

	s.Info = lipgloss.NewStyle().
		Foreground(ColorInfo)

	s.Muted = lipgloss.NewStyle().
		Foreground(ColorMuted)

	s.HelpCommand = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(ColorMuted)

	return s
}
