package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#4ade80")
	colorBlue   = lipgloss.Color("#60a5fa")
	colorPurple = lipgloss.Color("#c084fc")
	colorRed    = lipgloss.Color("#f87171")
	colorGray   = lipgloss.Color("#9ca3af")
	colorBorder = lipgloss.Color("#4b5563")
)

// Styles groups the lipgloss styles used by the renderer and the views.
type Styles struct {
	Prompt  lipgloss.Style
	Title   lipgloss.Style
	Section lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Label   lipgloss.Style
	Indent  lipgloss.Style
	Panel   lipgloss.Style
	Active  lipgloss.Style
}

// DefaultStyles mirrors the web terminal palette.
func DefaultStyles() Styles {
	return Styles{
		Prompt:  lipgloss.NewStyle().Foreground(colorGreen),
		Title:   lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
		Section: lipgloss.NewStyle().Foreground(colorPurple),
		Heading: lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(colorGray),
		Error:   lipgloss.NewStyle().Foreground(colorRed),
		Success: lipgloss.NewStyle().Foreground(colorGreen),
		Label:   lipgloss.NewStyle().Foreground(colorGreen),
		Indent:  lipgloss.NewStyle().PaddingLeft(2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		Active: lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
	}
}
