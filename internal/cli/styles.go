package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors used for console output.
var colors = struct {
	Label   lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}{
	Label:   lipgloss.Color("#A29BFE"), // Lavender
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
}

// styles holds the lipgloss styles bound to one output stream.
// Colors are dropped automatically when the stream is not a terminal.
type styles struct {
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Label:   r.NewStyle().Foreground(colors.Label).Bold(true),
		Muted:   r.NewStyle().Foreground(colors.Muted),
		Error:   r.NewStyle().Foreground(colors.Error),
		Success: r.NewStyle().Foreground(colors.Success),
		Warning: r.NewStyle().Foreground(colors.Warning),
	}
}
