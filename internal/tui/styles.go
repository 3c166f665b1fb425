package tui

import "github.com/charmbracelet/lipgloss"

// ANSI palette indexes, so the output follows the terminal's own theme.
var (
	colorSuccess = lipgloss.Color("2")
	colorFailure = lipgloss.Color("1")
	colorWarning = lipgloss.Color("3")
)

type styles struct {
	plain   lipgloss.Style
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	help    lipgloss.Style
}

func newStyles(out, errOut *lipgloss.Renderer) styles {
	return styles{
		plain:   out.NewStyle(),
		title:   out.NewStyle().Bold(true),
		success: out.NewStyle().Foreground(colorSuccess),
		failure: errOut.NewStyle().Foreground(colorFailure),
		warning: errOut.NewStyle().Foreground(colorWarning),
		help:    out.NewStyle().Faint(true),
	}
}
