package resolution

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	window  lipgloss.Style
	detail  lipgloss.Style
	verdict lipgloss.Style
	folder  lipgloss.Style
	newWin  lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		window:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		verdict: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		folder:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("179")),
		newWin:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
