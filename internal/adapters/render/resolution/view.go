package resolution

import (
	"fmt"
	"time"

	"github.com/bnema/openwin/internal/application"
	"github.com/bnema/openwin/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type RenderOptions struct {
	Now time.Time
}

func renderDecision(decision application.Decision, opts RenderOptions, s styles) string {
	request := decision.Request
	target := request.FilePath
	if target == "" {
		target = "(no path)"
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("Open %s", target)),
		s.header.Render(fmt.Sprintf("context: %s  windows: %d", request.Context, decision.Windows)),
	}

	resolution := decision.Resolution
	switch resolution.Kind {
	case domain.ResolutionExistingWindow:
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.verdict.Render(fmt.Sprintf("-> reuse window %s", resolution.Window.ID)),
			windowDetails(resolution.Window, opts, s),
		)))
	case domain.ResolutionDiscoveredFolder:
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.folder.Render(fmt.Sprintf("-> open new window on %s", resolution.Folder)),
			s.detail.Render(fmt.Sprintf("   contains %s", request.SettingsFolderName)),
		)))
	default:
		lines = append(lines, s.section.Render(s.newWin.Render("-> open new window")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderWindows(windows []domain.WindowRecord, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Open Windows"),
		s.header.Render(fmt.Sprintf("windows: %d", len(windows))),
	}

	if len(windows) == 0 {
		lines = append(lines, s.empty.Render("No windows recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, window := range windows {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.window.Render(string(window.ID)),
			windowDetails(window, opts, s),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func windowDetails(window domain.WindowRecord, opts RenderOptions, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.detail.Render("   "+window.Label()),
		s.detail.Render("   last focused "+focusedLabel(window.FocusedAt, opts.Now)),
	)
}

func focusedLabel(focusedAt, now time.Time) string {
	if focusedAt.IsZero() {
		return "never"
	}
	if now.IsZero() {
		return focusedAt.Format(time.RFC3339)
	}

	return humanize.RelTime(focusedAt, now, "ago", "from now")
}
