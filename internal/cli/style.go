package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"orbitfx/internal/app"
	"orbitfx/internal/config"
	"orbitfx/internal/core"
)

var (
	headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	groupStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")).MarginTop(1)
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0")).Width(24)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA726"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")).Italic(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF5350"))
)

// RenderParameters formats a parameter snapshot grouped by section.
func RenderParameters(scene string, snapshot core.ParameterSnapshot) string {
	var b strings.Builder
	b.WriteString(headlineStyle.Render(scene + " parameters"))

	if len(snapshot.Groups) == 0 {
		b.WriteString("\n" + hintStyle.Render("no tunables"))
		return b.String()
	}

	for _, group := range snapshot.Groups {
		b.WriteString("\n" + groupStyle.Render(group.Name))
		for _, p := range group.Params {
			row := lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(p.Key), valueStyle.Render(p.Value))
			b.WriteString("\n" + row)
		}
	}
	b.WriteString("\n\n" + hintStyle.Render("override with --set key=value"))
	return b.String()
}

// RenderScenes lists scene names and marks the configured one.
func RenderScenes(names []string, current string) string {
	lines := make([]string, 0, len(names)+1)
	lines = append(lines, headlineStyle.Render(config.DefaultTitle+" scenes"))
	for _, name := range names {
		marker := "  "
		if name == current {
			marker = "* "
		}
		lines = append(lines, marker+valueStyle.Render(name))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderSweep prints one row per scenario in combination order.
func RenderSweep(axes []app.SweepAxis, results []app.SweepResult) string {
	lines := make([]string, 0, len(results)+1)
	lines = append(lines, headlineStyle.Render(fmt.Sprintf("%d scenarios", len(results))))
	for _, r := range results {
		label := r.Label(axes)
		if label == "" {
			label = "base"
		}
		if r.Err != nil {
			lines = append(lines, labelStyle.Render(label)+"  "+errorStyle.Render(r.Err.Error()))
			continue
		}
		stats := fmt.Sprintf("visible=%.2f on_screen=%.2f opacity=%.2f respawns=%d (%.2f/s)",
			r.MeanVisible, r.OnScreen, r.MeanOpacity, r.Respawns, r.RespawnsPerSecond)
		lines = append(lines, labelStyle.Render(label)+"  "+valueStyle.Render(stats))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
