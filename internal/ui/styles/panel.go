// Package styles holds the color theme and panel styles.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PanelStyle returns the bordered style of a pane. The focused pane gets
// the accent border color.
func PanelStyle(focused bool) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor(focused))
}

// RenderPanel draws body inside a rounded border of exactly width x height
// cells with title embedded in the top edge. Body lines must already be
// fitted to width-2 cells.
func RenderPanel(title string, body []string, width, height int, focused bool) string {
	if width < 2 || height < 2 {
		return ""
	}
	inner := width - 2
	border := lipgloss.RoundedBorder()
	edge := lipgloss.NewStyle().Foreground(borderColor(focused))

	title = runewidth.Truncate(title, inner, "…")
	fill := inner - runewidth.StringWidth(title)
	top := edge.Render(border.TopLeft) +
		T().S().Title.Render(title) +
		edge.Render(strings.Repeat(border.Top, fill)+border.TopRight)

	content := strings.Join(body, "\n")
	rest := PanelStyle(focused).
		BorderTop(false).
		Width(inner).
		Height(height - 2).
		Render(content)

	return top + "\n" + rest
}

func borderColor(focused bool) lipgloss.Color {
	if focused {
		return T().BorderFocus
	}
	return T().Border
}
