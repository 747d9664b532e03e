package app

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavedeck/internal/keymap"
	"github.com/llehouerou/wavedeck/internal/ui"
	"github.com/llehouerou/wavedeck/internal/ui/cursor"
	"github.com/llehouerou/wavedeck/internal/ui/gauge"
	"github.com/llehouerou/wavedeck/internal/ui/render"
	"github.com/llehouerou/wavedeck/internal/ui/styles"
)

const (
	filesTitle        = "Audio Files"
	filesTitleLooping = "Audio Files [LOOPING]"
	tooSmall          = "Terminal too small"

	minPanelHeight = 2
	minPanelWidth  = 4
)

// View renders the two panes, the gauge and the footer line.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	bodyHeight := m.height - ui.FooterHeight
	filesHeight := bodyHeight - ui.GaugeHeight
	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth
	if filesHeight < minPanelHeight || leftWidth < minPanelWidth {
		return render.Fit(tooSmall, m.width)
	}

	s := m.state
	dirs := styles.RenderPanel(
		render.Sanitize(s.Path()),
		listRows(s.Listing().Directories, s.DirCursor(), leftWidth-ui.BorderWidth, bodyHeight-ui.BorderHeight),
		leftWidth, bodyHeight,
		s.Focus() == PaneDirectories,
	)

	title := filesTitle
	if s.Looping() {
		title = filesTitleLooping
	}
	files := styles.RenderPanel(
		title,
		listRows(s.Listing().Files, s.FileCursor(), rightWidth-ui.BorderWidth, filesHeight-ui.BorderHeight),
		rightWidth, filesHeight,
		s.Focus() == PaneFiles,
	)

	info := gauge.Snapshot(s.Player())
	progress := styles.RenderPanel(
		gauge.Title(info),
		[]string{gauge.Line(info, rightWidth-ui.BorderWidth)},
		rightWidth, ui.GaugeHeight,
		false,
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		dirs,
		lipgloss.JoinVertical(lipgloss.Left, files, progress),
	)
	return body + "\n" + m.renderFooter()
}

// renderFooter shows the last error, or the key help when there is none.
func (m Model) renderFooter() string {
	t := styles.T()
	if msg := m.state.Err(); msg != "" {
		line := t.S().Error.Render(render.Truncate(msg, m.width))
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
	}
	bindings := keymap.ShortHelp(m.state.Focus().String())
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.ShortHelpView(bindings))
}

// listRows renders the visible window of items with a ">" marker on the
// cursor row. Every row is exactly width cells and height rows are returned.
func listRows(items []string, c cursor.Cursor, width, height int) []string {
	if height <= 0 {
		return nil
	}
	t := styles.T()
	idx, ok := c.Index()
	start, end := cursor.Window(idx, len(items), height, ui.ScrollMargin)

	rows := make([]string, 0, height)
	for i := start; i < end; i++ {
		name := filepath.Base(items[i])
		if ok && i == idx {
			rows = append(rows, t.S().Cursor.Render(render.Fit(">"+name, width)))
			continue
		}
		rows = append(rows, t.S().Base.Render(render.Fit(" "+name, width)))
	}
	for len(rows) < height {
		rows = append(rows, render.EmptyLine(width))
	}
	return rows
}
