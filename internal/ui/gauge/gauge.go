// Package gauge renders the playback progress line.
package gauge

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavedeck/internal/player"
	"github.com/llehouerou/wavedeck/internal/ui"
	"github.com/llehouerou/wavedeck/internal/ui/render"
	"github.com/llehouerou/wavedeck/internal/ui/styles"
)

const unknownTime = "--:--"

// Info is a snapshot of the player taken once per frame.
type Info struct {
	State    player.State
	Ratio    float64
	Position time.Duration
	Duration time.Duration
	Known    bool // Duration is meaningful
	Track    *player.TrackInfo
}

// Snapshot reads the values the gauge needs from p.
func Snapshot(p player.Interface) Info {
	d, ok := p.Duration()
	return Info{
		State:    p.State(),
		Ratio:    p.Progress(),
		Position: p.Position(),
		Duration: d,
		Known:    ok,
		Track:    p.TrackInfo(),
	}
}

// Title returns the now-playing label for the gauge border.
func Title(info Info) string {
	if info.Track == nil || info.State == player.Stopped {
		return ""
	}
	return info.Track.Label()
}

// Line renders the status glyph, elapsed time, bar and total time in
// exactly width cells.
// Format: ▶ 1:23 ████░░░░ 4:56
func Line(info Info, width int) string {
	if width <= 0 {
		return ""
	}

	status := " "
	switch info.State {
	case player.Playing:
		status = "▶"
	case player.Paused:
		status = "⏸"
	case player.Stopped:
	}

	pos, total := unknownTime, unknownTime
	if info.Known {
		pos = FormatDuration(positionInTrack(info))
		total = FormatDuration(info.Duration)
	}

	left := status + " " + pos + " "
	right := " " + total
	barWidth := width - lipgloss.Width(left) - lipgloss.Width(right)
	if barWidth < ui.MinGaugeBarWidth {
		return render.Fit(left+right, width)
	}

	bar := progress.New(
		progress.WithGradient(string(styles.T().Primary), string(styles.T().Secondary)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	return left + bar.ViewAs(clampRatio(info.Ratio)) + right
}

// positionInTrack folds the position of a looping source back into the
// current repetition.
func positionInTrack(info Info) time.Duration {
	if info.Duration <= 0 || info.Position < info.Duration {
		return info.Position
	}
	return info.Position % info.Duration
}

// FormatDuration formats d as m:ss, or h:mm:ss from one hour.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func clampRatio(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	return min(r, 1)
}
