package gauge

import (
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/wavedeck/internal/player"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{83 * time.Second, "1:23"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d), "FormatDuration(%v)", tt.d)
	}
}

func TestLine_Width(t *testing.T) {
	info := Info{
		State:    player.Playing,
		Ratio:    0.5,
		Position: 30 * time.Second,
		Duration: time.Minute,
		Known:    true,
	}
	for _, w := range []int{10, 40, 80} {
		assert.Equal(t, w, lipgloss.Width(Line(info, w)), "width %d", w)
	}
}

func TestLine_Times(t *testing.T) {
	info := Info{
		State:    player.Paused,
		Ratio:    0.25,
		Position: 15 * time.Second,
		Duration: time.Minute,
		Known:    true,
	}
	out := Line(info, 40)
	assert.Contains(t, out, "⏸")
	assert.Contains(t, out, "0:15")
	assert.Contains(t, out, "1:00")
}

func TestLine_LoopedPositionFolds(t *testing.T) {
	info := Info{
		State:    player.Playing,
		Position: 70 * time.Second,
		Duration: time.Minute,
		Known:    true,
	}
	assert.Contains(t, Line(info, 40), "0:10")
}

func TestLine_UnknownDuration(t *testing.T) {
	out := Line(Info{State: player.Stopped}, 40)
	assert.Contains(t, out, unknownTime)
	assert.Equal(t, 40, lipgloss.Width(out))
}

func TestLine_ZeroWidth(t *testing.T) {
	assert.Empty(t, Line(Info{}, 0))
}

func TestClampRatio(t *testing.T) {
	assert.InDelta(t, 0.0, clampRatio(math.NaN()), 0)
	assert.InDelta(t, 0.0, clampRatio(-1), 0)
	assert.InDelta(t, 1.0, clampRatio(2), 0)
	assert.InDelta(t, 0.3, clampRatio(0.3), 0)
}

func TestTitle(t *testing.T) {
	assert.Empty(t, Title(Info{}))

	info := Info{
		State: player.Playing,
		Track: &player.TrackInfo{Title: "Song", Artist: "Band"},
	}
	assert.Equal(t, "Band - Song", Title(info))
}

func TestSnapshot(t *testing.T) {
	m := player.NewMock()
	m.SetDuration(2 * time.Minute)
	assert.NoError(t, m.Play("/music/a.mp3", false))
	m.SetPosition(time.Minute)

	info := Snapshot(m)
	assert.Equal(t, player.Playing, info.State)
	assert.True(t, info.Known)
	assert.Equal(t, 2*time.Minute, info.Duration)
	assert.InDelta(t, 0.5, info.Ratio, 1e-9)
	assert.NotNil(t, info.Track)
}
