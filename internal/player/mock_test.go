package player

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_PlayStopLifecycle(t *testing.T) {
	m := NewMock()
	assert.Equal(t, Stopped, m.State())
	select {
	case <-m.Done():
	default:
		t.Fatal("Done should be closed before any play")
	}

	require.NoError(t, m.Play("/music/a.mp3", true))
	assert.Equal(t, Playing, m.State())
	assert.True(t, m.Looping())
	assert.Equal(t, "a.mp3", m.TrackInfo().Title)
	done := m.Done()

	m.Stop()
	assert.Equal(t, Stopped, m.State())
	assert.Nil(t, m.TrackInfo())
	select {
	case <-done:
	default:
		t.Fatal("Stop should close Done")
	}
}

func TestMock_PlayErrorLeavesStopped(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.Play("/music/a.mp3", false))

	m.SetPlayError(errors.New("boom"))
	assert.Error(t, m.Play("/music/b.mp3", false))
	assert.Equal(t, Stopped, m.State())
	assert.Len(t, m.PlayCalls(), 2)
}

func TestMock_ProgressNeedsLoadedDuration(t *testing.T) {
	m := NewMock()
	m.SetDuration(time.Minute)
	m.SetPosition(30 * time.Second)
	assert.InDelta(t, 0.0, m.Progress(), 0, "nothing loaded")

	require.NoError(t, m.Play("/music/a.mp3", false))
	m.SetPosition(30 * time.Second)
	assert.InDelta(t, 0.5, m.Progress(), 1e-9)

	d, ok := m.Duration()
	assert.True(t, ok)
	assert.Equal(t, time.Minute, d)
}

func TestMock_ToggleAndFinish(t *testing.T) {
	m := NewMock()
	m.Toggle()
	assert.Equal(t, Stopped, m.State(), "toggle without track does nothing")

	require.NoError(t, m.Play("/music/a.mp3", false))
	m.Toggle()
	assert.Equal(t, Paused, m.State())
	m.Toggle()
	assert.Equal(t, Playing, m.State())

	m.SimulateFinished()
	assert.Equal(t, Stopped, m.State())

	m.Close()
	assert.True(t, m.Closed())
}
