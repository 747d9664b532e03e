package player

import (
	"path/filepath"
	"sync"
	"time"
)

// Mock is a test double for Player. It is safe for concurrent use.
type Mock struct {
	mu        sync.Mutex
	state     State
	looping   bool
	position  time.Duration
	duration  time.Duration
	trackInfo *TrackInfo
	openErr   error
	playErr   error
	playCalls []PlayCall
	stopCalls int
	closed    bool
	done      chan struct{}
}

// PlayCall records the arguments of one Play call.
type PlayCall struct {
	Path string
	Loop bool
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	done := make(chan struct{})
	close(done)
	return &Mock{state: Stopped, done: done}
}

func (m *Mock) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.openErr
}

func (m *Mock) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop()
	m.closed = true
}

// Play mirrors Player: it always stops first and stays stopped on error.
func (m *Mock) Play(path string, loop bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop()
	m.playCalls = append(m.playCalls, PlayCall{Path: path, Loop: loop})
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	m.looping = loop
	m.position = 0
	m.trackInfo = &TrackInfo{Path: path, Title: filepath.Base(path)}
	m.done = make(chan struct{})
	return nil
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop()
}

func (m *Mock) stop() {
	m.stopCalls++
	if m.state == Stopped {
		return
	}
	m.state = Stopped
	m.looping = false
	m.position = 0
	m.trackInfo = nil
	close(m.done)
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case Playing:
		m.state = Paused
	case Paused:
		m.state = Playing
	case Stopped:
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Looping() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.looping
}

func (m *Mock) TrackInfo() *TrackInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trackInfo
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

// Duration reports the configured duration only while a track is loaded.
func (m *Mock) Duration() (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadedDuration()
}

func (m *Mock) loadedDuration() (time.Duration, bool) {
	if !m.state.IsActive() || m.duration <= 0 {
		return 0, false
	}
	return m.duration, true
}

func (m *Mock) Progress() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.loadedDuration()
	if !ok {
		return 0
	}
	return ProgressFraction(m.position, d)
}

func (m *Mock) Done() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

// Test helpers

func (m *Mock) SetOpenError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openErr = err
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

func (m *Mock) PlayCalls() []PlayCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PlayCall(nil), m.playCalls...)
}

func (m *Mock) StopCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalls
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// SimulateFinished simulates a non-looping track reaching its end.
func (m *Mock) SimulateFinished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.IsActive() {
		m.stop()
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
