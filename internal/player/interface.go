package player

import "time"

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Open() error
	Close()
	Play(path string, loop bool) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	Looping() bool
	TrackInfo() *TrackInfo
	Position() time.Duration
	Duration() (time.Duration, bool)
	Progress() float64
	Done() <-chan struct{}
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
