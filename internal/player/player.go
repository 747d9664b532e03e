// Package player plays audio files through the default output device.
package player

import (
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
)

// DeviceSampleRate is the rate the output device is opened at.
// Sources at other rates are resampled.
const DeviceSampleRate beep.SampleRate = 44100

const (
	extMP3  = ".mp3"
	extWAV  = ".wav"
	extOGG  = ".ogg"
	extFLAC = ".flac"
)

type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// Player owns the output device and at most one playing source.
// Its methods must be called from a single goroutine; the speaker
// goroutine is only reached through the speaker package's own lock.
type Player struct {
	device device

	state     State
	ctrl      *beep.Ctrl
	streamer  beep.StreamSeekCloser
	format    beep.Format
	file      *os.File
	trackInfo *TrackInfo
	duration  time.Duration
	looping   bool

	done   chan struct{}
	finish func()
}

// TrackInfo describes the playing file.
type TrackInfo struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Format string
}

// New returns a stopped player using the beep speaker as output.
// The device is not opened until Open or the first Play.
func New() *Player {
	return newWithDevice(&speakerDevice{})
}

func newWithDevice(d device) *Player {
	done := make(chan struct{})
	close(done)
	return &Player{
		device: d,
		state:  Stopped,
		done:   done,
		finish: func() {},
	}
}

// Open opens the output device. It is safe to call more than once.
func (p *Player) Open() error {
	if err := p.device.open(DeviceSampleRate); err != nil {
		return &Error{Kind: KindDevice, Err: err}
	}
	return nil
}

// Close stops playback and releases the output device.
func (p *Player) Close() {
	p.Stop()
	p.device.close()
}

// newFinisher returns a done channel and an idempotent function closing it.
// The speaker callback and Stop may both call it.
func newFinisher() (chan struct{}, func()) {
	done := make(chan struct{})
	var once sync.Once
	return done, func() { once.Do(func() { close(done) }) }
}
