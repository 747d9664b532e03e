package player

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// device is the audio sink the player drives.
type device interface {
	open(rate beep.SampleRate) error
	close()
	play(s beep.Streamer)
	clear()
	lock()
	unlock()
}

// speakerDevice drives the process-wide beep speaker.
type speakerDevice struct {
	opened bool
}

func (d *speakerDevice) open(rate beep.SampleRate) error {
	if d.opened {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}
	d.opened = true
	return nil
}

func (d *speakerDevice) close() {
	if !d.opened {
		return
	}
	speaker.Close()
	d.opened = false
}

func (d *speakerDevice) play(s beep.Streamer) { speaker.Play(s) }

func (d *speakerDevice) clear() {
	if d.opened {
		speaker.Clear()
	}
}

func (d *speakerDevice) lock() {
	if d.opened {
		speaker.Lock()
	}
}

func (d *speakerDevice) unlock() {
	if d.opened {
		speaker.Unlock()
	}
}
