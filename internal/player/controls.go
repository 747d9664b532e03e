package player

import "time"

// Stop halts playback, releases the source and forgets its duration.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}

	p.device.clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.trackInfo = nil
	p.duration = 0
	p.looping = false
	p.state = Stopped
	p.finish()
}

// Pause pauses playback.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	p.device.lock()
	p.ctrl.Paused = true
	p.device.unlock()
	p.state = Paused
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	p.device.lock()
	p.ctrl.Paused = false
	p.device.unlock()
	p.state = Playing
}

// Toggle toggles between playing and paused states.
func (p *Player) Toggle() {
	switch p.state {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
	}
}

// State returns the playback state. A non-looping source that reached
// its end reports Stopped.
func (p *Player) State() State {
	if p.state.IsActive() && p.finished() {
		p.Stop()
	}
	return p.state
}

func (p *Player) finished() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Looping reports whether the current source repeats forever.
func (p *Player) Looping() bool { return p.looping }

// TrackInfo returns the playing track, or nil when stopped.
func (p *Player) TrackInfo() *TrackInfo { return p.trackInfo }

// Position returns the position inside the current source. For looping
// sources it restarts at zero on every repetition.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	p.device.lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	p.device.unlock()
	return pos
}

// Duration returns the total length of the current source and whether it
// is known.
func (p *Player) Duration() (time.Duration, bool) {
	return p.duration, p.duration > 0
}

// Progress returns the fraction of the current source played, in [0, 1].
func (p *Player) Progress() float64 {
	d, ok := p.Duration()
	if !ok {
		return 0
	}
	return ProgressFraction(p.Position(), d)
}

// Done returns a channel closed when the current source ends or is
// stopped. It is already closed while stopped.
func (p *Player) Done() <-chan struct{} { return p.done }
