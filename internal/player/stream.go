package player

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
)

// Play stops any current audio and starts path, repeating it forever when
// loop is set. Playback continues on the speaker goroutine after Play
// returns. On error the player is left stopped.
func (p *Player) Play(path string, loop bool) error {
	p.Stop()

	streamer, format, f, err := openSource(path)
	if err != nil {
		return err
	}

	if err := p.Open(); err != nil {
		streamer.Close()
		f.Close()
		return err
	}

	var src beep.Streamer = streamer
	if loop {
		looped, err := repeat(streamer)
		if err != nil {
			streamer.Close()
			f.Close()
			return &Error{Kind: KindDecode, Path: path, Err: fmt.Errorf("loop: %w", err)}
		}
		src = looped
	}
	if format.SampleRate != DeviceSampleRate {
		src = beep.Resample(4, format.SampleRate, DeviceSampleRate, src)
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.looping = loop
	p.duration = format.SampleRate.D(streamer.Len())
	p.ctrl = &beep.Ctrl{Streamer: src}
	p.trackInfo = readTrackInfo(path)
	p.trackInfo.Format = strings.ToUpper(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))

	done, finish := newFinisher()
	p.done = done
	p.finish = finish
	p.state = Playing

	p.device.play(beep.Seq(p.ctrl, beep.Callback(finish)))
	return nil
}

// repeat wraps s to play forever. Loop2 needs a known length, so sources
// reporting none are rewound whenever they run dry instead.
func repeat(s beep.StreamSeeker) (beep.Streamer, error) {
	if s.Len() > 0 {
		return beep.Loop2(s)
	}
	return &rewinder{s: s}, nil
}

type rewinder struct {
	s   beep.StreamSeeker
	err error
}

func (r *rewinder) Stream(samples [][2]float64) (n int, ok bool) {
	rewound := false
	for n < len(samples) {
		got, more := r.s.Stream(samples[n:])
		n += got
		if got > 0 {
			rewound = false
		}
		if more && got > 0 {
			continue
		}
		// Nothing came out right after a rewind: the source is empty.
		if rewound {
			return n, n > 0
		}
		if err := r.s.Seek(0); err != nil {
			r.err = err
			return n, n > 0
		}
		rewound = true
	}
	return n, true
}

func (r *rewinder) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.s.Err()
}
