package player

import (
	"errors"
	"fmt"
)

// Kind classifies playback failures.
type Kind int

const (
	// KindIO means the file could not be opened.
	KindIO Kind = iota + 1
	// KindDecode means the format is unsupported or the stream is corrupt.
	KindDecode
	// KindDevice means no audio output device could be opened.
	KindDevice
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrIO     = errors.New("cannot open file")
	ErrDecode = errors.New("cannot decode audio")
	ErrDevice = errors.New("cannot open audio device")
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindDecode:
		return "decode"
	case KindDevice:
		return "device"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindIO:
		return ErrIO
	case KindDecode:
		return ErrDecode
	case KindDevice:
		return ErrDevice
	default:
		return nil
	}
}

// Error is returned by Open and Play.
type Error struct {
	Kind Kind
	Path string // empty for device errors
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", e.Kind.sentinel(), e.Err)
	}
	return fmt.Sprintf("%v %s: %v", e.Kind.sentinel(), e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of a playback error, or 0 if err is not one.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
