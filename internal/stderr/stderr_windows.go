//go:build windows

// Package stderr provides a pass-through implementation for Windows.
// Windows audio backends don't produce the stderr noise ALSA does.
package stderr

// Capture is inert on Windows.
type Capture struct {
	lines chan string
}

// Start returns a capture that never receives lines.
func Start() (*Capture, error) {
	return &Capture{lines: make(chan string)}, nil
}

// Lines never delivers; it is closed after Stop.
func (c *Capture) Lines() <-chan string { return c.lines }

// Stop closes Lines.
func (c *Capture) Stop() {
	select {
	case <-c.lines:
	default:
		close(c.lines)
	}
}
