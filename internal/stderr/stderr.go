//go:build !windows

// Package stderr captures output that native audio libraries (ALSA via
// oto) write straight to file descriptor 2, so it does not corrupt the TUI.
package stderr

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// Capture redirects fd 2 into a pipe until Stop is called.
type Capture struct {
	lines      chan string
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	stopped    bool
}

// Start begins capturing stderr output. Call it before the audio device
// is opened. On error nothing is redirected and the program can continue.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		lines:      make(chan string, 100),
		origStderr: orig,
		pipeRead:   r,
		pipeWrite:  w,
	}
	go c.read()
	return c, nil
}

func (c *Capture) read() {
	defer close(c.lines)
	scanner := bufio.NewScanner(c.pipeRead)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case c.lines <- line:
		default:
			// Drop rather than block the writer.
		}
	}
}

// Lines receives captured lines. It is closed after Stop.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// Stop restores the original stderr.
func (c *Capture) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true

	_ = unix.Dup2(c.origStderr, int(os.Stderr.Fd()))
	_ = unix.Close(c.origStderr)

	c.pipeWrite.Close()
	c.pipeRead.Close()
}
