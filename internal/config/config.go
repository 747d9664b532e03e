// Package config holds the options chosen on the command line.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultPollInterval is the redraw cadence of the interactive UI.
const DefaultPollInterval = 16 * time.Millisecond

// Mode selects how the program runs.
type Mode int

const (
	// ModeInteractive browses the filesystem in a TUI.
	ModeInteractive Mode = iota
	// ModeSingle plays one file and exits.
	ModeSingle
)

func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}
	return "interactive"
}

// Options are populated from CLI flags only; there is no config file and
// no environment lookup.
type Options struct {
	Path         string        // file to play; empty means interactive
	Loop         bool          // repeat Path forever; ignored when browsing
	LogFile      string        // debug log destination; empty disables logging
	PollInterval time.Duration // interactive redraw interval
	StartDir     string        // interactive start directory
}

// Default returns options for an interactive session with no logging.
func Default() Options {
	return Options{PollInterval: DefaultPollInterval}
}

// Mode reports which mode the options select.
func (o Options) Mode() Mode {
	if o.Path != "" {
		return ModeSingle
	}
	return ModeInteractive
}

// Validate checks option consistency.
func (o Options) Validate() error {
	if o.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", o.PollInterval)
	}
	return nil
}

// ResolveStartDir returns the absolute working directory.
func ResolveStartDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Abs(wd)
}
