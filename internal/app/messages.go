// Package app wires the browser state to the bubbletea program.
package app

import "time"

// TickMsg is sent on every poll interval to redraw the progress gauge.
type TickMsg time.Time

// StderrMsg carries one line the audio backend wrote to stderr.
type StderrMsg struct {
	Line string
}
