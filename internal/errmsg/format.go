// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Navigation operations
	OpDirectoryOpen   Op = "open directory"
	OpDirectoryParent Op = "open parent directory"

	// Playback operations
	OpPlaybackStart Op = "play"
	OpDeviceOpen    Op = "open the default audio device"

	// Native library output captured from stderr
	OpAudioBackend Op = "run audio backend"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
