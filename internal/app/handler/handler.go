// Package handler provides a result type and chain function for key handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavedeck/internal/keymap"
)

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the action.
var NotHandled = Result{}

// HandledNoCmd is returned by handlers that need no follow-up command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result indicating the action was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle an action.
type Handler func(keymap.Action) Result

// Chain offers action to each handler in order and returns the first
// result that handled it.
func Chain(action keymap.Action, handlers ...Handler) Result {
	for _, h := range handlers {
		if r := h(action); r.Handled {
			return r
		}
	}
	return NotHandled
}
