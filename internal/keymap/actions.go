// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionToggleLoop Action = "toggle_loop"
	ActionPlayPause  Action = "play_pause"

	// Pane actions
	ActionSwitchPane Action = "switch_pane"
	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionMoveLeft   Action = "move_left"  // parent directory
	ActionMoveRight  Action = "move_right" // enter directory / replay file
	ActionSelect     Action = "select"     // enter - replay file
)
