package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavedeck/internal/app/handler"
	"github.com/llehouerou/wavedeck/internal/keymap"
)

// Dispatch applies one key action. Every key, bound or not, first clears
// the previous error message. The returned command is tea.Quit once the
// user asked to exit.
func (s *State) Dispatch(action keymap.Action) tea.Cmd {
	s.errMsg = ""
	r := handler.Chain(action,
		s.handleGlobal,
		s.handlePane,
	)
	if s.shouldExit {
		return tea.Quit
	}
	return r.Cmd
}

func (s *State) handleGlobal(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionQuit:
		s.Quit()
		return handler.Handled(tea.Quit)
	case keymap.ActionToggleLoop:
		s.ToggleLoop()
		return handler.HandledNoCmd
	case keymap.ActionPlayPause:
		s.TogglePause()
		return handler.HandledNoCmd
	case keymap.ActionSwitchPane:
		s.SwitchPane()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (s *State) handlePane(action keymap.Action) handler.Result {
	switch s.focus {
	case PaneDirectories:
		return s.handleDirectories(action)
	case PaneFiles:
		return s.handleFiles(action)
	}
	return handler.NotHandled
}

func (s *State) handleDirectories(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionMoveUp:
		s.MoveDirectory(-1)
	case keymap.ActionMoveDown:
		s.MoveDirectory(1)
	case keymap.ActionMoveLeft:
		s.ExitDirectory()
	case keymap.ActionMoveRight:
		s.EnterDirectory()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (s *State) handleFiles(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionMoveUp:
		s.MoveFile(-1)
	case keymap.ActionMoveDown:
		s.MoveFile(1)
	case keymap.ActionMoveRight, keymap.ActionSelect:
		s.PlaySelected()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}
