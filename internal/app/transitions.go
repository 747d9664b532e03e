package app

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/wavedeck/internal/errmsg"
)

// EnterDirectory descends into the selected subdirectory. Without a
// selection it does nothing. A scan failure keeps the current directory
// and sets the error message.
func (s *State) EnterDirectory() {
	target, ok := s.SelectedDirectory()
	if !ok {
		return
	}
	s.changeDirectory(target, errmsg.OpDirectoryOpen)
}

// ExitDirectory ascends to the parent directory. At the filesystem root
// it does nothing.
func (s *State) ExitDirectory() {
	parent := filepath.Dir(s.path)
	if parent == s.path {
		return
	}
	s.changeDirectory(parent, errmsg.OpDirectoryParent)
}

// changeDirectory scans target first so a failure leaves every field
// untouched. On success the cursor of the directory being left is
// remembered and the one of target restored.
func (s *State) changeDirectory(target string, op errmsg.Op) {
	listing, err := s.scan(target)
	if err != nil {
		s.fail(errmsg.FormatWith(op, target, reason(err)), err)
		return
	}

	if i, ok := s.dirs.Index(); ok {
		s.history.Record(s.path, i)
	}

	s.path = target
	s.setListing(listing)
	if i, ok := s.history.Recall(target); ok {
		s.dirs.Jump(i, len(listing.Directories))
	}

	s.log.WithFields(logrus.Fields{
		"path":  target,
		"dirs":  len(listing.Directories),
		"files": len(listing.Files),
	}).Debug("changed directory")
}

// MoveDirectory moves the directory cursor by delta, clamped to the list.
func (s *State) MoveDirectory(delta int) {
	s.dirs.Move(delta, len(s.listing.Directories))
}

// MoveFile moves the file cursor by delta, clamped to the list, then
// plays the selected file. At a boundary the same track restarts.
func (s *State) MoveFile(delta int) {
	s.files.Move(delta, len(s.listing.Files))
	s.PlaySelected()
}

// PlaySelected plays the highlighted file with the current looping flag.
// Without a selection it does nothing. A failure leaves the player
// stopped and sets the error message.
func (s *State) PlaySelected() {
	path, ok := s.SelectedFile()
	if !ok {
		return
	}
	if err := s.player.Play(path, s.looping); err != nil {
		s.player.Stop()
		s.fail(errmsg.FormatWith(errmsg.OpPlaybackStart, filepath.Base(path), reason(err)), err)
		return
	}
	i, _ := s.files.Index()
	s.log.WithFields(logrus.Fields{
		"path":  path,
		"index": i,
		"loop":  s.looping,
	}).Debug("playing")
}

// StopPlayback halts the current track.
func (s *State) StopPlayback() {
	s.player.Stop()
}

// ToggleLoop flips the looping flag and stops playback. The next play
// picks up the new flag.
func (s *State) ToggleLoop() {
	s.looping = !s.looping
	s.player.Stop()
	s.log.WithField("loop", s.looping).Debug("toggled looping")
}

// TogglePause pauses or resumes the current track.
func (s *State) TogglePause() {
	s.player.Toggle()
}

// SwitchPane moves focus to the other list. Entering the file list plays
// the selected file; leaving it stops playback.
func (s *State) SwitchPane() {
	switch s.focus {
	case PaneDirectories:
		s.focus = PaneFiles
		s.PlaySelected()
	case PaneFiles:
		s.focus = PaneDirectories
		s.StopPlayback()
	}
}

// Quit marks the session for exit.
func (s *State) Quit() {
	s.shouldExit = true
}
