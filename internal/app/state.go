package app

import (
	"errors"
	"io/fs"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/logging"
	"github.com/llehouerou/wavedeck/internal/navigator"
	"github.com/llehouerou/wavedeck/internal/player"
	"github.com/llehouerou/wavedeck/internal/ui/cursor"
)

// Pane identifies which list receives navigation keys.
type Pane int

const (
	PaneDirectories Pane = iota
	PaneFiles
)

func (p Pane) String() string {
	switch p {
	case PaneDirectories:
		return "directories"
	case PaneFiles:
		return "files"
	}
	return "unknown"
}

// ScanFunc lists a directory. navigator.Scan in production.
type ScanFunc func(dir string) (navigator.Listing, error)

// State is the browser and playback state mutated by key actions.
// It is owned by a single goroutine; only the player is touched by the
// audio backend.
type State struct {
	path    string
	listing navigator.Listing
	dirs    cursor.Cursor
	files   cursor.Cursor
	focus   Pane

	looping    bool
	errMsg     string
	shouldExit bool

	history *navigator.History
	player  player.Interface
	scan    ScanFunc
	log     *logrus.Logger
}

// Option configures a State.
type Option func(*State)

// WithScanner replaces the directory scanner.
func WithScanner(fn ScanFunc) Option {
	return func(s *State) { s.scan = fn }
}

// WithLogger sets the debug logger.
func WithLogger(l *logrus.Logger) Option {
	return func(s *State) { s.log = l }
}

// NewState opens the output device on p and lists start. Neither failure
// is fatal: the message is kept for display and the state stays usable
// on an empty listing.
func NewState(start string, p player.Interface, opts ...Option) *State {
	s := &State{
		path:    start,
		looping: true,
		history: navigator.NewHistory(),
		player:  p,
		scan:    navigator.Scan,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := p.Open(); err != nil {
		s.fail(errmsg.Format(errmsg.OpDeviceOpen, err), err)
	}

	listing, err := s.scan(start)
	if err != nil {
		s.fail(errmsg.FormatWith(errmsg.OpDirectoryOpen, start, reason(err)), err)
	}
	s.setListing(listing)
	s.log.WithField("path", start).Debug("session started")
	return s
}

// Path returns the current directory.
func (s *State) Path() string { return s.path }

// Listing returns the current directory contents.
func (s *State) Listing() navigator.Listing { return s.listing }

// Focus returns the focused pane.
func (s *State) Focus() Pane { return s.focus }

// Looping reports whether new playback repeats forever.
func (s *State) Looping() bool { return s.looping }

// Err returns the last error message, or "" when there is none.
func (s *State) Err() string { return s.errMsg }

// ShouldExit reports whether the user asked to quit.
func (s *State) ShouldExit() bool { return s.shouldExit }

// Player returns the playback controller.
func (s *State) Player() player.Interface { return s.player }

// History returns the per-directory cursor memory.
func (s *State) History() *navigator.History { return s.history }

// DirCursor returns the directory list cursor.
func (s *State) DirCursor() cursor.Cursor { return s.dirs }

// FileCursor returns the file list cursor.
func (s *State) FileCursor() cursor.Cursor { return s.files }

// SelectedDirectory returns the highlighted subdirectory path.
func (s *State) SelectedDirectory() (string, bool) {
	return selected(s.listing.Directories, s.dirs)
}

// SelectedFile returns the highlighted audio file path.
func (s *State) SelectedFile() (string, bool) {
	return selected(s.listing.Files, s.files)
}

// ShowError replaces the displayed message. Used for lines the audio
// backend writes to stderr.
func (s *State) ShowError(msg string) {
	s.errMsg = msg
}

func (s *State) setListing(l navigator.Listing) {
	s.listing = l
	s.dirs.Reset(len(l.Directories))
	s.files.Reset(len(l.Files))
}

func (s *State) fail(msg string, err error) {
	s.errMsg = msg
	s.log.WithError(err).Warn(msg)
}

func selected(items []string, c cursor.Cursor) (string, bool) {
	i, ok := c.Index()
	if !ok || i >= len(items) {
		return "", false
	}
	return items[i], true
}

// reason strips the path an fs error repeats, since messages already name it.
func reason(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
