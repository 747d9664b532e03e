package app

import (
	"io/fs"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavedeck/internal/navigator"
	"github.com/llehouerou/wavedeck/internal/player"
	"github.com/llehouerou/wavedeck/internal/ui/testutil"
)

// newTestState builds a State on a fresh temp tree of entries.
func newTestState(t *testing.T, entries ...string) (*State, *player.Mock, string) {
	t.Helper()
	root := t.TempDir()
	testutil.WriteTree(t, root, entries...)
	mock := player.NewMock()
	return NewState(root, mock), mock, root
}

var errNotFound = fs.ErrNotExist

// fakeScanner serves listings from memory. Unknown paths fail.
type fakeScanner struct {
	listings map[string]navigator.Listing
	errs     map[string]error
	calls    []string
}

func newFakeScanner() *fakeScanner {
	return &fakeScanner{
		listings: make(map[string]navigator.Listing),
		errs:     make(map[string]error),
	}
}

func (f *fakeScanner) add(dir string, subdirs []string, files []string) {
	var l navigator.Listing
	for _, d := range subdirs {
		l.Directories = append(l.Directories, filepath.Join(dir, d))
	}
	for _, name := range files {
		l.Files = append(l.Files, filepath.Join(dir, name))
	}
	f.listings[dir] = l
}

func (f *fakeScanner) scan(dir string) (navigator.Listing, error) {
	f.calls = append(f.calls, dir)
	if err, ok := f.errs[dir]; ok {
		return navigator.Listing{}, err
	}
	l, ok := f.listings[dir]
	if !ok {
		return navigator.Listing{}, &navigator.ScanError{Path: dir, Err: errNotFound}
	}
	return l, nil
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys through the model and returns the last command.
func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}
