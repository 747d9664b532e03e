package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavedeck/internal/config"
	"github.com/llehouerou/wavedeck/internal/errmsg"
	"github.com/llehouerou/wavedeck/internal/keymap"
)

// Model is the bubbletea model around State.
type Model struct {
	state  *State
	keys   *keymap.Resolver
	help   help.Model
	poll   time.Duration
	stderr <-chan string

	width, height int
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPollInterval sets the redraw cadence.
func WithPollInterval(d time.Duration) ModelOption {
	return func(m *Model) { m.poll = d }
}

// WithStderr shows lines received on ch in the error line.
func WithStderr(ch <-chan string) ModelOption {
	return func(m *Model) { m.stderr = ch }
}

// NewModel wraps s for the bubbletea program.
func NewModel(s *State, opts ...ModelOption) Model {
	m := Model{
		state: s,
		keys:  keymap.Default(),
		help:  help.New(),
		poll:  config.DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the wrapped state.
func (m Model) State() *State { return m.state }

// Init starts the redraw tick and the stderr watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(m.poll), WatchStderr(m.stderr))
}

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.Resolve(msg.String())
		return m, m.state.Dispatch(action)

	case TickMsg:
		return m, TickCmd(m.poll)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case StderrMsg:
		m.state.ShowError(errmsg.Format(errmsg.OpAudioBackend, errors.New(msg.Line)))
		return m, WatchStderr(m.stderr)
	}
	return m, nil
}
