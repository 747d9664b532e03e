package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding ties an action to its keys and help text.
type Binding struct {
	Action  Action
	Key     key.Binding
	Context string // "global", "directories", "files"
}

// All contains every key binding of the application.
var All = []Binding{
	// Global
	{ActionQuit, key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")), "global"},
	{ActionToggleLoop, key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "loop")), "global"},
	{ActionPlayPause, key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")), "global"},
	{ActionSwitchPane, key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")), "global"},

	// Directories pane
	{ActionMoveUp, key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "move")), "directories"},
	{ActionMoveDown, key.NewBinding(key.WithKeys("down")), "directories"},
	{ActionMoveLeft, key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "parent")), "directories"},
	{ActionMoveRight, key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "open")), "directories"},

	// Files pane
	{ActionMoveUp, key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "play prev/next")), "files"},
	{ActionMoveDown, key.NewBinding(key.WithKeys("down")), "files"},
	{ActionMoveRight, key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "replay")), "files"},
	{ActionSelect, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "replay")), "files"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range All {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}

// ShortHelp returns the bindings to show in the help line for a pane
// context, global bindings last. Bindings without help text are skipped.
func ShortHelp(context string) []key.Binding {
	var result []key.Binding
	for _, ctx := range []string{context, "global"} {
		for _, b := range ByContext(ctx) {
			if b.Key.Help().Key == "" {
				continue
			}
			result = append(result, b.Key)
		}
	}
	return result
}
