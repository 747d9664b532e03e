package navigator

// History remembers the directory-cursor index last used in each visited
// directory. Entries are overwritten but never removed.
type History struct {
	positions map[string]int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{positions: make(map[string]int)}
}

// Record stores index as the cursor position for path.
func (h *History) Record(path string, index int) {
	h.positions[path] = index
}

// Recall returns the cursor position recorded for path, if any.
func (h *History) Recall(path string) (int, bool) {
	idx, ok := h.positions[path]
	return idx, ok
}

// Len returns the number of remembered directories.
func (h *History) Len() int {
	return len(h.positions)
}
