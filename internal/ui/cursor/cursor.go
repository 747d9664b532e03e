// Package cursor provides an optional selection index for lists.
package cursor

// Cursor is the highlighted index of a list, or no index at all.
// The list length is passed to methods rather than stored, since the
// list is rescanned independently of the cursor.
//
// Invariant: once Reset, Move or Jump has been called with a
// non-zero length, the cursor holds an index in [0, listLen).
type Cursor struct {
	pos   int
	valid bool
}

// New returns a cursor at the first item, or unset if the list is empty.
func New(listLen int) Cursor {
	var c Cursor
	c.Reset(listLen)
	return c
}

// Index returns the selected index and whether one is set.
func (c Cursor) Index() (int, bool) {
	return c.pos, c.valid
}

// IsSet reports whether the cursor selects an item.
func (c Cursor) IsSet() bool {
	return c.valid
}

// Reset moves the cursor to the first item, or unsets it for an empty list.
func (c *Cursor) Reset(listLen int) {
	c.pos = 0
	c.valid = listLen > 0
}

// Move moves the cursor by delta, clamping at both ends (no wraparound).
// It returns true if the position changed. An empty list unsets the cursor.
func (c *Cursor) Move(delta, listLen int) bool {
	if listLen <= 0 {
		c.Reset(listLen)
		return false
	}
	old := c.pos
	wasValid := c.valid
	c.pos = clamp(c.pos+delta, listLen-1)
	c.valid = true
	return !wasValid || c.pos != old
}

// Jump sets the cursor to pos, clamped into the list bounds.
func (c *Cursor) Jump(pos, listLen int) {
	if listLen <= 0 {
		c.Reset(listLen)
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.valid = true
}

// Window returns the [start, end) range of a list of listLen items to
// show in height rows so that pos stays visible with margin rows of
// context above and below it when possible.
func Window(pos, listLen, height, margin int) (start, end int) {
	if listLen <= 0 || height <= 0 {
		return 0, 0
	}
	margin = min(margin, (height-1)/2)

	if pos >= height-margin {
		start = pos - height + margin + 1
	}
	start = clamp(start, max(listLen-height, 0))
	end = min(start+height, listLen)
	return start, end
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
