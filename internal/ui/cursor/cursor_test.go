package cursor

import "testing"

func TestNew(t *testing.T) {
	c := New(3)
	if idx, ok := c.Index(); !ok || idx != 0 {
		t.Errorf("New(3).Index() = (%d, %v), want (0, true)", idx, ok)
	}

	empty := New(0)
	if empty.IsSet() {
		t.Error("New(0) should be unset")
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name      string
		initial   int
		delta     int
		len       int
		wantPos   int
		wantMoved bool
	}{
		{"move down within bounds", 0, 1, 10, 1, true},
		{"move up within bounds", 3, -1, 10, 2, true},
		{"move up clamps to 0", 0, -1, 10, 0, false},
		{"move down clamps to len-1", 9, 1, 10, 9, false},
		{"large delta clamps", 2, 50, 10, 9, true},
		{"single item", 0, 1, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.len)
			c.Jump(tt.initial, tt.len)

			moved := c.Move(tt.delta, tt.len)

			idx, ok := c.Index()
			if !ok {
				t.Fatal("cursor should be set")
			}
			if idx != tt.wantPos {
				t.Errorf("pos = %d, want %d", idx, tt.wantPos)
			}
			if moved != tt.wantMoved {
				t.Errorf("moved = %v, want %v", moved, tt.wantMoved)
			}
		})
	}
}

func TestMove_EmptyList(t *testing.T) {
	c := New(0)
	if c.Move(1, 0) {
		t.Error("Move on empty list should report no movement")
	}
	if c.IsSet() {
		t.Error("cursor should stay unset on empty list")
	}
}

func TestJump(t *testing.T) {
	tests := []struct {
		name    string
		pos     int
		len     int
		wantPos int
		wantSet bool
	}{
		{"in bounds", 2, 5, 2, true},
		{"past end clamps", 7, 5, 4, true},
		{"negative clamps", -3, 5, 0, true},
		{"empty list unsets", 2, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.len)
			c.Jump(tt.pos, tt.len)
			idx, ok := c.Index()
			if ok != tt.wantSet || idx != tt.wantPos {
				t.Errorf("Index() = (%d, %v), want (%d, %v)", idx, ok, tt.wantPos, tt.wantSet)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name      string
		pos       int
		len       int
		height    int
		margin    int
		wantStart int
		wantEnd   int
	}{
		{"fits entirely", 3, 4, 10, 2, 0, 4},
		{"top of long list", 0, 20, 5, 1, 0, 5},
		{"scrolls keeping margin below", 4, 20, 5, 1, 1, 6},
		{"bottom of long list", 19, 20, 5, 1, 15, 20},
		{"empty list", 0, 0, 5, 1, 0, 0},
		{"zero height", 2, 10, 0, 1, 0, 0},
		{"margin larger than half height", 3, 10, 4, 5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.pos, tt.len, tt.height, tt.margin)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Window() = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
			if tt.len > 0 && tt.height > 0 && (tt.pos < start || tt.pos >= end) {
				t.Errorf("pos %d not visible in [%d, %d)", tt.pos, start, end)
			}
		})
	}
}
