package shline

import (
	"bytes"
	"testing"
)

func newTestScreen(width int) (*screenState, *bytes.Buffer) {
	var buf bytes.Buffer
	t := &terminalIO{in: &bytes.Buffer{}, out: &buf}
	return newScreenState(t, width), &buf
}

// TestScreenFlat checks F = (R-1)*W + (K-1) holds across a width.
func TestScreenFlat(t *testing.T) {
	s, _ := newTestScreen(10)
	s.row, s.col = 3, 5
	if got, want := s.flat(), (3-1)*10+(5-1); got != want {
		t.Fatalf("flat() = %d, want %d", got, want)
	}
}

// TestScreenMoveWrap checks that moving right past the row boundary wraps
// into the next row and moving left symmetrically wraps back, with no net
// drift in the flat position.
func TestScreenMoveWrap(t *testing.T) {
	s, _ := newTestScreen(5)
	s.row, s.col = 1, 1
	if err := s.moveRightWrap(7); err != nil {
		t.Fatalf("moveRightWrap: %v", err)
	}
	if got := s.flat(); got != 7 {
		t.Fatalf("flat() after +7 = %d, want 7", got)
	}
	if s.row != 2 || s.col != 3 {
		t.Fatalf("row,col = %d,%d, want 2,3", s.row, s.col)
	}
	if err := s.moveLeftWrap(7); err != nil {
		t.Fatalf("moveLeftWrap: %v", err)
	}
	if s.row != 1 || s.col != 1 {
		t.Fatalf("row,col after unwind = %d,%d, want 1,1", s.row, s.col)
	}
}

// TestScreenTrackWriteRowBoundary checks the forced single-space wrap when a
// write lands exactly on a row boundary.
func TestScreenTrackWriteRowBoundary(t *testing.T) {
	s, out := newTestScreen(4)
	if err := s.trackWrite([]byte("abcd")); err != nil {
		t.Fatalf("trackWrite: %v", err)
	}
	if s.row != 2 || s.col != 1 {
		t.Fatalf("row,col = %d,%d, want 2,1", s.row, s.col)
	}
	if !bytes.Contains(out.Bytes(), []byte{' '}) {
		t.Fatalf("expected a forced wrap space in output, got %q", out.Bytes())
	}
}

// TestScreenFootprintRows checks the ceil((N+1)/W) rule, including the
// N==0 special case.
func TestScreenFootprintRows(t *testing.T) {
	tests := []struct {
		N, W, Want int
	}{
		{0, 10, 1},
		{9, 10, 1},
		{10, 10, 2},
		{19, 10, 2},
		{20, 10, 3},
	}
	for _, test := range tests {
		if got := footprintRows(test.N, test.W); got != test.Want {
			t.Errorf("footprintRows(%d,%d) = %d, want %d", test.N, test.W, got, test.Want)
		}
	}
}

// TestScreenRedrawIdempotent checks that redrawing twice with the same
// prompt/buffer/cursor leaves the cursor model in the same state.
func TestScreenRedrawIdempotent(t *testing.T) {
	s, _ := newTestScreen(80)
	prompt := []byte("> ")
	buf := []byte("hello world")
	if err := s.redraw(prompt, buf, 5); err != nil {
		t.Fatalf("redraw 1: %v", err)
	}
	row1, col1, rendered1 := s.row, s.col, s.rendered
	if err := s.redraw(prompt, buf, 5); err != nil {
		t.Fatalf("redraw 2: %v", err)
	}
	if s.row != row1 || s.col != col1 || s.rendered != rendered1 {
		t.Fatalf("redraw not idempotent: (%d,%d,%d) != (%d,%d,%d)",
			s.row, s.col, s.rendered, row1, col1, rendered1)
	}
}

// TestScreenReconcileResize checks that the flat position is preserved
// across a width change, only (row, col) being recomputed.
func TestScreenReconcileResize(t *testing.T) {
	s, _ := newTestScreen(10)
	s.row, s.col = 2, 5 // flat = 14
	s.reconcileResize(7)
	if got := s.flat(); got != 14 {
		t.Fatalf("flat() after resize = %d, want 14", got)
	}
	if want := 14/7 + 1; s.row != want {
		t.Fatalf("row = %d, want %d", s.row, want)
	}
}
