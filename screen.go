package shline

import "strconv"

// screenState tracks the window width, the cursor's 1-based (row, column)
// relative to where the prompt started, and the count of rendered cells.
// Cursor bookkeeping is generalized from a fixed-size region to a width
// that can change under the editor's feet (reconcileResize).
type screenState struct {
	term     *terminalIO
	width    int
	row, col int // 1-based
	rendered int // N
}

func newScreenState(t *terminalIO, width int) *screenState {
	if width < 1 {
		width = 80
	}
	return &screenState{term: t, width: width, row: 1, col: 1}
}

// flat returns F = (R-1)*W + (K-1), the width-independent cursor measure.
func (s *screenState) flat() int {
	return (s.row-1)*s.width + (s.col - 1)
}

// moveToFlat repositions (row, col) to the given flat position, emitting
// the minimal cursor-up/down plus set-column sequence.
func (s *screenState) moveToFlat(f int) error {
	if f < 0 {
		f = 0
	}
	newRow := f/s.width + 1
	newCol := f%s.width + 1
	if newRow != s.row {
		if newRow < s.row {
			if err := s.term.writeString("\x1b[" + strconv.Itoa(s.row-newRow) + "A"); err != nil {
				return err
			}
		} else {
			if err := s.term.writeString("\x1b[" + strconv.Itoa(newRow-s.row) + "B"); err != nil {
				return err
			}
		}
	}
	if err := s.term.writeString("\x1b[" + strconv.Itoa(newCol) + "G"); err != nil {
		return err
	}
	s.row, s.col = newRow, newCol
	return nil
}

// moveLeftWrap and moveRightWrap compute F' = F±n, derive the new (R,K),
// and emit the row delta and a set-column (never a wrap-forcing space —
// that only happens while tracking a write, see trackWrite).
func (s *screenState) moveLeftWrap(n int) error {
	return s.moveToFlat(s.flat() - n)
}

func (s *screenState) moveRightWrap(n int) error {
	return s.moveToFlat(s.flat() + n)
}

// trackWrite writes data directly (bypassing cursor-motion sequences) and
// advances (row, col, rendered) to match, forcing a physical wrap with a
// single space when the write lands exactly on a row boundary so the
// terminal doesn't leave the cursor parked in the last column.
func (s *screenState) trackWrite(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := s.term.write(data); err != nil {
		return err
	}
	s.rendered += len(data)
	f := s.flat() + len(data)
	newRow := f/s.width + 1
	newCol := f%s.width + 1
	if newCol == 1 && newRow != s.row {
		if err := s.term.write([]byte{' '}); err != nil {
			return err
		}
		if err := s.term.writeString("\x1b[" + strconv.Itoa(newCol) + "G"); err != nil {
			return err
		}
	}
	s.row, s.col = newRow, newCol
	return nil
}

// footprintRows is ⌈(N+1)/W⌉, with N==0 treated as one row.
func footprintRows(n, width int) int {
	if n == 0 {
		return 1
	}
	return (n + width) / width
}

// clearFootprint moves to the end of the rendered region and blanks every
// row the footprint occupies, leaving the cursor at the origin (row=col=1)
// with rendered reset to zero.
func (s *screenState) clearFootprint() error {
	if err := s.moveToFlat(s.rendered); err != nil {
		return err
	}
	rows := footprintRows(s.rendered, s.width)
	for i := 0; i < rows; i++ {
		if err := s.term.writeString("\x1b[2K\r"); err != nil {
			return err
		}
		if i < rows-1 {
			if err := s.term.writeString("\x1b[1A"); err != nil {
				return err
			}
		}
	}
	s.row, s.col, s.rendered = 1, 1, 0
	return nil
}

// redraw clears the current footprint and re-renders prompt+buffer,
// placing the cursor at the logical position cursor.
func (s *screenState) redraw(prompt, buf []byte, cursor int) error {
	if err := s.clearFootprint(); err != nil {
		return err
	}
	if err := s.trackWrite(prompt); err != nil {
		return err
	}
	if err := s.trackWrite(buf); err != nil {
		return err
	}
	return s.moveLeftWrap(len(buf) - cursor)
}

// reconcileResize recomputes (row, col) for a new width from the
// pre-resize flat position, leaving rendered (and hence the next redraw's
// footprint accounting) unchanged.
func (s *screenState) reconcileResize(newWidth int) {
	if newWidth < 1 {
		newWidth = 1
	}
	f := s.flat()
	s.width = newWidth
	s.row = f/newWidth + 1
	s.col = f%newWidth + 1
}

// resetOrigin re-homes the cursor model to the start of a fresh line
// (also used by Ctrl-L's screen reset).
func (s *screenState) resetOrigin() {
	s.row, s.col, s.rendered = 1, 1, 0
}
