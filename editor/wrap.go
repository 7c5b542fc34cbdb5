package editor

import "github.com/charmbracelet/x/ansi"

// wrapRows returns how many rows below the line's first row a cursor at
// display column col sits, given the current terminal width. The column just
// past a full row still belongs to that row, hence the col-1: writing into
// the last cell leaves the cursor on the boundary, not on the next row.
func (s *LineState) wrapRows(col int) int {
	if col > 0 {
		col--
	}
	w := s.width
	if w < 1 {
		w = 1
	}
	return col / w
}

// moveToBeginning repositions the terminal cursor from display column `from`
// to column 1 of the line's first row.
func (s *LineState) moveToBeginning(from int) error {
	if err := s.puts(ansi.CursorHorizontalAbsolute(1)); err != nil {
		return err
	}
	if rows := s.wrapRows(from); rows > 0 {
		return s.puts(ansi.CursorUp(rows))
	}
	return nil
}

// moveFromBeginning repositions the terminal cursor from column 1 of the
// line's first row to display column `to`.
//
// Every redraw is expressed as moveToBeginning followed by
// moveFromBeginning; composing only these two primitives keeps cursor math
// correct no matter how many rows the line currently wraps across.
func (s *LineState) moveFromBeginning(to int) error {
	if rows := s.wrapRows(to); rows > 0 {
		if err := s.puts(ansi.CursorDown(rows)); err != nil {
			return err
		}
	}
	w := s.width
	if w < 1 {
		w = 1
	}
	off := to % w
	if off == 0 && to > 0 {
		// Boundary column: the cursor rests on the last cell of this row,
		// not on column 1 of the next.
		off = w
	}
	if off > 0 {
		return s.puts(ansi.CursorForward(off))
	}
	return nil
}
