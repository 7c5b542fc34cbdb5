package editor

import "github.com/charmbracelet/x/ansi"

// resetCursor moves the terminal cursor from the logical cursor position to
// the beginning of the line.
func (s *LineState) resetCursor() error {
	return s.moveToBeginning(s.col)
}

// setCursor moves the terminal cursor from the beginning of the line to the
// logical cursor position.
func (s *LineState) setCursor() error {
	return s.moveFromBeginning(s.col)
}

// clear erases the rendered line: move to its beginning, then erase from
// the cursor to the end of the screen.
func (s *LineState) clear() error {
	if err := s.moveToBeginning(s.col); err != nil {
		return err
	}
	return s.puts(ansi.EraseDisplay(0))
}

// render writes prompt and text in full, then walks the cursor back from the
// end of the text to its logical column. The line is always repainted whole;
// diffing against wrap and width edge cases is not worth the bandwidth
// saved.
func (s *LineState) render() error {
	if err := s.puts(s.prompt, s.buf.Text()); err != nil {
		return err
	}
	end := s.promptWidth + s.buf.Width()
	if err := s.moveToBeginning(end); err != nil {
		return err
	}
	return s.moveFromBeginning(s.col)
}

// Render repaints the prompt and buffer at the current cursor position.
func (s *LineState) Render() error {
	return s.render()
}

// ClearAndRender erases the rendered line and repaints it. It is the
// universal redraw primitive used after any mutation and after external
// state changes.
func (s *LineState) ClearAndRender() error {
	if err := s.clear(); err != nil {
		return err
	}
	return s.render()
}
