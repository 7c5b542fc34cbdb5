package editor

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/readline/buffer"
)

// HandleEvent applies one decoded event to the line.
//
// submitted is true when Enter completed the line; line then holds the
// submitted text and the buffer has been reset for the next line. Ctrl+c
// reports ErrInterrupted, ctrl+d reports io.EOF; both leave the LineState
// reusable. Any terminal write failure aborts the call and propagates
// unmodified. Events the editor does not understand are ignored.
func (s *LineState) HandleEvent(msg tea.Msg) (line string, submitted bool, err error) {
	// Pick up entries written by other goroutines before dispatching, so
	// history navigation always sees a fully updated list.
	s.history.Update()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Wrap geometry changed; only a full repaint is safe.
		s.SetSize(msg.Width, msg.Height)
		return "", false, s.ClearAndRender()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return "", false, nil
}

func (s *LineState) handleKey(msg tea.KeyMsg) (string, bool, error) {
	switch {
	case key.Matches(msg, s.km.Enter):
		if err := s.clear(); err != nil {
			return "", false, err
		}
		line := s.buf.Take()
		s.history.ResetNavigation()
		s.updateColumn()
		if err := s.render(); err != nil {
			return "", false, err
		}
		return line, true, nil

	case key.Matches(msg, s.km.Backspace):
		if s.buf.Cursor() == 0 {
			return "", false, nil
		}
		if err := s.clear(); err != nil {
			return "", false, err
		}
		s.buf.DeleteBackward()
		s.history.ResetNavigation()
		s.updateColumn()
		return "", false, s.render()

	case key.Matches(msg, s.km.Left):
		return "", false, s.repositionCursor(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, s.km.Right):
		return "", false, s.repositionCursor(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, s.km.WordLeft):
		return "", false, s.repositionCursor(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, s.km.WordRight):
		return "", false, s.repositionCursor(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, s.km.Home):
		return "", false, s.repositionCursor(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, s.km.End):
		return "", false, s.repositionCursor(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, s.km.HistoryPrev):
		entry, ok := s.history.SearchNext(s.buf.Text())
		if !ok {
			return "", false, nil
		}
		return "", false, s.replaceLine(entry)
	case key.Matches(msg, s.km.HistoryNext):
		entry, ok := s.history.SearchPrevious(s.buf.Text())
		if !ok {
			return "", false, nil
		}
		return "", false, s.replaceLine(entry)

	case key.Matches(msg, s.km.KillToStart):
		if s.buf.Cursor() == 0 {
			return "", false, nil
		}
		if err := s.clear(); err != nil {
			return "", false, err
		}
		s.buf.TruncateHead()
		s.history.ResetNavigation()
		s.updateColumn()
		return "", false, s.render()

	case key.Matches(msg, s.km.ClearScreen):
		if err := s.puts(ansi.EraseDisplay(2), ansi.CursorHomePosition); err != nil {
			return "", false, err
		}
		return "", false, s.ClearAndRender()

	case key.Matches(msg, s.km.EndOfFile):
		if err := s.puts("\r\n"); err != nil {
			return "", false, err
		}
		if err := s.clear(); err != nil {
			return "", false, err
		}
		return "", false, io.EOF

	case key.Matches(msg, s.km.Interrupt):
		// Echo the buffer as committed output, then start over on a fresh
		// prompt.
		if err := s.clear(); err != nil {
			return "", false, err
		}
		line := s.buf.Take()
		s.history.ResetNavigation()
		s.updateColumn()
		if err := s.puts(s.prompt, line, "\r\n"); err != nil {
			return "", false, err
		}
		s.lastOutWidth, s.lastOutComplete = 0, true
		if err := s.render(); err != nil {
			return "", false, err
		}
		return "", false, ErrInterrupted
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return "", false, nil
		}
		return "", false, s.insert(msg.Runes, msg.Paste)
	case tea.KeySpace:
		return "", false, s.insert([]rune{' '}, false)
	}
	return "", false, nil
}

func (s *LineState) insert(runes []rune, paste bool) error {
	if err := s.clear(); err != nil {
		return err
	}
	if paste || len(runes) > 1 {
		s.buf.InsertText(string(runes))
	} else {
		s.buf.InsertRune(runes[0])
	}
	s.history.ResetNavigation()
	s.updateColumn()
	return s.render()
}

// repositionCursor applies a cursor-only move: walk the terminal cursor back
// to the line start from the old column, move the logical cursor, then walk
// out to the new column. No repaint.
func (s *LineState) repositionCursor(m buffer.Move) error {
	if err := s.resetCursor(); err != nil {
		return err
	}
	s.buf.Apply(m)
	s.updateColumn()
	return s.setCursor()
}

// replaceLine swaps the buffer for a recalled history entry, cursor at end.
func (s *LineState) replaceLine(entry string) error {
	if err := s.clear(); err != nil {
		return err
	}
	s.buf.SetText(entry)
	s.buf.Apply(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	s.updateColumn()
	return s.render()
}
