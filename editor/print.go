package editor

import (
	"bytes"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/readline/internal/grapheme"
)

// Print interleaves externally produced text with the rendered line: the
// line is erased, the text written, and the prompt and buffer repainted
// below it.
func (s *LineState) Print(text string) error {
	return s.PrintBytes([]byte(text))
}

// PrintBytes is Print for raw bytes.
//
// Chunks that do not end in a line terminator leave the visual row open:
// the next call resumes on that row at the recorded width, so a producer
// may assemble one output line across several writes while the user keeps
// typing.
func (s *LineState) PrintBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := s.clear(); err != nil {
		return err
	}

	if !s.lastOutComplete {
		if err := s.puts(ansi.CursorUp(1), ansi.CursorHorizontalAbsolute(1)); err != nil {
			return err
		}
		if s.lastOutWidth > 0 {
			if err := s.puts(ansi.CursorForward(s.lastOutWidth)); err != nil {
				return err
			}
		}
	}

	// Write newline-terminated chunks one at a time, returning to column 1
	// after each: raw mode leaves '\n' as a bare line feed, and not every
	// terminal implies a carriage return for it.
	rest := data
	for len(rest) > 0 {
		chunk := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			chunk, rest = rest[:i+1], rest[i+1:]
		} else {
			rest = nil
		}
		if _, err := s.out.Write(chunk); err != nil {
			return err
		}
		if err := s.puts(ansi.CursorHorizontalAbsolute(1)); err != nil {
			return err
		}
	}

	s.lastOutComplete = bytes.HasSuffix(data, []byte("\n"))
	if s.lastOutComplete {
		s.lastOutWidth = 0
	} else {
		tail := data
		if i := bytes.LastIndexByte(data, '\n'); i >= 0 {
			tail = data[i+1:]
			s.lastOutWidth = 0
		}
		s.lastOutWidth += grapheme.Width(string(tail))
		// The open row may have overflowed; keep only the width on its
		// final row and account for the row the terminal already wrapped.
		if s.width > 0 && s.lastOutWidth >= s.width {
			s.lastOutWidth %= s.width
			if err := s.puts("\n"); err != nil {
				return err
			}
		}
		// Open a fresh row for the prompt; the recorded width lets the
		// next chunk step back up and continue the open row.
		if err := s.puts("\n"); err != nil {
			return err
		}
	}

	if err := s.puts(ansi.CursorHorizontalAbsolute(1)); err != nil {
		return err
	}
	return s.render()
}
