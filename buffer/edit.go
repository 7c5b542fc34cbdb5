package buffer

import (
	"github.com/iw2rmb/readline/internal/grapheme"
)

// InsertRune inserts a single rune at the cursor.
//
// Runes are staged through a pending-cluster accumulator so that multi-rune
// grapheme clusters (combining marks, emoji ZWJ sequences) delivered one
// rune per key event land as a single user-perceived character. The rune is
// written into the text immediately; the cursor only advances when the
// accumulator gains a cluster boundary, so a trailing combining mark extends
// the cluster under the cursor instead of producing a second one.
func (l *Line) InsertRune(r rune) {
	prev := grapheme.Count(l.pending)
	l.pending += string(r)
	next := grapheme.Count(l.pending)

	off := l.CursorByteOffset()
	l.text = l.text[:off] + string(r) + l.text[off:]

	if next != prev {
		l.cursor++
		if prev > 0 {
			// The head cluster completed; keep only the one in progress.
			l.pending = l.pending[grapheme.ByteOffset(l.pending, 1):]
		}
	}
	l.clampCursor()
	l.version++
}

// InsertText inserts already-complete text at the cursor (paste), advancing
// the cursor past it. Any partial cluster in flight is discarded.
func (l *Line) InsertText(s string) {
	if s == "" {
		return
	}
	off := l.CursorByteOffset()
	l.text = l.text[:off] + s + l.text[off:]
	l.cursor += grapheme.Count(s)
	l.pending = ""
	l.clampCursor()
	l.version++
}

// DeleteBackward removes the grapheme cluster before the cursor and reports
// whether anything was removed.
func (l *Line) DeleteBackward() bool {
	if l.cursor == 0 {
		return false
	}
	start := grapheme.ByteOffset(l.text, l.cursor-1)
	end := grapheme.ByteOffset(l.text, l.cursor)
	l.text = l.text[:start] + l.text[end:]
	l.cursor--
	l.pending = ""
	l.version++
	return true
}

// TruncateHead deletes everything left of the cursor and reports whether
// anything was removed.
func (l *Line) TruncateHead() bool {
	off := l.CursorByteOffset()
	if off == 0 {
		return false
	}
	l.text = l.text[off:]
	l.cursor = 0
	l.pending = ""
	l.version++
	return true
}

// Take returns the line's text and resets the buffer for the next line.
func (l *Line) Take() string {
	s := l.text
	l.text = ""
	l.cursor = 0
	l.pending = ""
	l.version++
	return s
}
