package buffer

import (
	"github.com/iw2rmb/readline/internal/grapheme"
)

// Line is the pure input-line state: text, cursor, and the accumulator for
// grapheme clusters still being assembled from sequential key events.
type Line struct {
	text    string
	cursor  int // grapheme index in [0, Count()]
	pending string
	version uint64
}

func New() *Line {
	return &Line{}
}

func (l *Line) Text() string { return l.text }

// Cursor returns the cursor's grapheme cluster index.
func (l *Line) Cursor() int { return l.cursor }

// Count returns the number of grapheme clusters in the line.
func (l *Line) Count() int { return grapheme.Count(l.text) }

func (l *Line) Version() uint64 { return l.version }

// CursorByteOffset returns the byte offset of the cursor in Text().
func (l *Line) CursorByteOffset() int {
	return grapheme.ByteOffset(l.text, l.cursor)
}

// WidthToCursor returns the display width of the text left of the cursor.
func (l *Line) WidthToCursor() int {
	return grapheme.Width(l.text[:l.CursorByteOffset()])
}

// Width returns the display width of the whole line.
func (l *Line) Width() int {
	return grapheme.Width(l.text)
}

// SetText replaces the line wholesale (history recall), clamping the cursor
// and discarding any partial cluster.
func (l *Line) SetText(text string) {
	if text == l.text && l.pending == "" {
		return
	}
	l.text = text
	l.pending = ""
	l.clampCursor()
	l.version++
}

func (l *Line) clampCursor() {
	if l.cursor < 0 {
		l.cursor = 0
		return
	}
	if count := l.Count(); l.cursor > count {
		l.cursor = count
	}
}
