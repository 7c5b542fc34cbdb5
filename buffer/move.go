package buffer

import (
	"github.com/iw2rmb/readline/internal/grapheme"
)

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start
	DirEnd  // line end
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Apply moves the cursor by the given unit and direction, clamped to
// [0, Count()]. It reports whether the cursor changed.
func (l *Line) Apply(m Move) bool {
	prev := l.cursor

	switch m.Unit {
	case MoveGrapheme:
		if m.Dir == DirLeft {
			l.cursor--
		} else {
			l.cursor++
		}
	case MoveWord:
		if m.Dir == DirLeft {
			l.cursor = l.prevWordStart()
		} else {
			l.cursor = l.nextWordBoundary()
		}
	case MoveLine:
		if m.Dir == DirHome {
			l.cursor = 0
		} else {
			l.cursor = l.Count()
		}
	}

	l.clampCursor()
	if l.cursor == prev {
		return false
	}
	l.version++
	return true
}

// prevWordStart scans left from the cursor: first over a run of spaces, then
// over the word, stopping at its first cluster (or 0 if none).
func (l *Line) prevWordStart() int {
	clusters := grapheme.Split(l.text)
	i := l.cursor - 1
	for i >= 0 && i < len(clusters) && grapheme.IsSpace(clusters[i]) {
		i--
	}
	for i >= 0 && i < len(clusters) && !grapheme.IsSpace(clusters[i]) {
		i--
	}
	return i + 1
}

// nextWordBoundary scans right from the cursor: first over a run of spaces,
// then over the word, stopping at the space after it (or Count() if none).
func (l *Line) nextWordBoundary() int {
	clusters := grapheme.Split(l.text)
	i := l.cursor
	for i < len(clusters) && grapheme.IsSpace(clusters[i]) {
		i++
	}
	for i < len(clusters) && !grapheme.IsSpace(clusters[i]) {
		i++
	}
	return i
}
