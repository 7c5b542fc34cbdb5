// Package buffer implements the pure, grapheme-accurate model of a single
// input line.
//
// The cursor is a 0-based grapheme cluster index in [0, Count()]. All edit
// operations keep it inside that range. The package knows nothing about
// terminals, prompts, or rendering.
package buffer
