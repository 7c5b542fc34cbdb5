package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// ByteOffset returns the byte offset of the n-th grapheme cluster.
// For n at or past the cluster count it returns len(text).
func ByteOffset(text string, n int) int {
	if n <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == n {
			from, _ := g.Positions()
			return from
		}
		idx++
	}
	return len(text)
}

// Width returns the number of terminal cells text occupies.
//
// Width is computed per cluster so that multi-rune clusters (combining
// marks, emoji with ZWJ sequences) are not double counted.
func Width(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	w := 0
	for g.Next() {
		w += ClusterWidth(g.Str())
	}
	return w
}

// ClusterWidth returns the cell width of a single grapheme cluster.
// Zero-width clusters render as zero cells; everything else is 1 or 2.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w > 2 {
		// A multi-rune cluster renders as one glyph; cap at the width of
		// its widest rune.
		w = 2
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
