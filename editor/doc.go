// Package editor implements the inline line-editing engine: it owns the
// in-progress input line, maps grapheme positions to screen columns across
// terminal wrap-around, redraws the line after every mutation, and
// interleaves externally produced output with the rendered line.
//
// The engine consumes Bubble Tea messages (tea.KeyMsg, tea.WindowSizeMsg)
// one at a time and writes ANSI cursor and erase commands to the terminal
// sink it was constructed with. It never runs a tea.Program itself; hosts
// feed it decoded events, typically through the readline session driver in
// the repository root.
package editor
