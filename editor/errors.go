package editor

import "errors"

// ErrInterrupted is returned by LineState.HandleEvent when the user presses
// ctrl+c. The buffer has been echoed as committed output and cleared; the
// LineState remains usable for the next line.
//
// Ctrl+d reports io.EOF instead. Both are normal termination signals, not
// defects; terminal write failures propagate unmodified.
var ErrInterrupted = errors.New("readline: interrupted")
