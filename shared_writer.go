package readline

import (
	"bytes"
	"sync"
)

// SharedWriter is an io.Writer handle for goroutines that want their output
// interleaved with the edited line.
//
// Writes are buffered until a line terminator arrives, so producers that
// emit output in fragments still hand the interleaver whole lines most of
// the time; Flush ships an unterminated fragment immediately, which the
// interleaver stitches onto one visual row with whatever follows.
type SharedWriter struct {
	mu  sync.Mutex
	buf []byte
	ch  chan<- []byte
}

// Write buffers p and ships every complete line to the session's event
// loop. It never fails; backpressure blocks instead.
func (w *SharedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	i := bytes.LastIndexByte(w.buf, '\n')
	if i < 0 {
		return len(p), nil
	}

	chunk := make([]byte, i+1)
	copy(chunk, w.buf)
	w.buf = w.buf[:copy(w.buf, w.buf[i+1:])]
	w.ch <- chunk
	return len(p), nil
}

// Flush ships buffered bytes that do not yet end in a line terminator.
func (w *SharedWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) == 0 {
		return nil
	}
	chunk := make([]byte, len(w.buf))
	copy(chunk, w.buf)
	w.buf = w.buf[:0]
	w.ch <- chunk
	return nil
}
