// Package readline provides an inline line editor for interactive terminal
// programs: grapheme-aware editing, history navigation, and output from
// background goroutines interleaved cleanly with the prompt.
//
// The engine itself lives in the editor package and speaks Bubble Tea
// messages; this package is the session driver that owns the real terminal:
// raw mode, stdin decoding, resize signals, and the one-event-at-a-time
// loop.
package readline

import (
	"bufio"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/readline/editor"
)

// ErrInterrupted mirrors editor.ErrInterrupted so callers of the session
// driver rarely need to import the engine package.
var ErrInterrupted = editor.ErrInterrupted

// Readline owns one interactive session.
//
// Key presses, resize signals, and queued prints all funnel into a single
// event stream consumed by Readline(), so the line state is only ever
// mutated by one event at a time.
type Readline struct {
	line *editor.LineState
	out  *bufio.Writer

	fd    int
	saved *term.State

	events chan tea.Msg
	prints chan []byte
	done   chan struct{}

	stopResize func()
	closeOnce  sync.Once
	closeErr   error
}

// New switches the terminal to raw mode, draws the prompt, and starts the
// input and resize watchers. Callers must Close to restore the terminal.
func New(cfg editor.Config) (*Readline, error) {
	fd := int(os.Stdin.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		_ = term.Restore(fd, saved)
		return nil, err
	}

	out := bufio.NewWriter(os.Stdout)
	line := editor.New(cfg, out)
	line.SetSize(width, height)
	if err := line.Render(); err == nil {
		err = out.Flush()
	}
	if err != nil {
		_ = term.Restore(fd, saved)
		return nil, err
	}

	r := &Readline{
		line:   line,
		out:    out,
		fd:     fd,
		saved:  saved,
		events: make(chan tea.Msg, 16),
		prints: make(chan []byte, 32),
		done:   make(chan struct{}),
	}

	sig, stop := listenResize()
	r.stopResize = stop
	go r.readInput(os.Stdin)
	go r.watchResize(sig)
	return r, nil
}

// Readline blocks until the user submits a line, interrupts (ctrl+c,
// editor.ErrInterrupted), or ends input (ctrl+d, io.EOF). Interleaved
// prints queued through SharedWriter are applied between events.
func (r *Readline) Readline() (string, error) {
	for {
		select {
		case data := <-r.prints:
			if err := r.line.PrintBytes(data); err != nil {
				return "", err
			}
			if err := r.out.Flush(); err != nil {
				return "", err
			}

		case msg := <-r.events:
			line, submitted, err := r.line.HandleEvent(msg)
			if ferr := r.out.Flush(); err == nil {
				err = ferr
			}
			if err != nil {
				return "", err
			}
			if submitted {
				return line, nil
			}

		case <-r.done:
			return "", io.EOF
		}
	}
}

// SharedWriter returns a writer whose output is interleaved with the edited
// line. Safe for use from any goroutine.
func (r *Readline) SharedWriter() *SharedWriter {
	return &SharedWriter{ch: r.prints}
}

// Print writes text through the interleaver immediately. It must not be
// called while Readline is running in another goroutine; concurrent
// producers use SharedWriter instead.
func (r *Readline) Print(text string) error {
	if err := r.line.Print(text); err != nil {
		return err
	}
	return r.out.Flush()
}

// AddHistory queues an entry for history navigation. Safe from any
// goroutine; entries become visible before the next dispatched event.
func (r *Readline) AddHistory(entry string) {
	r.line.History().Queue(entry)
}

// Close stops the watchers and restores the terminal mode.
func (r *Readline) Close() error {
	r.closeOnce.Do(func() {
		close(r.done)
		r.stopResize()
		r.closeErr = term.Restore(r.fd, r.saved)
	})
	return r.closeErr
}

func (r *Readline) readInput(in io.Reader) {
	var buf []byte
	chunk := make([]byte, 256)
	for {
		n, err := in.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			msgs, consumed := parseEvents(buf)
			buf = buf[:copy(buf, buf[consumed:])]
			for _, msg := range msgs {
				select {
				case r.events <- msg:
				case <-r.done:
					return
				}
			}
		}
		if err != nil {
			// A closed input behaves like end-of-transmission.
			select {
			case r.events <- tea.KeyMsg{Type: tea.KeyCtrlD}:
			case <-r.done:
			}
			return
		}
	}
}

func (r *Readline) watchResize(sig <-chan os.Signal) {
	for {
		select {
		case <-sig:
			width, height, err := term.GetSize(r.fd)
			if err != nil {
				continue
			}
			select {
			case r.events <- tea.WindowSizeMsg{Width: width, Height: height}:
			case <-r.done:
				return
			}
		case <-r.done:
			return
		}
	}
}
