package editor

import (
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/readline/buffer"
)

// LineState drives one interactive input line: the edit buffer, the cached
// screen column for the cursor, the terminal geometry, and the bookkeeping
// that lets asynchronous output interleave with the rendered line.
//
// One LineState lives for a whole session. Submitting a line resets the
// buffer but keeps prompt, geometry, and history.
//
// Methods are not safe for concurrent use; callers must apply events and
// prints one at a time (the readline session driver serializes them through
// a single channel).
type LineState struct {
	cfg Config
	km  KeyMap

	buf     *buffer.Line
	history *History

	prompt      string // styled prompt as written to the terminal
	promptWidth int

	// col is the cursor's display column, prompt included. Invariant:
	// col == promptWidth + width(text up to the cursor byte offset) after
	// every mutation.
	col int

	width, height int

	// Interleaved-output bookkeeping: width of the last externally printed
	// chunk when it did not end in a line terminator, so the next chunk can
	// resume on the same visual row.
	lastOutWidth    int
	lastOutComplete bool

	out io.Writer
}

// New builds a LineState writing terminal commands to out. Call SetSize
// before the first render.
func New(cfg Config, out io.Writer) *LineState {
	km := DefaultKeyMap()
	if cfg.Emacs {
		km = EmacsKeyMap()
	}
	if cfg.KeyMap != nil {
		km = *cfg.KeyMap
	}

	prompt := cfg.Style.Prompt.Render(cfg.Prompt)
	s := &LineState{
		cfg:             cfg,
		km:              km,
		buf:             buffer.New(),
		history:         NewHistory(cfg.HistoryLimit),
		prompt:          prompt,
		promptWidth:     ansi.StringWidth(prompt),
		lastOutComplete: true,
		out:             out,
	}
	s.col = s.promptWidth
	return s
}

// Line exposes the underlying buffer.
func (s *LineState) Line() *buffer.Line { return s.buf }

// History exposes the history collaborator.
func (s *LineState) History() *History { return s.history }

// Size returns the current terminal size in (columns, rows).
func (s *LineState) Size() (int, int) { return s.width, s.height }

// SetSize records the terminal geometry used by wrap computations. It does
// not repaint; resize events dispatched through HandleEvent do.
func (s *LineState) SetSize(width, height int) {
	s.width, s.height = width, height
}

// Column returns the cursor's display column, prompt included.
func (s *LineState) Column() int { return s.col }

func (s *LineState) updateColumn() {
	s.col = s.promptWidth + s.buf.WidthToCursor()
}

func (s *LineState) puts(parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(s.out, p); err != nil {
			return err
		}
	}
	return nil
}
