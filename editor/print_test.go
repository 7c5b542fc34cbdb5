package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPrint_TerminatedChunk(t *testing.T) {
	s, out := newTestState(t, 80)
	typeString(t, s, "typed")
	out.Reset()

	if err := s.Print("log line\n"); err != nil {
		t.Fatalf("print: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "log line\n") {
		t.Fatalf("output %q missing printed text", got)
	}
	// The edited line is repainted after the chunk.
	if !strings.Contains(got, "> typed") {
		t.Fatalf("output %q missing repainted line", got)
	}
	if !s.lastOutComplete || s.lastOutWidth != 0 {
		t.Fatalf("bookkeeping=(%v,%d), want (true,0)", s.lastOutComplete, s.lastOutWidth)
	}
}

func TestPrint_UnterminatedChunksStitchOneRow(t *testing.T) {
	s, out := newTestState(t, 80)

	if err := s.Print("partial"); err != nil {
		t.Fatalf("print: %v", err)
	}
	if s.lastOutComplete {
		t.Fatalf("chunk without terminator marked complete")
	}
	if got := s.lastOutWidth; got != 7 {
		t.Fatalf("open row width=%d, want 7", got)
	}

	out.Reset()
	if err := s.Print(" end\n"); err != nil {
		t.Fatalf("print: %v", err)
	}

	// The second chunk steps up onto the open row and continues at its
	// recorded width, so the screen shows a single "partial end" row.
	got := out.String()
	resume := ansi.CursorUp(1) + ansi.CursorHorizontalAbsolute(1) + ansi.CursorForward(7)
	if !strings.Contains(got, resume) {
		t.Fatalf("output %q missing resume sequence %q", got, resume)
	}
	if !strings.Contains(got, " end\n") {
		t.Fatalf("output %q missing chunk text", got)
	}
	if !s.lastOutComplete || s.lastOutWidth != 0 {
		t.Fatalf("bookkeeping=(%v,%d), want (true,0)", s.lastOutComplete, s.lastOutWidth)
	}
}

func TestPrint_EmbeddedNewlinesReturnToColumnOne(t *testing.T) {
	s, out := newTestState(t, 80)
	out.Reset()

	if err := s.Print("one\ntwo\n"); err != nil {
		t.Fatalf("print: %v", err)
	}
	got := out.String()
	want := "one\n" + ansi.CursorHorizontalAbsolute(1) + "two\n" + ansi.CursorHorizontalAbsolute(1)
	if !strings.Contains(got, want) {
		t.Fatalf("output %q missing per-line carriage returns %q", got, want)
	}
}

func TestPrint_OpenRowWrapsModuloWidth(t *testing.T) {
	s, _ := newTestState(t, 10)

	if err := s.Print("asdfasdf"); err != nil { // 8 cells
		t.Fatalf("print: %v", err)
	}
	if err := s.Print("qwer"); err != nil { // 12 cells total, wraps once
		t.Fatalf("print: %v", err)
	}
	if got := s.lastOutWidth; got != 2 {
		t.Fatalf("open row width=%d, want 2 (12 mod 10)", got)
	}
	if s.lastOutComplete {
		t.Fatalf("open row marked complete")
	}
}

func TestPrint_MixedTailAfterNewline(t *testing.T) {
	s, _ := newTestState(t, 80)

	if err := s.Print("done\nnow"); err != nil {
		t.Fatalf("print: %v", err)
	}
	if s.lastOutComplete {
		t.Fatalf("unterminated tail marked complete")
	}
	if got := s.lastOutWidth; got != 3 {
		t.Fatalf("open row width=%d, want 3 (tail after newline)", got)
	}
}

func TestPrint_EmptyChunkIsNoOp(t *testing.T) {
	s, out := newTestState(t, 80)
	out.Reset()

	if err := s.Print(""); err != nil {
		t.Fatalf("print: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("empty print produced output %q", out.String())
	}
}

func TestPrint_WriteFailurePropagates(t *testing.T) {
	errSink := errors.New("sink failed")
	s := New(Config{Prompt: "> "}, failWriter{err: errSink})
	s.SetSize(80, 24)

	if err := s.PrintBytes([]byte("hello\n")); err != errSink {
		t.Fatalf("err=%v, want the sink's error unmodified", err)
	}
}
