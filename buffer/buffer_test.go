package buffer

import "testing"

func TestLine_SetText_ClampsCursor(t *testing.T) {
	l := New()
	l.InsertText("hello world")
	if got := l.Cursor(); got != 11 {
		t.Fatalf("cursor=%d, want 11", got)
	}

	l.SetText("hi")
	if got := l.Cursor(); got != 2 {
		t.Fatalf("cursor=%d, want 2", got)
	}
	if got := l.Text(); got != "hi" {
		t.Fatalf("text=%q, want %q", got, "hi")
	}
}

func TestLine_CursorByteOffset_MultiByte(t *testing.T) {
	l := New()
	l.InsertText("aé") // e + combining acute: 1 + 3 bytes

	l.Apply(Move{Unit: MoveLine, Dir: DirHome})
	if got := l.CursorByteOffset(); got != 0 {
		t.Fatalf("offset=%d, want 0", got)
	}

	l.Apply(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := l.CursorByteOffset(); got != 1 {
		t.Fatalf("offset=%d, want 1", got)
	}

	l.Apply(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := l.CursorByteOffset(); got != len("aé") {
		t.Fatalf("offset=%d, want %d", got, len("aé"))
	}
}

func TestLine_Width_WideCluster(t *testing.T) {
	l := New()
	l.InsertText("a漢")
	if got := l.Width(); got != 3 {
		t.Fatalf("width=%d, want 3", got)
	}
	if got := l.WidthToCursor(); got != 3 {
		t.Fatalf("width to cursor=%d, want 3", got)
	}
	if got := l.Count(); got != 2 {
		t.Fatalf("count=%d, want 2", got)
	}
}

// FuzzLine_CursorBounds drives random edit sequences and checks the cursor
// never leaves [0, Count()].
func FuzzLine_CursorBounds(f *testing.F) {
	f.Add("abc", []byte{0, 1, 2, 3, 4})
	f.Add("a漢é", []byte{1, 1, 0, 5, 2, 2})
	f.Fuzz(func(t *testing.T, text string, ops []byte) {
		l := New()
		l.InsertText(text)
		for _, op := range ops {
			switch op % 6 {
			case 0:
				l.InsertRune('x')
			case 1:
				l.DeleteBackward()
			case 2:
				l.Apply(Move{Unit: MoveGrapheme, Dir: DirLeft})
			case 3:
				l.Apply(Move{Unit: MoveGrapheme, Dir: DirRight})
			case 4:
				l.Apply(Move{Unit: MoveWord, Dir: DirLeft})
			case 5:
				l.TruncateHead()
			}
			if c := l.Cursor(); c < 0 || c > l.Count() {
				t.Fatalf("cursor=%d out of [0,%d] after op %d", c, l.Count(), op%6)
			}
		}
	})
}
