package readline

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// escSequences maps the escape sequences this engine cares about to key
// messages. Terminals disagree on home/end and modified arrows; the common
// variants are all listed.
var escSequences = map[string]tea.KeyMsg{
	"[A": {Type: tea.KeyUp},
	"[B": {Type: tea.KeyDown},
	"[C": {Type: tea.KeyRight},
	"[D": {Type: tea.KeyLeft},
	"[H": {Type: tea.KeyHome},
	"[F": {Type: tea.KeyEnd},
	"OA": {Type: tea.KeyUp},
	"OB": {Type: tea.KeyDown},
	"OC": {Type: tea.KeyRight},
	"OD": {Type: tea.KeyLeft},
	"OH": {Type: tea.KeyHome},
	"OF": {Type: tea.KeyEnd},

	"[1~": {Type: tea.KeyHome},
	"[7~": {Type: tea.KeyHome},
	"[4~": {Type: tea.KeyEnd},
	"[8~": {Type: tea.KeyEnd},
	"[3~": {Type: tea.KeyDelete},

	"[1;5C": {Type: tea.KeyCtrlRight},
	"[1;5D": {Type: tea.KeyCtrlLeft},
	"[1;5H": {Type: tea.KeyCtrlHome},
	"[1;5F": {Type: tea.KeyCtrlEnd},
	"[1;3C": {Type: tea.KeyRight, Alt: true},
	"[1;3D": {Type: tea.KeyLeft, Alt: true},
	"[1;2C": {Type: tea.KeyShiftRight},
	"[1;2D": {Type: tea.KeyShiftLeft},
}

const maxSequenceLen = 8

// parseEvents decodes as many key messages as data holds and returns the
// number of bytes consumed. A trailing partial escape sequence or UTF-8 rune
// is left unconsumed for the next read to complete.
func parseEvents(data []byte) ([]tea.KeyMsg, int) {
	var msgs []tea.KeyMsg
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == 0x1b:
			msg, n, ok := parseEscape(data[i:])
			if n == 0 {
				// Incomplete sequence: wait for more bytes.
				return msgs, i
			}
			if ok {
				msgs = append(msgs, msg)
			}
			i += n

		case b == '\r' || b == '\n':
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
			i++
		case b == 0x7f:
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyBackspace})
			i++
		case b == ' ':
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			i++
		case b < 0x20:
			// Control characters share their byte value with the KeyType
			// constants (ctrl+a == 1, ..., ctrl+z == 26).
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyType(b)})
			i++

		default:
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size <= 1 {
				if !utf8.FullRune(data[i:]) && len(data)-i < utf8.UTFMax {
					// Partial rune split across reads.
					return msgs, i
				}
				i++ // invalid byte, skip
				continue
			}
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
			i += size
		}
	}
	return msgs, i
}

// parseEscape decodes one escape sequence at the start of data (which begins
// with ESC). n is the number of bytes to consume; n == 0 means the sequence
// may still be completed by the next read. ok reports whether msg is valid;
// complete-but-unrecognized sequences are consumed and dropped.
func parseEscape(data []byte) (msg tea.KeyMsg, n int, ok bool) {
	if len(data) == 1 {
		return tea.KeyMsg{}, 0, false
	}

	// ESC ESC is the escape key; ESC + printable rune is alt+rune.
	next := data[1]
	if next == 0x1b {
		return tea.KeyMsg{Type: tea.KeyEscape}, 2, true
	}
	if next != '[' && next != 'O' {
		r, size := utf8.DecodeRune(data[1:])
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(data[1:]) && len(data)-1 < utf8.UTFMax {
				return tea.KeyMsg{}, 0, false
			}
			return tea.KeyMsg{}, 2, false
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}, 1 + size, true
	}

	// CSI / SS3: parameter bytes, then a final byte in 0x40..0x7e. Unknown
	// sequences are consumed whole, so oversized parameter runs never leak
	// into the line as literal runes.
	for j := 2; j < len(data); j++ {
		b := data[j]
		if b >= 0x40 && b <= 0x7e {
			seq := string(data[1 : j+1])
			if m, found := escSequences[seq]; found {
				return m, j + 1, true
			}
			return tea.KeyMsg{}, j + 1, false
		}
	}
	if len(data) > maxSequenceLen+2 {
		// No final byte within any plausible sequence length; give up on
		// the run instead of buffering it forever.
		return tea.KeyMsg{}, len(data), false
	}
	return tea.KeyMsg{}, 0, false
}
