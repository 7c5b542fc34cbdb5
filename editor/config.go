package editor

// Config configures a LineState.
type Config struct {
	// Prompt is displayed before the input text. It may contain ANSI
	// styling; width is computed on the stripped form.
	Prompt string

	// Style decorates the prompt at construction time.
	Style Style

	// Emacs adds ctrl+a / ctrl+e as beginning/end-of-line bindings.
	// Resolved once in New; ignored when KeyMap is set.
	Emacs bool

	// KeyMap overrides the binding set entirely.
	KeyMap *KeyMap

	// HistoryLimit bounds the in-memory history. Default: 1000.
	HistoryLimit int
}
