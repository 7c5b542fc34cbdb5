package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Prompt lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prompt: lipgloss.NewStyle(),
	}
}
