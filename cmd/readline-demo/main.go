package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/readline"
	"github.com/iw2rmb/readline/editor"
)

func main() {
	style := editor.DefaultStyle()
	style.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)

	rl, err := readline.New(editor.Config{
		Prompt: "demo> ",
		Style:  style,
		Emacs:  true,
	})
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer rl.Close()

	// Background chatter, interleaved above the prompt.
	log := rl.SharedWriter()
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(3 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case t := <-ticker.C:
				fmt.Fprintf(log, "[tick] %s\n", t.Format("15:04:05"))
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupted):
			continue
		case errors.Is(err, io.EOF):
			return
		case err != nil:
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}

		rl.AddHistory(line)
		if err := rl.Print("you typed: " + line + "\n"); err != nil {
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
	}
}
