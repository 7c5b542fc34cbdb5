//go:build !windows

package readline

import (
	"os"
	"os/signal"
	"syscall"
)

func listenResize() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	return ch, func() { signal.Stop(ch) }
}
