//go:build windows

package readline

import "os"

// Windows has no SIGWINCH; resizes are picked up on the next explicit
// WindowSizeMsg, so the watcher idles.
func listenResize() (<-chan os.Signal, func()) {
	return make(chan os.Signal), func() {}
}
