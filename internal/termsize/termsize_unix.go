//go:build unix

package termsize

import (
	"os"

	"golang.org/x/term"
)

const ttyPath = "/dev/tty"

// Width queries the controlling terminal rather than stdin or stdout so the
// answer survives redirection. It reports false when there is no terminal.
func Width() (int, bool) {
	tty, err := os.Open(ttyPath)
	if err != nil {
		return 0, false
	}
	defer func() {
		_ = tty.Close()
	}()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
