//go:build !unix

package termsize

// Width is unknown on platforms without a controlling tty device.
func Width() (int, bool) {
	return 0, false
}
