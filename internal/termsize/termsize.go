// Package termsize reports the column count of the controlling terminal.
package termsize

// Source returns the terminal width in columns and whether it is known.
type Source func() (int, bool)
