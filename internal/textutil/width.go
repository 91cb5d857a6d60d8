package textutil

import "github.com/mattn/go-runewidth"

// DisplayWidth reports the number of terminal cells text occupies, accounting
// for wide runes.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// RoundUp rounds width up to the next multiple of step. Widths below one
// count as one so the result is always a positive multiple.
func RoundUp(width, step int) int {
	if step <= 0 {
		return width
	}
	if width < 1 {
		width = 1
	}
	return ((width-1)/step + 1) * step
}
