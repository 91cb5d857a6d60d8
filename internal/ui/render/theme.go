package render

import (
	"github.com/fatih/color"

	"github.com/kk-code-lab/dirpeek/internal/fs"
)

// Style is a foreground color, an optional background and boldness.
// The zero value prints text unchanged.
type Style struct {
	Fg   color.Attribute
	Bg   color.Attribute
	Bold bool
}

// IsDefault reports whether the style applies no attributes.
func (s Style) IsDefault() bool {
	return s.Fg == 0 && s.Bg == 0 && !s.Bold
}

func (s Style) attributes() []color.Attribute {
	attrs := make([]color.Attribute, 0, 3)
	if s.Fg != 0 {
		attrs = append(attrs, s.Fg)
	}
	if s.Bg != 0 {
		attrs = append(attrs, s.Bg)
	}
	if s.Bold {
		attrs = append(attrs, color.Bold)
	}
	return attrs
}

// Apply wraps text in the style's escape sequences. Colors are emitted even
// when stdout is not a terminal.
func (s Style) Apply(text string) string {
	if s.IsDefault() {
		return text
	}
	c := color.New(s.attributes()...)
	c.EnableColor()
	return c.Sprint(text)
}

// Classify returns the display style and trailing indicator for an entry type.
func Classify(t fs.FileType) (Style, string) {
	switch t {
	case fs.TypeDirectory:
		return Style{Fg: color.FgBlue, Bold: true}, "/"
	case fs.TypeSymlink:
		return Style{Fg: color.FgMagenta}, "@"
	case fs.TypeSocket:
		return Style{Fg: color.FgMagenta}, "="
	case fs.TypeFifo:
		return Style{Fg: color.FgYellow}, "|"
	case fs.TypeBlockDevice:
		return Style{Fg: color.FgBlue, Bg: color.BgCyan}, ""
	case fs.TypeCharDevice:
		return Style{Fg: color.FgBlue, Bg: color.BgYellow}, ""
	default:
		return Style{}, ""
	}
}
