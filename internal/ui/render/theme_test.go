package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/kk-code-lab/dirpeek/internal/fs"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		typ       fs.FileType
		style     Style
		indicator string
	}{
		{fs.TypeDirectory, Style{Fg: color.FgBlue, Bold: true}, "/"},
		{fs.TypeSymlink, Style{Fg: color.FgMagenta}, "@"},
		{fs.TypeSocket, Style{Fg: color.FgMagenta}, "="},
		{fs.TypeFifo, Style{Fg: color.FgYellow}, "|"},
		{fs.TypeBlockDevice, Style{Fg: color.FgBlue, Bg: color.BgCyan}, ""},
		{fs.TypeCharDevice, Style{Fg: color.FgBlue, Bg: color.BgYellow}, ""},
		{fs.TypeRegular, Style{}, ""},
		{fs.TypeOther, Style{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			style, indicator := Classify(tt.typ)
			if style != tt.style {
				t.Fatalf("style = %+v, want %+v", style, tt.style)
			}
			if indicator != tt.indicator {
				t.Fatalf("indicator = %q, want %q", indicator, tt.indicator)
			}
		})
	}
}

func TestStyleApply(t *testing.T) {
	if got := (Style{}).Apply("plain"); got != "plain" {
		t.Fatalf("default style should not decorate, got %q", got)
	}

	dir, _ := Classify(fs.TypeDirectory)
	got := dir.Apply("src")
	if !strings.HasPrefix(got, "\x1b[34;1m") {
		t.Fatalf("directory style should start with blue bold, got %q", got)
	}
	if !strings.Contains(got, "src") || !strings.HasSuffix(got, "m") {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestStyleApplyIgnoresNoColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	style, _ := Classify(fs.TypeFifo)
	if got := style.Apply("pipe"); !strings.HasPrefix(got, "\x1b[33m") {
		t.Fatalf("colors must stay enabled when output is redirected, got %q", got)
	}
}
