package app

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/kk-code-lab/dirpeek/internal/fs"
	"github.com/kk-code-lab/dirpeek/internal/logger"
	"github.com/kk-code-lab/dirpeek/internal/termsize"
	renderui "github.com/kk-code-lab/dirpeek/internal/ui/render"
)

// DefaultMaxLines is the number of grid rows shown when none is requested.
const DefaultMaxLines = 2

// Options configures a single preview run.
type Options struct {
	// Path is the directory to preview. Empty means the current directory.
	Path string
	// MaxLines bounds the number of grid rows; it must be positive.
	MaxLines int
	// Width reports the terminal width. Nil means termsize.Width.
	Width termsize.Source
	// Out receives the grid. Nil means os.Stdout.
	Out io.Writer
	// Logger receives scan and layout diagnostics. Nil discards them.
	Logger *logger.Logger
	// StepLimit and Now tune the scanner's time budget.
	StepLimit time.Duration
	Now       func() time.Time
}

// Application runs a directory preview.
type Application struct {
	opts Options
	log  *logger.Logger
}

// NewApplication validates opts and fills in defaults. It performs no I/O.
func NewApplication(opts Options) (*Application, error) {
	if err := validateMaxLines(opts.MaxLines); err != nil {
		return nil, err
	}
	if opts.Path == "" {
		opts.Path = "."
	}
	opts.Path = expandUserPath(opts.Path)
	if opts.Width == nil {
		opts.Width = termsize.Width
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Application{opts: opts, log: opts.Logger}, nil
}

// Run scans the directory and prints the grid. Either the whole grid is
// written or, on error, nothing is.
func (app *Application) Run() error {
	termWidth, ok := app.opts.Width()
	if !ok {
		termWidth = 0
	}
	maxLines := app.opts.MaxLines
	maxItems := renderui.ScanBound(termWidth, maxLines)
	app.log.Debugf("terminal width=%d known=%v capacity bound=%d", termWidth, ok, maxItems)

	scanner := fs.Scanner{StepLimit: app.opts.StepLimit, Now: app.opts.Now}
	if app.log.DebugEnabled() {
		scanner.OnStep = func(index int, name string, elapsed time.Duration) {
			app.log.Debugf("step %d %q took %s", index, name, elapsed)
		}
	}
	outcome, err := scanner.Scan(app.opts.Path, maxItems)
	if err != nil {
		return err
	}

	dirsOnly := outcome.Stopped() || len(outcome.Entries) > maxItems
	app.log.Debugf("scanned %d entries (%d dirs) timed out=%v over capacity=%v dirs only=%v",
		len(outcome.Entries), outcome.DirCount, outcome.TimedOut, outcome.OverCapacity, dirsOnly)

	entries := outcome.Entries
	if dirsOnly {
		entries = fs.OnlyDirs(entries)
	}
	if len(entries) == 0 {
		return nil
	}

	out := bufio.NewWriter(app.opts.Out)
	res, err := renderui.WriteColumns(out, renderui.NewItems(entries), termWidth, maxLines, !dirsOnly)
	if err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}
	app.log.Debugf("layout column width=%d columns=%d shown=%d/%d truncated=%v narrowed to dirs=%v",
		res.Plan.ColumnWidth, res.Plan.ColumnCount, res.Shown, res.Total, res.Truncated, res.DirsOnly)
	return nil
}

// Run validates opts and performs one preview.
func Run(opts Options) error {
	app, err := NewApplication(opts)
	if err != nil {
		return err
	}
	return app.Run()
}
