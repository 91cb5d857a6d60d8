package render

import (
	"errors"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/kk-code-lab/dirpeek/internal/fs"
	"github.com/kk-code-lab/dirpeek/internal/textutil"
)

const (
	// MinTabWidth is the granularity column widths are rounded up to.
	MinTabWidth = 8
	// TruncationMarker takes the place of the last cell of a full grid.
	TruncationMarker = "...."
)

// ErrNoEntries is returned when there is nothing to lay out.
var ErrNoEntries = errors.New("no entries to lay out")

// Item is an entry prepared for layout: its printable label and the number
// of cells the label occupies.
type Item struct {
	fs.Entry
	Label string
	Width int
}

// NewItems sanitizes and measures entries.
func NewItems(entries []fs.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		label := textutil.SanitizeName(e.Name)
		items = append(items, Item{
			Entry: e,
			Label: label,
			Width: textutil.DisplayWidth(label),
		})
	}
	return items
}

// Plan is the column geometry chosen for one candidate set.
type Plan struct {
	ColumnWidth int
	ColumnCount int
}

// Capacity is the number of cells available in maxLines rows.
func (p Plan) Capacity(maxLines int) int {
	return capacity(p.ColumnCount, maxLines)
}

// ScanBound is the most entries that could ever be shown in maxLines rows
// of a termWidth-wide terminal.
func ScanBound(termWidth, maxLines int) int {
	return capacity(EstimateColumns(termWidth), maxLines)
}

// capacity multiplies columns by lines, saturating at math.MaxInt.
func capacity(columns, lines int) int {
	if columns <= 0 || lines <= 0 {
		return 0
	}
	if lines > math.MaxInt/columns {
		return math.MaxInt
	}
	return columns * lines
}

// EstimateColumns returns the most columns that could fit in termWidth if
// every name were narrower than MinTabWidth. An unknown width (<= 0) yields 1.
func EstimateColumns(termWidth int) int {
	return max(1, termWidth/MinTabWidth)
}

// ComputePlan sizes every column to the widest item rounded up to
// MinTabWidth and fits as many columns as termWidth allows, at least one.
// termWidth <= 0 means the width is unknown.
func ComputePlan(items []Item, termWidth int) Plan {
	widest := 0
	for _, it := range items {
		widest = max(widest, it.Width)
	}
	columnWidth := textutil.RoundUp(widest, MinTabWidth)
	columns := 1
	if termWidth > 0 {
		columns = max(1, termWidth/columnWidth)
	}
	return Plan{ColumnWidth: columnWidth, ColumnCount: columns}
}

// Result describes what WriteColumns printed.
type Result struct {
	Plan      Plan
	Total     int
	Shown     int
	Truncated bool
	DirsOnly  bool
}

// WriteColumns prints items as a row-major grid of at most maxLines rows.
// When allowDirsOnly is set and the items do not fit, non-directories are
// dropped and the grid is recomputed, provided at least one directory exists.
// Output is written in a single call once the whole grid is built.
func WriteColumns(w io.Writer, items []Item, termWidth, maxLines int, allowDirsOnly bool) (Result, error) {
	if len(items) == 0 {
		return Result{}, ErrNoEntries
	}
	maxLines = max(1, maxLines)

	plan := ComputePlan(items, termWidth)
	dirsOnly := false
	if allowDirsOnly && len(items) > plan.Capacity(maxLines) {
		if narrowed := dirItems(items); len(narrowed) > 0 {
			items = narrowed
			plan = ComputePlan(items, termWidth)
			dirsOnly = true
		}
	}

	items = slices.Clone(items)
	slices.SortStableFunc(items, func(a, b Item) int {
		return strings.Compare(a.Name, b.Name)
	})

	var b strings.Builder
	shown, truncated := writeGrid(&b, items, plan, maxLines)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return Result{}, err
	}
	return Result{
		Plan:      plan,
		Total:     len(items),
		Shown:     shown,
		Truncated: truncated,
		DirsOnly:  dirsOnly,
	}, nil
}

func dirItems(items []Item) []Item {
	dirs := make([]Item, 0, len(items))
	for _, it := range items {
		if it.IsDir() {
			dirs = append(dirs, it)
		}
	}
	return dirs
}

func writeGrid(b *strings.Builder, items []Item, plan Plan, maxLines int) (int, bool) {
	limit := plan.Capacity(maxLines)
	truncate := len(items) >= limit
	columns := plan.ColumnCount

	for i, it := range items {
		column := i % columns
		if truncate && i == limit-1 {
			if column != 0 {
				b.WriteByte('\n')
			}
			b.WriteString(TruncationMarker)
			b.WriteByte('\n')
			return i, true
		}

		style, indicator := Classify(it.Type)
		b.WriteString(style.Apply(it.Label))
		b.WriteString(indicator)

		lastInRow := column == columns-1
		if !lastInRow {
			b.WriteString(strings.Repeat(" ", plan.ColumnWidth-it.Width))
		}
		if lastInRow || i == len(items)-1 {
			b.WriteByte('\n')
		}
	}
	return len(items), false
}
