package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// DefaultStepLimit is the longest a single enumeration step may take before
// the scan gives up on the rest of the directory.
const DefaultStepLimit = 10 * time.Millisecond

const readBatch = 64

// ScanOutcome is the result of a bounded directory scan.
type ScanOutcome struct {
	Entries      []Entry
	DirCount     int
	TimedOut     bool
	OverCapacity bool
}

// Stopped reports whether the scan ended before the directory was exhausted.
func (o ScanOutcome) Stopped() bool {
	return o.TimedOut || o.OverCapacity
}

// ScanError reports a directory that could not be enumerated.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Scanner enumerates a directory under a per-step time budget and a cap on
// the number of directories collected.
type Scanner struct {
	// StepLimit bounds the time between two visible entries. Zero means
	// DefaultStepLimit.
	StepLimit time.Duration
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
	// OnStep, when set, observes the elapsed time of every visible entry.
	OnStep func(index int, name string, elapsed time.Duration)
}

// Scan enumerates path with the default scanner.
func Scan(path string, maxItems int) (ScanOutcome, error) {
	return Scanner{}.Scan(path, maxItems)
}

// Scan enumerates path in directory order, skipping hidden entries. It stops
// once maxItems directories have been seen or once a single step exceeds the
// step limit; the entry that tripped either limit is kept.
func (s Scanner) Scan(path string, maxItems int) (ScanOutcome, error) {
	if maxItems < 1 {
		maxItems = 1
	}
	limit := s.StepLimit
	if limit <= 0 {
		limit = DefaultStepLimit
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}

	dir, err := os.Open(path)
	if err != nil {
		return ScanOutcome{}, &ScanError{Path: path, Err: err}
	}
	defer func() {
		_ = dir.Close()
	}()

	var out ScanOutcome
	last := now()
	index := 0
	for {
		batch, err := dir.ReadDir(readBatch)
		for _, de := range batch {
			rawName := de.Name()
			if IsHidden(rawName) {
				continue
			}

			entry := Entry{
				Name: displayName(rawName),
				Type: TypeFromMode(de.Type()),
			}
			if entry.IsDir() {
				out.DirCount++
			}
			out.Entries = append(out.Entries, entry)
			if out.DirCount >= maxItems {
				out.OverCapacity = true
				return out, nil
			}

			current := now()
			elapsed := current.Sub(last)
			last = current
			if s.OnStep != nil {
				s.OnStep(index, entry.Name, elapsed)
			}
			index++
			if elapsed > limit {
				out.TimedOut = true
				return out, nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return ScanOutcome{}, &ScanError{Path: path, Err: err}
		}
		if len(batch) == 0 {
			return out, nil
		}
	}
}

func displayName(raw string) string {
	return norm.NFC.String(strings.ToValidUTF8(raw, "�"))
}
