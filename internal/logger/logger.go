// Package logger writes leveled diagnostics for a preview run.
//
// A nil *Logger is valid and discards everything, so callers never need to
// check whether diagnostics are enabled.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	levelDebug int = iota
	levelInfo
)

// Logger writes timestamped, leveled lines to a writer.
type Logger struct {
	writer io.Writer
	level  int
	mutex  sync.Mutex
	now    func() time.Time
	label  *color.Color
}

// New creates a Logger writing to w. Valid levels are debug and info
// (case-insensitive); anything else defaults to info. A nil writer yields a
// nil Logger.
func New(w io.Writer, level string) *Logger {
	if w == nil {
		return nil
	}
	return &Logger{
		writer: w,
		level:  parseLevel(level),
		now:    time.Now,
		label:  color.New(color.FgCyan),
	}
}

func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	default:
		return levelInfo
	}
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(levelDebug, "DEBUG", format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(levelInfo, "INFO", format, args...)
}

// DebugEnabled reports whether debug lines would be written.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.level <= levelDebug
}

func (l *Logger) log(level int, tag, format string, args ...interface{}) {
	if l == nil || level < l.level {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()

	ts := l.now().Format("15:04:05")
	fmt.Fprintf(l.writer, "[%s] %s %s\n", ts, l.label.Sprint(tag), fmt.Sprintf(format, args...))
}
