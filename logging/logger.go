// Package logging is the file backed logger of the console.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kndndrj/dbconsole/core"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug", "trace":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "fatal":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
}

var _ core.Logger = (*Logger)(nil)

// Logger writes levelled lines with the standard logger. Messages below
// the threshold are dropped.
type Logger struct {
	logger    *log.Logger
	file      *os.File
	threshold Level
}

// New returns a logger writing to w.
func New(w io.Writer, threshold Level) *Logger {
	return &Logger{
		logger:    log.New(w, "", log.Ldate|log.Ltime),
		threshold: threshold,
	}
}

// NewFile returns a logger appending to the file at path. With an empty
// path everything is discarded, so console output stays clean.
func NewFile(path string, threshold Level) (*Logger, error) {
	if path == "" {
		return New(io.Discard, threshold), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return nil, fmt.Errorf("os.OpenFile: %w", err)
	}

	l := New(file, threshold)
	l.file = file
	return l, nil
}

func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}

func (l *Logger) log(level Level, message string) {
	if level < l.threshold {
		return
	}
	l.logger.Printf("[%s]: %s", level, message)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, fmt.Sprintf(format, args...))
}
