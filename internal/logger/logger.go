// Package logger provides the leveled logger used across calcprods.
// Three levels exist: off, normal (info/warn/error) and verbose (adds
// debug). Logs go to stderr by default so stdout stays free for tables.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// String returns the level name accepted by ParseLevel.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelVerbose:
		return "verbose"
	default:
		return "normal"
	}
}

// ParseLevel converts a level name from config. "debug" is an alias for
// verbose and "quiet" for off.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "off", "quiet":
		return LevelOff, nil
	case "", "normal", "info":
		return LevelNormal, nil
	case "verbose", "debug":
		return LevelVerbose, nil
	}
	return LevelNormal, fmt.Errorf("unknown log level %q", name)
}

// Logger is a leveled logger. All methods are safe for concurrent use.
type Logger struct {
	mu     sync.RWMutex
	level  Level
	debug  *log.Logger
	info   *log.Logger
	warn   *log.Logger
	errLog *log.Logger
}

// New creates a logger with the given level, writing to out.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	flags := log.Ltime

	return &Logger{
		level:  level,
		debug:  log.New(out, "[DBG] ", flags),
		info:   log.New(out, "[INF] ", flags),
		warn:   log.New(out, "[WRN] ", flags),
		errLog: log.New(out, "[ERR] ", flags),
	}
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Debug logs at debug level (verbose only).
func (l *Logger) Debug(format string, args ...any) {
	l.output(LevelVerbose, l.debug, format, args...)
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) {
	l.output(LevelNormal, l.info, format, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.output(LevelNormal, l.warn, format, args...)
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) {
	l.output(LevelNormal, l.errLog, format, args...)
}

func (l *Logger) output(min Level, dst *log.Logger, format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level >= min {
		dst.Output(3, fmt.Sprintf(format, args...))
	}
}
