// Package logger provides a small leveled logger for the application.
// Levels are off (silent), normal (info/warn/error), and verbose
// (adds debug). Safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level controls logger verbosity.
type Level int

const (
	// LevelOff disables all output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables everything, including debug.
	LevelVerbose
)

// Logger is a leveled logger. All methods are safe for concurrent use.
type Logger struct {
	mu    sync.RWMutex
	level Level
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	erro  *log.Logger
}

// New creates a logger at the given level writing to out. A nil out
// falls back to os.Stderr.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level: level,
		debug: log.New(out, "[DBG] ", log.Ltime),
		info:  log.New(out, "[INF] ", log.Ltime),
		warn:  log.New(out, "[WRN] ", log.Ltime),
		erro:  log.New(out, "[ERR] ", log.Ltime),
	}
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current log level.
func (l *Logger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Debug logs at debug level; visible only in verbose mode.
func (l *Logger) Debug(format string, args ...any) { l.emit(LevelVerbose, l.debug, format, args) }

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) { l.emit(LevelNormal, l.info, format, args) }

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) { l.emit(LevelNormal, l.warn, format, args) }

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) { l.emit(LevelNormal, l.erro, format, args) }

func (l *Logger) emit(min Level, dst *log.Logger, format string, args []any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level >= min {
		dst.Output(3, fmt.Sprintf(format, args...))
	}
}
