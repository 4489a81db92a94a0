package logger

import (
	"io"
	"log"
	"os"
)

// Logger defines the fixturedb logging contract.
// Implementations should support standard log levels and be safe for concurrent use.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

// StdLogger wraps Go's standard logger. Progress markers (Info, Debug)
// go to stdout so they interleave with query output; Warn and Error go
// to stderr.
type StdLogger struct {
	out *log.Logger
	err *log.Logger
}

// NewStdLogger creates a StdLogger on stdout/stderr.
func NewStdLogger() *StdLogger {
	return NewStdLoggerTo(os.Stdout, os.Stderr)
}

// NewStdLoggerTo creates a StdLogger with explicit sinks.
func NewStdLoggerTo(out, err io.Writer) *StdLogger {
	return &StdLogger{
		out: log.New(out, "", log.LstdFlags),
		err: log.New(err, "", log.LstdFlags),
	}
}

func (l *StdLogger) Info(msg string, args ...any) {
	l.out.Printf("[INFO] "+msg, args...)
}

func (l *StdLogger) Warn(msg string, args ...any) {
	l.err.Printf("[WARN] "+msg, args...)
}

func (l *StdLogger) Error(msg string, args ...any) {
	l.err.Printf("[ERROR] "+msg, args...)
}

func (l *StdLogger) Debug(msg string, args ...any) {
	l.out.Printf("[DEBUG] "+msg, args...)
}

// Default provides a global default logger instance.
var Default Logger = NewStdLogger()
