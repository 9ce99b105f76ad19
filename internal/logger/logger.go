package logger

import (
	"io"
	"log"
)

// Logger is the leveled printf-style logger used by the command line tools.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// DefaultLogger writes "[LEVEL] name | message" lines. Debug lines are only
// written when debug is enabled.
type DefaultLogger struct {
	name  string
	debug bool
	out   *log.Logger
}

// New returns a DefaultLogger writing to w.
func New(name string, w io.Writer, debug bool) *DefaultLogger {
	return &DefaultLogger{
		name:  name,
		debug: debug,
		out:   log.New(w, "", 0),
	}
}

func (d *DefaultLogger) Debug(format string, args ...any) {
	if d.debug {
		d.out.Printf("[DEBUG] "+d.name+" | "+format, args...)
	}
}

func (d *DefaultLogger) Info(format string, args ...any) {
	d.out.Printf("[INFO] "+d.name+" | "+format, args...)
}

func (d *DefaultLogger) Error(format string, args ...any) {
	d.out.Printf("[ERROR] "+d.name+" | "+format, args...)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Error(string, ...any) {}
