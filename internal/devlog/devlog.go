// Package devlog forwards log calls to a sink only while developer mode is on.
package devlog

import (
	"io"

	"github.com/charmbracelet/log"
)

// Sink is the logging capability devlog forwards to.
// *log.Logger satisfies it.
type Sink interface {
	Log(level log.Level, msg interface{}, keyvals ...interface{})
}

// ops maps console-style operation names to sink levels.
var ops = map[string]log.Level{
	"debug": log.DebugLevel,
	"log":   log.InfoLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
}

// Logger is a conditional logger. DevMode is read on every call.
type Logger struct {
	DevMode bool
	Sink    Sink
}

// New creates a Logger writing to w with the platform's log format.
func New(w io.Writer, devMode bool) *Logger {
	sink := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "puzzlekit",
		Level:           log.DebugLevel,
	})
	return &Logger{DevMode: devMode, Sink: sink}
}

// Log forwards msg and keyvals to the sink operation named op.
// Nothing happens when developer mode is off, the sink is missing, or op
// is not a known operation.
func (l *Logger) Log(op string, msg interface{}, keyvals ...interface{}) {
	if l == nil || !l.DevMode || l.Sink == nil {
		return
	}
	level, ok := ops[op]
	if !ok {
		return
	}
	l.Sink.Log(level, msg, keyvals...)
}

// Debug is shorthand for Log("debug", ...).
func (l *Logger) Debug(msg interface{}, keyvals ...interface{}) {
	l.Log("debug", msg, keyvals...)
}

// Info is shorthand for Log("info", ...).
func (l *Logger) Info(msg interface{}, keyvals ...interface{}) {
	l.Log("info", msg, keyvals...)
}

// Error is shorthand for Log("error", ...).
func (l *Logger) Error(msg interface{}, keyvals ...interface{}) {
	l.Log("error", msg, keyvals...)
}
