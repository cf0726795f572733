package devlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

type call struct {
	level   log.Level
	msg     interface{}
	keyvals []interface{}
}

type fakeSink struct {
	calls []call
}

func (f *fakeSink) Log(level log.Level, msg interface{}, keyvals ...interface{}) {
	f.calls = append(f.calls, call{level: level, msg: msg, keyvals: keyvals})
}

func TestLogDevModeOff(t *testing.T) {
	sink := &fakeSink{}
	l := &Logger{DevMode: false, Sink: sink}

	l.Log("info", "hello")
	l.Log("error", "boom", "code", 1)
	l.Debug("quiet")

	if len(sink.calls) != 0 {
		t.Errorf("sink called %d times, expected 0", len(sink.calls))
	}
}

func TestLogDevModeOn(t *testing.T) {
	tests := []struct {
		op       string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"log", log.InfoLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
	}

	for _, tc := range tests {
		t.Run(tc.op, func(t *testing.T) {
			sink := &fakeSink{}
			l := &Logger{DevMode: true, Sink: sink}

			l.Log(tc.op, "level loaded", "level", 3)

			if len(sink.calls) != 1 {
				t.Fatalf("sink called %d times, expected 1", len(sink.calls))
			}
			c := sink.calls[0]
			if c.level != tc.expected {
				t.Errorf("level = %v, expected %v", c.level, tc.expected)
			}
			if c.msg != "level loaded" {
				t.Errorf("msg = %v, expected %q", c.msg, "level loaded")
			}
			if len(c.keyvals) != 2 || c.keyvals[0] != "level" || c.keyvals[1] != 3 {
				t.Errorf("keyvals = %v, expected [level 3]", c.keyvals)
			}
		})
	}
}

func TestLogUnknownOp(t *testing.T) {
	sink := &fakeSink{}
	l := &Logger{DevMode: true, Sink: sink}

	l.Log("table", "rows")

	if len(sink.calls) != 0 {
		t.Errorf("sink called %d times, expected 0", len(sink.calls))
	}
}

func TestLogFlagReadAtCallTime(t *testing.T) {
	sink := &fakeSink{}
	l := &Logger{DevMode: false, Sink: sink}

	l.Info("before")
	l.DevMode = true
	l.Info("after")

	if len(sink.calls) != 1 || sink.calls[0].msg != "after" {
		t.Errorf("sink calls = %v, expected only %q", sink.calls, "after")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info("nothing")
	(&Logger{DevMode: true}).Error("no sink")
}

func TestNewWritesThroughCharmLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	l.Info("level solved", "moves", 12)

	out := buf.String()
	if !strings.Contains(out, "level solved") {
		t.Errorf("output %q does not contain message", out)
	}
	if !strings.Contains(out, "moves=12") {
		t.Errorf("output %q does not contain keyvals", out)
	}
}
