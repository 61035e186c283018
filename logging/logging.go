// Package logging provides the leveled, context-tagged logger used across
// the module.
//
// Every Logger shares a single process-wide threshold (initially
// [LevelInfo]) controlled with [SetLevel] or [SetLevelByName]. Each line
// carries a UTC timestamp, the level name, and the context the Logger was
// created with:
//
//	[2026-08-23T10:15:04.512Z] [INFO] [accounts] registered tool get_balance
//
// An optional data value may accompany a message. Structured values are
// appended as 2-space-indented JSON on the following line; scalars are
// appended inline. A value that cannot be marshaled never makes the call
// fail: it is replaced with a bracketed note.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// timestampLayout renders UTC instants in the ISO-8601 millisecond shape
// log aggregators expect.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// sinks holds one writer slot per level. Debug and info conventionally
// share stdout, warn and error share stderr, but the four slots stay
// distinct so embedders can split them.
var sinks = struct {
	mu    sync.Mutex
	debug io.Writer
	info  io.Writer
	warn  io.Writer
	err   io.Writer
}{
	debug: os.Stdout,
	info:  os.Stdout,
	warn:  os.Stderr,
	err:   os.Stderr,
}

// SetOutput redirects the informational sinks (debug, info) to out and the
// severity sinks (warn, error) to errOut. Primarily for tests and for
// embedding the logger in hosts that capture process output.
func SetOutput(out, errOut io.Writer) {
	sinks.mu.Lock()
	defer sinks.mu.Unlock()

	sinks.debug = out
	sinks.info = out
	sinks.warn = errOut
	sinks.err = errOut
}

// Logger emits lines tagged with a fixed context string. Loggers are
// immutable and hold no resources; create one per subsystem with
// [GetLogger] and share it freely.
type Logger struct {
	context string
}

// GetLogger returns a Logger bound to the given context. It always
// succeeds.
func GetLogger(context string) *Logger {
	return &Logger{context: context}
}

// Context returns the context string the Logger was created with.
func (l *Logger) Context() string {
	return l.context
}

// Debug emits a DEBUG line. At most one data value is rendered.
func (l *Logger) Debug(msg string, data ...any) {
	l.emit(LevelDebug, msg, data)
}

// Info emits an INFO line. At most one data value is rendered.
func (l *Logger) Info(msg string, data ...any) {
	l.emit(LevelInfo, msg, data)
}

// Warn emits a WARN line. At most one data value is rendered.
func (l *Logger) Warn(msg string, data ...any) {
	l.emit(LevelWarn, msg, data)
}

// Error emits an ERROR line. At most one data value is rendered.
func (l *Logger) Error(msg string, data ...any) {
	l.emit(LevelError, msg, data)
}

func (l *Logger) emit(level Level, msg string, data []any) {
	if level < CurrentLevel() {
		return
	}

	ts := time.Now().UTC().Format(timestampLayout)
	line := fmt.Sprintf("[%s] [%s] [%s] %s", ts, level, l.context, msg)

	if len(data) > 0 {
		line += renderData(data[0])
	}

	sinks.mu.Lock()
	defer sinks.mu.Unlock()

	fmt.Fprintln(l.sink(level), line)
}

// sink must be called with sinks.mu held.
func (l *Logger) sink(level Level) io.Writer {
	switch level {
	case LevelDebug:
		return sinks.debug
	case LevelInfo:
		return sinks.info
	case LevelWarn:
		return sinks.warn
	default:
		return sinks.err
	}
}

// renderData formats the optional data value. Scalars are appended inline
// after a space; everything else is serialized as indented JSON on a new
// line. Serialization failure degrades to a bracketed note so a logging
// call can never fail its caller.
func renderData(v any) string {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return fmt.Sprintf(" %v", v)
	case nil:
		return fmt.Sprintf(" %v", v)
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "\n[unserializable data: " + err.Error() + "]"
	}

	return "\n" + string(b)
}
