package logging

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Level represents the severity of a log line. Levels are ordered from
// least to most severe; a line is emitted only when its level is at or
// above the process-wide threshold.
type Level int

const (
	// LevelDebug is detailed diagnostic output.
	LevelDebug Level = iota
	// LevelInfo is routine operational output.
	LevelInfo
	// LevelWarn indicates something unexpected that did not stop the caller.
	LevelWarn
	// LevelError indicates a failure the caller could not recover from.
	LevelError
)

// levelNames is the total mapping from Level to its display name.
var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the display name used in emitted lines.
func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("Level(%d)", int(l))
	}

	return levelNames[l]
}

// threshold is the process-wide minimum level, shared by every Logger.
// Writes are last-writer-wins; an in-flight call may observe the previous
// value once, which is acceptable for log filtering.
var threshold atomic.Int32

func init() {
	threshold.Store(int32(LevelInfo))
}

// SetLevel sets the process-wide threshold. It takes effect for all
// Logger instances on their next call.
func SetLevel(l Level) {
	threshold.Store(int32(l))
}

// CurrentLevel returns the process-wide threshold.
func CurrentLevel() Level {
	return Level(threshold.Load())
}

// SetLevelByName resolves name case-insensitively against the four level
// names and sets the threshold to the match. On an unrecognized name it
// returns an *InvalidLevelError and leaves the threshold untouched.
func SetLevelByName(name string) error {
	switch strings.ToUpper(name) {
	case "DEBUG":
		SetLevel(LevelDebug)
	case "INFO":
		SetLevel(LevelInfo)
	case "WARN":
		SetLevel(LevelWarn)
	case "ERROR":
		SetLevel(LevelError)
	default:
		return &InvalidLevelError{Name: name}
	}

	return nil
}

// InvalidLevelError indicates a level name that matched none of
// DEBUG, INFO, WARN, or ERROR.
type InvalidLevelError struct {
	Name string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid log level name: %q", e.Name)
}
