package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log event
type Level int8

const (
	// UnknownLevel is the zero value and sorts below every real level
	UnknownLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages. Logging at this level does not exit.
	FatalLevel
)

var levelNames = [...]string{
	UnknownLevel: "UNKNOWN",
	DebugLevel:   "DEBUG",
	InfoLevel:    "INFO",
	WarnLevel:    "WARN",
	ErrorLevel:   "ERROR",
	FatalLevel:   "FATAL",
}

// LevelToString returns the upper-case name of l, or "UNKNOWN" for any
// value outside the enumerated range.
func LevelToString(l Level) string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// String returns the string representation of the level
func (l Level) String() string {
	return LevelToString(l)
}

// Enabled reports whether an event at level passes a threshold of l.
func (l Level) Enabled(level Level) bool {
	return level >= l
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and accepts WARNING as an alias of WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "UNKNOWN":
		return UnknownLevel, nil
	default:
		return UnknownLevel, fmt.Errorf("unknown log level %q", s)
	}
}
