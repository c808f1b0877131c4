package logger

import (
	"fmt"

	"github.com/philipp01105/plog/core"
)

// EventWriter accumulates the message of one captured event. Nothing is
// logged until Commit. A writer for a disabled level discards everything.
type EventWriter struct {
	logger *Logger
	level  core.Level
	event  *core.Event
}

var disabledWriter = &EventWriter{}

// At captures the call site and returns a writer for an event at level.
//
//	l.At(logger.InfoLevel).Printf("listening on %s", addr).Commit()
func (l *Logger) At(level core.Level) *EventWriter {
	return l.at(level, 1)
}

// at captures the event skip frames above its caller
func (l *Logger) at(level core.Level, skip int) *EventWriter {
	if !l.Enabled(level) {
		return disabledWriter
	}
	return &EventWriter{
		logger: l,
		level:  level,
		event:  core.CaptureEvent(skip + 1 + l.callerSkip),
	}
}

func (l *Logger) logf(level core.Level, skip int, format string, args []interface{}) {
	w := l.at(level, skip+1)
	if w.event == nil {
		return
	}
	w.event.Printf(format, args...)
	w.Commit()
}

// Enabled reports whether the writer will log on Commit
func (w *EventWriter) Enabled() bool {
	return w.event != nil
}

// Event returns the captured event, or nil for a disabled writer
func (w *EventWriter) Event() *core.Event {
	return w.event
}

// Write appends p to the message
func (w *EventWriter) Write(p []byte) (int, error) {
	if w.event == nil {
		return len(p), nil
	}
	return w.event.Write(p)
}

// Print appends the operands to the message in the manner of fmt.Print
func (w *EventWriter) Print(args ...interface{}) *EventWriter {
	if w.event != nil {
		fmt.Fprint(w.event, args...)
	}
	return w
}

// Printf appends a formatted string to the message
func (w *EventWriter) Printf(format string, args ...interface{}) *EventWriter {
	if w.event != nil {
		w.event.Printf(format, args...)
	}
	return w
}

// Commit logs the event and releases it. Further calls are no-ops.
func (w *EventWriter) Commit() {
	if w.event == nil {
		return
	}
	w.logger.Log(w.level, w.event)
	core.PutEvent(w.event)
	w.event = nil
}

// Debugf logs a formatted message at DebugLevel
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(core.DebugLevel, 1, format, args)
}

// Infof logs a formatted message at InfoLevel
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(core.InfoLevel, 1, format, args)
}

// Warnf logs a formatted message at WarnLevel
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(core.WarnLevel, 1, format, args)
}

// Errorf logs a formatted message at ErrorLevel
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(core.ErrorLevel, 1, format, args)
}

// Fatalf logs a formatted message at FatalLevel. The program keeps running.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logf(core.FatalLevel, 1, format, args)
}
