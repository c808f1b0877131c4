package logger

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/philipp01105/plog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Logger.
// Attributes are appended to the message as key=value pairs, so patterns
// render them through %m.
type SlogHandler struct {
	logger *Logger
	attrs  []slog.Attr
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping l
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle converts a slog.Record to an Event and logs it
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !s.logger.Enabled(level) {
		return nil
	}

	var file string
	var line int
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		file, line = frame.File, frame.Line
	}

	ev := core.GetEvent()
	defer core.PutEvent(ev)
	ev.Reset(file, line, core.ElapsedMillis(), core.ThreadID(), core.GoroutineID(), record.Time.Unix())
	ev.WriteString(record.Message)

	for _, a := range s.attrs {
		writeAttr(ev, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		writeAttr(ev, s.group, a)
		return true
	})

	s.logger.Log(level, ev)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		if s.group != "" {
			a.Key = s.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// writeAttr appends " key=value" to the message, flattening groups
func writeAttr(ev *core.Event, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}
	if a.Value.Kind() == slog.KindGroup {
		// Inline groups (empty key) keep the parent prefix
		if a.Key == "" {
			key = group
		}
		for _, ga := range a.Value.Group() {
			writeAttr(ev, key, ga)
		}
		return
	}
	ev.WriteString(" ")
	ev.WriteString(key)
	ev.WriteString("=")
	ev.WriteString(a.Value.String())
}
