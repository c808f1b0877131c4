package logger

import (
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/plog/appender"
	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/formatter"
)

// RootName is the name of the root logger of a Manager
const RootName = "root"

// Logger is a named event source. Events at or above its level are handed
// to each of its appenders in order. Level and appender changes are safe
// while other goroutines are logging.
type Logger struct {
	name       string
	level      atomic.Int32
	appenders  atomic.Pointer[[]appender.Appender]
	mu         sync.Mutex // serialises appender list and formatter updates
	formatter  formatter.Formatter
	parent     *Logger
	callerSkip int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name       string
	level      core.Level
	appenders  []appender.Appender
	formatter  formatter.Formatter
	parent     *Logger
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		name:  RootName,
		level: core.DebugLevel,
	}
}

// WithName sets the logger name
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithAppender adds an appender
func (b *Builder) WithAppender(a appender.Appender) *Builder {
	b.appenders = append(b.appenders, a)
	return b
}

// WithFormatter sets the formatter handed to appenders that have none
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithPattern sets the logger formatter to a new pattern formatter
func (b *Builder) WithPattern(pattern string) *Builder {
	b.formatter = formatter.NewPatternFormatter(formatter.Config{Pattern: pattern})
	return b
}

// WithParent sets the logger whose appenders are used while this logger
// has none of its own
func (b *Builder) WithParent(parent *Logger) *Builder {
	b.parent = parent
	return b
}

// WithCallerSkip adds frames to skip when capturing the call site, for
// wrappers around the logging methods
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	f := b.formatter
	if f == nil {
		// Each logger owns its formatter so SetPattern stays local
		f = formatter.NewPatternFormatter(formatter.Config{})
	}
	l := &Logger{
		name:       b.name,
		formatter:  f,
		parent:     b.parent,
		callerSkip: b.callerSkip,
	}
	l.level.Store(int32(b.level))
	empty := []appender.Appender{}
	l.appenders.Store(&empty)
	for _, a := range b.appenders {
		l.AddAppender(a)
	}
	return l
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the logger threshold
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel changes the logger threshold
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// Enabled reports whether an event at level would be dispatched
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.Level()
}

// Formatter returns the formatter handed to appenders that have none
func (l *Logger) Formatter() formatter.Formatter {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.formatter
}

// SetFormatter replaces the logger formatter. Appenders added later
// without a formatter of their own receive it.
func (l *Logger) SetFormatter(f formatter.Formatter) {
	l.mu.Lock()
	l.formatter = f
	l.mu.Unlock()
}

// SetPattern recompiles the logger's pattern formatter in place, which
// every appender sharing it picks up. If the logger formatter is not a
// *formatter.PatternFormatter a new one replaces it.
func (l *Logger) SetPattern(pattern string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if pf, ok := l.formatter.(*formatter.PatternFormatter); ok {
		return pf.SetPattern(pattern)
	}
	pf := formatter.NewPatternFormatter(formatter.Config{Pattern: pattern})
	l.formatter = pf
	return pf.Err()
}

// Appenders returns the logger's own appenders
func (l *Logger) Appenders() []appender.Appender {
	cur := *l.appenders.Load()
	out := make([]appender.Appender, len(cur))
	copy(out, cur)
	return out
}

// AddAppender appends a to the appender list. If a has no formatter it
// receives the logger formatter.
func (l *Logger) AddAppender(a appender.Appender) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if a.Formatter() == nil {
		a.SetFormatter(l.formatter)
	}
	cur := *l.appenders.Load()
	next := make([]appender.Appender, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, a)
	l.appenders.Store(&next)
}

// DelAppender removes the first occurrence of a. It does not close a.
func (l *Logger) DelAppender(a appender.Appender) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := *l.appenders.Load()
	for i, x := range cur {
		if x == a {
			next := make([]appender.Appender, 0, len(cur)-1)
			next = append(next, cur[:i]...)
			next = append(next, cur[i+1:]...)
			l.appenders.Store(&next)
			return
		}
	}
}

// ClearAppenders removes all appenders without closing them
func (l *Logger) ClearAppenders() {
	l.SetAppenders(nil)
}

// SetAppenders replaces the appender list and returns the previous one.
// Appenders without a formatter receive the logger formatter.
func (l *Logger) SetAppenders(list []appender.Appender) []appender.Appender {
	l.mu.Lock()
	defer l.mu.Unlock()
	next := make([]appender.Appender, len(list))
	copy(next, list)
	for _, a := range next {
		if a.Formatter() == nil {
			a.SetFormatter(l.formatter)
		}
	}
	return *l.appenders.Swap(&next)
}

// effectiveAppenders returns the logger's appenders, or its parent's
// when it has none
func (l *Logger) effectiveAppenders() []appender.Appender {
	for cur := l; cur != nil; cur = cur.parent {
		if apps := *cur.appenders.Load(); len(apps) > 0 {
			return apps
		}
	}
	return nil
}

// Log dispatches ev to every appender if level passes the logger's
// threshold. Appender failures are reported to core.Diagnostics and do
// not stop the remaining appenders.
func (l *Logger) Log(level core.Level, ev *core.Event) {
	if level < l.Level() {
		return
	}
	for _, a := range l.effectiveAppenders() {
		if err := a.Log(l.name, level, ev); err != nil {
			core.Diagnostics().Warn("appender write failed",
				zap.String("logger", l.name),
				zap.Stringer("level", level),
				zap.Error(err),
			)
		}
	}
}

// Debug logs ev at DebugLevel
func (l *Logger) Debug(ev *core.Event) {
	l.Log(core.DebugLevel, ev)
}

// Info logs ev at InfoLevel
func (l *Logger) Info(ev *core.Event) {
	l.Log(core.InfoLevel, ev)
}

// Warn logs ev at WarnLevel
func (l *Logger) Warn(ev *core.Event) {
	l.Log(core.WarnLevel, ev)
}

// Error logs ev at ErrorLevel
func (l *Logger) Error(ev *core.Event) {
	l.Log(core.ErrorLevel, ev)
}

// Fatal logs ev at FatalLevel. The program keeps running.
func (l *Logger) Fatal(ev *core.Event) {
	l.Log(core.FatalLevel, ev)
}

// Reopen reopens every appender that supports it
func (l *Logger) Reopen() error {
	var err error
	for _, a := range l.Appenders() {
		if r, ok := a.(appender.Reopener); ok {
			err = multierr.Append(err, r.Reopen())
		}
	}
	return err
}

// Close closes all of the logger's own appenders
func (l *Logger) Close() error {
	var err error
	for _, a := range l.Appenders() {
		err = multierr.Append(err, a.Close())
	}
	return err
}
