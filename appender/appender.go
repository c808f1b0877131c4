package appender

import (
	"sync"
	"sync/atomic"

	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/formatter"
)

// Appender writes rendered events to a destination
type Appender interface {
	// Log renders and writes the event if level passes the appender's
	// threshold. Filtered events return nil.
	Log(loggerName string, level core.Level, event *core.Event) error

	// Level returns the appender's threshold
	Level() core.Level
	// SetLevel changes the appender's threshold
	SetLevel(level core.Level)

	// Formatter returns the formatter, or nil if none was set
	Formatter() formatter.Formatter
	// SetFormatter replaces the formatter
	SetFormatter(f formatter.Formatter)

	// Close releases the destination
	Close() error
}

// Reopener is implemented by appenders backed by a file that can be
// closed and opened again, e.g. after external log rotation.
type Reopener interface {
	Reopen() error
}

// StatsProvider is implemented by appenders that count their writes
type StatsProvider interface {
	Stats() Snapshot
}

// base holds the threshold, formatter and counters shared by appenders
type base struct {
	level     atomic.Int32
	fmtMu     sync.RWMutex
	formatter formatter.Formatter
	stats     Stats
}

func (b *base) init(level core.Level, f formatter.Formatter) {
	b.level.Store(int32(level))
	b.formatter = f
}

// Level returns the appender's threshold
func (b *base) Level() core.Level {
	return core.Level(b.level.Load())
}

// SetLevel changes the appender's threshold
func (b *base) SetLevel(level core.Level) {
	b.level.Store(int32(level))
}

// Formatter returns the formatter, or nil if none was set
func (b *base) Formatter() formatter.Formatter {
	b.fmtMu.RLock()
	defer b.fmtMu.RUnlock()
	return b.formatter
}

// SetFormatter replaces the formatter
func (b *base) SetFormatter(f formatter.Formatter) {
	b.fmtMu.Lock()
	b.formatter = f
	b.fmtMu.Unlock()
}

// Stats returns a snapshot of the appender's counters
func (b *base) Stats() Snapshot {
	return b.stats.GetSnapshot()
}

// accept applies the level gate and picks the formatter to render with
func (b *base) accept(level core.Level) (formatter.Formatter, bool) {
	if level < b.Level() {
		b.stats.IncrementFiltered()
		return nil, false
	}
	f := b.Formatter()
	if f == nil {
		f = formatter.Default()
	}
	return f, true
}
