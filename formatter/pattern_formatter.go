package formatter

import (
	"bytes"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/plog/core"
)

// compiled is one immutable pattern/item-list pair
type compiled struct {
	pattern string
	items   []Item
	err     error
}

// PatternFormatter renders events through a compiled pattern. It is safe
// for concurrent use, including concurrent SetPattern calls.
type PatternFormatter struct {
	state atomic.Pointer[compiled]
	loc   *time.Location
	diag  *zap.Logger
}

// New creates a pattern formatter for pattern using the local time zone.
// An empty pattern selects DefaultPattern; use SetPattern("") for a
// formatter that renders nothing.
func New(pattern string) *PatternFormatter {
	return NewPatternFormatter(Config{Pattern: pattern})
}

// NewPatternFormatter creates a new pattern formatter. It never fails:
// problems in the pattern are reported to the diagnostic logger and are
// available from Err.
func NewPatternFormatter(cfg Config) *PatternFormatter {
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	f := &PatternFormatter{loc: cfg.Location, diag: cfg.Diagnostics}
	f.SetPattern(cfg.Pattern)
	return f
}

var defaultFormatter = sync.OnceValue(func() *PatternFormatter {
	return NewPatternFormatter(Config{})
})

// Default returns a shared formatter using DefaultPattern
func Default() *PatternFormatter {
	return defaultFormatter()
}

// SetPattern compiles pattern and atomically replaces the current item
// list. In-flight Format calls finish with the list they started with.
// The returned error is advisory; the new pattern is installed regardless.
func (f *PatternFormatter) SetPattern(pattern string) error {
	items, err := Compile(pattern)
	if len(items) == 0 {
		items = []Item{{kind: StringItem}}
	}
	if err != nil {
		f.diagnostics().Warn("invalid log pattern",
			zap.String("pattern", pattern),
			zap.Error(err),
		)
	}
	f.state.Store(&compiled{pattern: pattern, items: items, err: err})
	return err
}

func (f *PatternFormatter) diagnostics() *zap.Logger {
	if f.diag != nil {
		return f.diag
	}
	return core.Diagnostics()
}

// Pattern returns the current pattern string
func (f *PatternFormatter) Pattern() string {
	return f.state.Load().pattern
}

// Err returns the advisory error from compiling the current pattern
func (f *PatternFormatter) Err() error {
	return f.state.Load().err
}

// Items returns a copy of the compiled item list
func (f *PatternFormatter) Items() []Item {
	items := f.state.Load().items
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Format renders the event as a string
func (f *PatternFormatter) Format(loggerName string, level core.Level, event *core.Event) string {
	buf := getBuffer()
	f.render(buf, loggerName, level, event)
	s := buf.String()
	putBuffer(buf)
	return s
}

// FormatTo renders the event and writes it to w in a single Write call
func (f *PatternFormatter) FormatTo(w io.Writer, loggerName string, level core.Level, event *core.Event) error {
	buf := getBuffer()
	f.render(buf, loggerName, level, event)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// AppendFormat renders the event and appends it to dst
func (f *PatternFormatter) AppendFormat(dst []byte, loggerName string, level core.Level, event *core.Event) []byte {
	buf := getBuffer()
	f.render(buf, loggerName, level, event)
	dst = append(dst, buf.Bytes()...)
	putBuffer(buf)
	return dst
}

func (f *PatternFormatter) render(buf *bytes.Buffer, loggerName string, level core.Level, event *core.Event) {
	for _, it := range f.state.Load().items {
		it.render(buf, loggerName, level, event, f.loc)
	}
}
