package formatter

import (
	"bytes"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/plog/core"
)

// DefaultPattern is the pattern used when none is configured
const DefaultPattern = "(%d) [%p] <%f:%l>\t%m %n"

// Formatter renders a log event into text
type Formatter interface {
	// Format renders the event logged by loggerName at level
	Format(loggerName string, level core.Level, event *core.Event) string
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without an intermediate string.
type WriterFormatter interface {
	// FormatTo renders the event and writes it to w
	FormatTo(w io.Writer, loggerName string, level core.Level, event *core.Event) error
}

// Config holds pattern formatter configuration
type Config struct {
	// Pattern is the layout to compile (empty for DefaultPattern)
	Pattern string
	// Location is the zone %d renders timestamps in (default: time.Local)
	Location *time.Location
	// Diagnostics receives pattern errors (default: core.Diagnostics())
	Diagnostics *zap.Logger
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
