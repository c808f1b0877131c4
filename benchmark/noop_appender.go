package benchmark

import (
	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/formatter"
)

// noopAppender accepts every event without rendering it, isolating the
// cost of capture and dispatch
type noopAppender struct {
	f formatter.Formatter
}

func newNoopAppender() *noopAppender {
	return &noopAppender{}
}

func (a *noopAppender) Log(_ string, _ core.Level, ev *core.Event) error {
	_ = len(ev.MessageBytes())
	return nil
}

func (a *noopAppender) Level() core.Level                  { return core.UnknownLevel }
func (a *noopAppender) SetLevel(core.Level)                {}
func (a *noopAppender) Formatter() formatter.Formatter     { return a.f }
func (a *noopAppender) SetFormatter(f formatter.Formatter) { a.f = f }
func (a *noopAppender) Close() error                       { return nil }
