package appender

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/formatter"
)

// ConsoleAppender writes rendered events to stdout or any io.Writer
type ConsoleAppender struct {
	base
	mu     sync.Mutex
	writer io.Writer
	colors map[core.Level]*color.Color
}

// ConsoleConfig holds configuration for console appender
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: none; the owning logger supplies one)
	Formatter formatter.Formatter
	// Level is the appender threshold (default: UnknownLevel, pass all)
	Level core.Level
	// Color wraps each line in an ANSI colour chosen by level
	Color bool
}

// levelColors returns forced-on colours so output is coloured even when
// the writer is not a terminal
func levelColors() map[core.Level]*color.Color {
	m := map[core.Level]*color.Color{
		core.DebugLevel: color.New(color.FgCyan),
		core.InfoLevel:  color.New(color.FgGreen),
		core.WarnLevel:  color.New(color.FgYellow),
		core.ErrorLevel: color.New(color.FgRed),
		core.FatalLevel: color.New(color.FgHiRed, color.Bold),
	}
	for _, c := range m {
		c.EnableColor()
	}
	return m
}

// NewConsoleAppender creates a new console appender
func NewConsoleAppender(cfg ConsoleConfig) *ConsoleAppender {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	a := &ConsoleAppender{writer: cfg.Writer}
	a.init(cfg.Level, cfg.Formatter)
	if cfg.Color {
		a.colors = levelColors()
	}
	return a
}

// NewStdoutAppender creates a console appender on os.Stdout
func NewStdoutAppender() *ConsoleAppender {
	return NewConsoleAppender(ConsoleConfig{})
}

// Log renders and writes the event if level passes the threshold
func (a *ConsoleAppender) Log(loggerName string, level core.Level, event *core.Event) error {
	f, ok := a.accept(level)
	if !ok {
		return nil
	}

	if c := a.colors[level]; c != nil {
		line := f.Format(loggerName, level, event)
		body := strings.TrimRight(line, "\n")
		a.mu.Lock()
		_, err := io.WriteString(a.writer, c.Sprint(body)+line[len(body):])
		a.mu.Unlock()
		return a.stats.record(err)
	}

	if wf, ok := f.(formatter.WriterFormatter); ok {
		a.mu.Lock()
		err := wf.FormatTo(a.writer, loggerName, level, event)
		a.mu.Unlock()
		return a.stats.record(err)
	}

	line := f.Format(loggerName, level, event)
	a.mu.Lock()
	_, err := io.WriteString(a.writer, line)
	a.mu.Unlock()
	return a.stats.record(err)
}

// Close is a no-op. The writer belongs to the caller.
func (a *ConsoleAppender) Close() error {
	return nil
}
