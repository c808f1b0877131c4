package logger

import (
	"sort"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/plog/appender"
	"github.com/philipp01105/plog/core"
)

// Manager owns a root logger and a set of named loggers. Loggers created
// through Get use the root's appenders until they are given their own.
type Manager struct {
	mu      sync.RWMutex
	root    *Logger
	loggers map[string]*Logger
}

// NewManager creates a manager whose root logger logs everything to
// stdout with formatter.DefaultPattern
func NewManager() *Manager {
	root := NewBuilder().
		WithName(RootName).
		WithLevel(core.DebugLevel).
		WithAppender(appender.NewStdoutAppender()).
		Build()
	return NewManagerWithRoot(root)
}

// NewManagerWithRoot creates a manager around an existing root logger
func NewManagerWithRoot(root *Logger) *Manager {
	return &Manager{
		root:    root,
		loggers: map[string]*Logger{root.Name(): root},
	}
}

// Root returns the root logger
func (m *Manager) Root() *Logger {
	return m.root
}

// Lookup returns the logger registered under name
func (m *Manager) Lookup(name string) (*Logger, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.loggers[name]
	return l, ok
}

// Get returns the logger registered under name, creating it on first use.
// An empty name returns the root logger.
func (m *Manager) Get(name string) *Logger {
	if name == "" {
		return m.root
	}
	if l, ok := m.Lookup(name); ok {
		return l
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.loggers[name]; ok {
		return l
	}
	l := NewBuilder().
		WithName(name).
		WithLevel(core.DebugLevel).
		WithParent(m.root).
		Build()
	m.loggers[name] = l
	return l
}

// Names returns the registered logger names in sorted order
func (m *Manager) Names() []string {
	m.mu.RLock()
	names := make([]string, 0, len(m.loggers))
	for name := range m.loggers {
		names = append(names, name)
	}
	m.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Loggers returns the registered loggers sorted by name
func (m *Manager) Loggers() []*Logger {
	names := m.Names()
	out := make([]*Logger, 0, len(names))
	m.mu.RLock()
	for _, name := range names {
		out = append(out, m.loggers[name])
	}
	m.mu.RUnlock()
	return out
}

// uniqueAppenders collects every appender once, even when shared
func (m *Manager) uniqueAppenders() []appender.Appender {
	seen := make(map[appender.Appender]struct{})
	var out []appender.Appender
	for _, l := range m.Loggers() {
		for _, a := range l.Appenders() {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

// Reopen reopens every file-backed appender of every logger
func (m *Manager) Reopen() error {
	var err error
	for _, a := range m.uniqueAppenders() {
		if r, ok := a.(appender.Reopener); ok {
			err = multierr.Append(err, r.Reopen())
		}
	}
	return err
}

// Close closes every appender of every logger
func (m *Manager) Close() error {
	var err error
	for _, a := range m.uniqueAppenders() {
		err = multierr.Append(err, a.Close())
	}
	return err
}
