package logger

import (
	"sync"

	"github.com/philipp01105/plog/core"
)

var (
	defaultManager *Manager
	defaultMu      sync.RWMutex
)

func init() {
	// Root logger: DEBUG and above to stdout with the default pattern
	defaultManager = NewManager()
}

// DefaultManager returns the process-wide manager
func DefaultManager() *Manager {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultManager
}

// SetDefaultManager replaces the process-wide manager
func SetDefaultManager(m *Manager) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultManager = m
}

// Default returns the root logger of the default manager
func Default() *Logger {
	return DefaultManager().Root()
}

// Named returns the logger called name from the default manager
func Named(name string) *Logger {
	return DefaultManager().Get(name)
}

// Package-level convenience functions using the default logger

// At captures the call site and returns a writer for the default logger
func At(level core.Level) *EventWriter {
	return Default().at(level, 1)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().logf(core.DebugLevel, 1, format, args)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().logf(core.InfoLevel, 1, format, args)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().logf(core.WarnLevel, 1, format, args)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().logf(core.ErrorLevel, 1, format, args)
}

// Fatalf logs a formatted fatal message using the default logger
func Fatalf(format string, args ...interface{}) {
	Default().logf(core.FatalLevel, 1, format, args)
}
