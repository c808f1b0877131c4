package appender

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/formatter"
)

// ErrClosed is returned when writing to a closed file appender
var ErrClosed = errors.New("appender: file closed")

// FileAppender appends rendered events to a file
type FileAppender struct {
	base
	mu       sync.Mutex
	filename string
	file     *os.File
}

// FileConfig holds configuration for file appender
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: none; the owning logger supplies one)
	Formatter formatter.Formatter
	// Level is the appender threshold (default: UnknownLevel, pass all)
	Level core.Level
}

// NewFileAppender creates a file appender and opens its file for
// appending, creating parent directories as needed.
func NewFileAppender(cfg FileConfig) (*FileAppender, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filename is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0755); err != nil {
		return nil, errors.Wrapf(err, "create log directory for %s", cfg.Filename)
	}

	a := &FileAppender{filename: cfg.Filename}
	a.init(cfg.Level, cfg.Formatter)
	if err := a.open(); err != nil {
		return nil, err
	}
	return a, nil
}

// Filename returns the path of the backing file
func (a *FileAppender) Filename() string {
	return a.filename
}

func (a *FileAppender) open() error {
	file, err := os.OpenFile(a.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", a.filename)
	}
	a.file = file
	return nil
}

// Log renders and writes the event if level passes the threshold
func (a *FileAppender) Log(loggerName string, level core.Level, event *core.Event) error {
	f, ok := a.accept(level)
	if !ok {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.file == nil {
		return a.stats.record(ErrClosed)
	}
	if wf, ok := f.(formatter.WriterFormatter); ok {
		return a.stats.record(wf.FormatTo(a.file, loggerName, level, event))
	}
	_, err := a.file.WriteString(f.Format(loggerName, level, event))
	return a.stats.record(err)
}

// Reopen closes the backing file and opens it again. After an external
// rename this starts a fresh file at the configured path. On failure the
// appender is left closed and writes return ErrClosed until a later
// Reopen succeeds.
func (a *FileAppender) Reopen() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var closeErr error
	if a.file != nil {
		closeErr = a.file.Close()
		a.file = nil
	}
	if err := a.open(); err != nil {
		return err
	}
	if closeErr != nil {
		core.Diagnostics().Sugar().Warnw("close before reopen failed",
			"file", a.filename, "error", closeErr)
	}
	return nil
}

// Close syncs and closes the backing file
func (a *FileAppender) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return nil
	}
	file := a.file
	a.file = nil
	if err := file.Sync(); err != nil {
		file.Close()
		return errors.Wrapf(err, "sync log file %s", a.filename)
	}
	return file.Close()
}
