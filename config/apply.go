package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/plog/appender"
	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/formatter"
	"github.com/philipp01105/plog/logger"
)

// Apply creates or updates the loggers of m. A logger whose appender list
// is given gets exactly those appenders; the appenders it had before are
// closed unless they are reused. File appenders for the same path are
// shared across loggers.
func (c *Config) Apply(m *logger.Manager) error {
	if err := c.Validate(); err != nil {
		return err
	}

	files := make(map[string]*appender.FileAppender)
	for _, a := range existingFiles(m) {
		if path, perr := filepath.Abs(a.Filename()); perr == nil {
			files[path] = a
		}
	}

	var err error
	for _, lc := range c.Loggers {
		l := m.Get(lc.Name)
		if lc.Level != "" {
			level, _ := core.ParseLevel(lc.Level)
			l.SetLevel(level)
		}
		if lc.Pattern != "" {
			// Pattern errors are advisory and already reported to diagnostics
			_ = l.SetPattern(lc.Pattern)
		}
		if lc.Appenders == nil {
			continue
		}

		list, buildErr := buildAppenders(l.Formatter(), lc.Appenders, files)
		if buildErr != nil {
			err = multierr.Append(err, errors.Wrap(buildErr, loggerLabel(lc.Name)))
			continue
		}

		old := l.SetAppenders(list)
		err = multierr.Append(err, closeUnused(m, old))
	}
	return err
}

// buildAppenders builds one logger's appender list. File appenders it opens
// are added to files only when the whole list succeeds; otherwise they are
// closed again and files is left untouched.
func buildAppenders(shared formatter.Formatter, acs []AppenderConfig, files map[string]*appender.FileAppender) ([]appender.Appender, error) {
	opened := make(map[string]*appender.FileAppender)
	list := make([]appender.Appender, 0, len(acs))
	var err error
	for i, ac := range acs {
		a, aerr := ac.build(shared, files, opened)
		if aerr != nil {
			err = multierr.Append(err, errors.Wrapf(aerr, "appender %d", i))
			continue
		}
		list = append(list, a)
	}
	if err != nil {
		for _, fa := range opened {
			err = multierr.Append(err, fa.Close())
		}
		return nil, err
	}
	for path, fa := range opened {
		files[path] = fa
	}
	return list, nil
}

// build creates the appender for ac. A file appender already in files or
// opened is reused; a newly opened one is recorded in opened.
func (ac AppenderConfig) build(shared formatter.Formatter, files, opened map[string]*appender.FileAppender) (appender.Appender, error) {
	f := shared
	if ac.Pattern != "" {
		f = formatter.New(ac.Pattern)
	}
	var level core.Level
	if ac.Level != "" {
		level, _ = core.ParseLevel(ac.Level)
	}

	switch ac.Type {
	case TypeStdout, TypeStderr:
		w := os.Stdout
		if ac.Type == TypeStderr {
			w = os.Stderr
		}
		return appender.NewConsoleAppender(appender.ConsoleConfig{
			Writer:    w,
			Formatter: f,
			Level:     level,
			Color:     ac.Color,
		}), nil
	case TypeFile:
		path, err := filepath.Abs(ac.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve %s", ac.Path)
		}
		if a, ok := files[path]; ok {
			return a, nil
		}
		if a, ok := opened[path]; ok {
			return a, nil
		}
		a, err := appender.NewFileAppender(appender.FileConfig{
			Filename:  path,
			Formatter: f,
			Level:     level,
		})
		if err != nil {
			return nil, err
		}
		opened[path] = a
		return a, nil
	default:
		return nil, errors.Errorf("unknown appender type %q", ac.Type)
	}
}

// existingFiles returns the file appenders already attached to m, so a
// reapplied config keeps writing through the same handles
func existingFiles(m *logger.Manager) []*appender.FileAppender {
	var out []*appender.FileAppender
	for _, l := range m.Loggers() {
		for _, a := range l.Appenders() {
			if fa, ok := a.(*appender.FileAppender); ok {
				out = append(out, fa)
			}
		}
	}
	return out
}

// closeUnused closes every appender of old that no logger of m still uses
func closeUnused(m *logger.Manager, old []appender.Appender) error {
	inUse := make(map[appender.Appender]struct{})
	for _, l := range m.Loggers() {
		for _, a := range l.Appenders() {
			inUse[a] = struct{}{}
		}
	}
	var err error
	for _, a := range old {
		if _, ok := inUse[a]; ok {
			continue
		}
		err = multierr.Append(err, a.Close())
	}
	return err
}
