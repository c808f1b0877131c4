package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/titanous/json5"
	"go.uber.org/multierr"

	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/logger"
)

// Format selects the decoder used by Parse
type Format int

const (
	// TOML decodes with go-toml
	TOML Format = iota
	// JSON5 decodes JSON5, a superset of JSON
	JSON5
)

// Appender types accepted in AppenderConfig.Type
const (
	TypeStdout = "stdout"
	TypeStderr = "stderr"
	TypeFile   = "file"
)

// Config is a set of logger definitions
type Config struct {
	Loggers []LoggerConfig `toml:"loggers" json:"loggers"`
}

// LoggerConfig defines one named logger. Empty fields leave the current
// setting of the logger unchanged; a nil Appenders list keeps the current
// appenders.
type LoggerConfig struct {
	Name      string           `toml:"name" json:"name"`
	Level     string           `toml:"level" json:"level"`
	Pattern   string           `toml:"pattern" json:"pattern"`
	Appenders []AppenderConfig `toml:"appenders" json:"appenders"`
}

// AppenderConfig defines one appender of a logger
type AppenderConfig struct {
	Type    string `toml:"type" json:"type"`
	Path    string `toml:"path" json:"path"`
	Level   string `toml:"level" json:"level"`
	Pattern string `toml:"pattern" json:"pattern"`
	Color   bool   `toml:"color" json:"color"`
}

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".json", ".json5":
		return JSON5, nil
	default:
		return 0, errors.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// Load reads and parses the file at path, choosing the decoder by extension
func Load(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return cfg, nil
}

// Parse decodes data and validates the result
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &cfg)
	case JSON5:
		err = json5.Unmarshal(data, &cfg)
	default:
		return nil, errors.Errorf("unknown config format %d", format)
	}
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks levels and appender definitions without touching any
// logger. Every problem found is reported.
func (c *Config) Validate() error {
	var err error
	for _, lc := range c.Loggers {
		where := loggerLabel(lc.Name)
		if lc.Level != "" {
			if _, perr := core.ParseLevel(lc.Level); perr != nil {
				err = multierr.Append(err, errors.Wrap(perr, where))
			}
		}
		for j, ac := range lc.Appenders {
			if aerr := ac.validate(); aerr != nil {
				err = multierr.Append(err, errors.Wrapf(aerr, "%s: appender %d", where, j))
			}
		}
	}
	return err
}

func (ac AppenderConfig) validate() error {
	switch ac.Type {
	case TypeStdout, TypeStderr:
	case TypeFile:
		if ac.Path == "" {
			return errors.New("file appender requires a path")
		}
	default:
		return errors.Errorf("unknown appender type %q", ac.Type)
	}
	if ac.Level != "" {
		if _, err := core.ParseLevel(ac.Level); err != nil {
			return err
		}
	}
	return nil
}

func loggerLabel(name string) string {
	if name == "" {
		return "logger " + logger.RootName
	}
	return "logger " + name
}
