package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/pkg/cache"
)

// Accepted log settings
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"json", "text"}
)

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Config is the complete tool configuration
type Config struct {
	// Directories are searched in order for metadata documents.
	Directories []string     `json:"directories" yaml:"directories"`
	Cache       cache.Config `json:"cache" yaml:"cache"`
	Log         LogConfig    `json:"log" yaml:"log"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Directories: []string{},
		Cache:       cache.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	for i, dir := range c.Directories {
		if dir == "" {
			return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
				fmt.Sprintf("directories[%d] is empty", i))
		}
	}

	if !slices.Contains(LogLevels, c.Log.Level) {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			fmt.Sprintf("unknown log level %q", c.Log.Level))
	}
	if !slices.Contains(LogFormats, c.Log.Format) {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			fmt.Sprintf("unknown log format %q", c.Log.Format))
	}

	if err := c.Cache.Validate(); err != nil {
		return errors.Wrap(err, "Config", "Validate", "cache")
	}
	return nil
}

// AbsDirectories returns Directories with relative entries resolved against
// the working directory
func (c *Config) AbsDirectories() ([]string, error) {
	dirs := make([]string, 0, len(c.Directories))
	for _, dir := range c.Directories {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, errors.WrapInvalid(err, "Config", "AbsDirectories", fmt.Sprintf("resolve %s", dir))
		}
		dirs = append(dirs, abs)
	}
	return dirs, nil
}

// String renders the configuration as YAML
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(data)
}
