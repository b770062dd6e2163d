package main

import (
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pebsconsulting/createphp/config"
	"github.com/pebsconsulting/createphp/errors"
)

// cliOptions holds the persistent command line flags
type cliOptions struct {
	configPath  string
	directories []string
	logLevel    string
	logFormat   string
}

func (o *cliOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c",
		getEnv("RDFMETA_CONFIG", ""),
		"Path to a JSON or YAML configuration file (env: RDFMETA_CONFIG)")
	flags.StringArrayVarP(&o.directories, "dir", "d", nil,
		"Metadata directory, repeat in precedence order (replaces configured directories)")
	flags.StringVar(&o.logLevel, "log-level", "",
		"Log level: debug, info, warn, error (env: RDFMETA_LOG_LEVEL)")
	flags.StringVar(&o.logFormat, "log-format", "",
		"Log format: json, text (env: RDFMETA_LOG_FORMAT)")
}

// loadConfig layers the configuration file, the environment and the flags.
// Directories are made absolute; at least one is required when requireDirs is set.
func (o *cliOptions) loadConfig(requireDirs bool) (*config.Config, error) {
	loader := config.NewLoader()
	if o.configPath != "" {
		loader.AddLayer(o.configPath)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if len(o.directories) > 0 {
		cfg.Directories = slices.Clone(o.directories)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if requireDirs && len(cfg.Directories) == 0 {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "cli", "loadConfig",
			"no metadata directories, use --dir, a config file or RDFMETA_DIRECTORIES")
	}

	dirs, err := cfg.AbsDirectories()
	if err != nil {
		return nil, err
	}
	cfg.Directories = dirs
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
