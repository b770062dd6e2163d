package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/pkg/cache"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "RDFMETA"

// Loader handles configuration loading with layers and overrides
type Loader struct {
	layers     []string
	validation bool
	envPrefix  string
}

// NewLoader creates a loader with no layers and validation disabled
func NewLoader() *Loader {
	return &Loader{
		layers:    []string{},
		envPrefix: EnvPrefix,
	}
}

// AddLayer adds a configuration file layer
func (l *Loader) AddLayer(path string) {
	l.layers = append(l.layers, path)
}

// EnableValidation enables or disables validation of the loaded configuration
func (l *Loader) EnableValidation(enable bool) {
	l.validation = enable
}

// LoadFile loads configuration from a single file
func (l *Loader) LoadFile(path string) (*Config, error) {
	l.layers = []string{path}
	return l.Load()
}

// Load merges the defaults, every layer and the environment overrides
func (l *Loader) Load() (*Config, error) {
	merged, err := toMap(Default())
	if err != nil {
		return nil, errors.WrapFatal(err, "Loader", "Load", "encode defaults")
	}

	for _, path := range l.layers {
		layer, err := l.loadLayer(path)
		if err != nil {
			return nil, errors.WrapInvalid(err, "Loader", "Load", fmt.Sprintf("load %s", path))
		}
		merged = deepMergeMaps(merged, layer)
	}

	cfg, err := fromMap(merged)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "Load", "decode merged configuration")
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "Load", "apply environment overrides")
	}

	if l.validation {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// loadLayer reads one file into a generic map. Relative directories are
// resolved against the directory of the file.
func (l *Loader) loadLayer(path string) (map[string]any, error) {
	data, err := safeReadFile(path)
	if err != nil {
		return nil, err
	}

	format, err := configFormat(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	switch format {
	case "json":
		if err := validateJSONDepth(data); err != nil {
			return nil, fmt.Errorf("invalid JSON structure: %w", err)
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrParsingFailed, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrParsingFailed, err)
		}
	}

	if dirs, ok := raw["directories"].([]any); ok {
		base, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return nil, err
		}
		for i, dir := range dirs {
			if s, ok := dir.(string); ok && s != "" && !filepath.IsAbs(s) {
				dirs[i] = filepath.Join(base, s)
			}
		}
	}
	return raw, nil
}

// applyEnvOverrides applies PREFIX_* environment variables
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	lookup := func(name string) (string, bool, error) {
		key := l.envPrefix + "_" + name
		val, ok := os.LookupEnv(key)
		if !ok || val == "" {
			return "", false, nil
		}
		if err := validateEnvVar(key, val); err != nil {
			return "", false, err
		}
		return val, true, nil
	}

	if val, ok, err := lookup("DIRECTORIES"); err != nil {
		return err
	} else if ok {
		cfg.Directories = filepath.SplitList(val)
	}

	if val, ok, err := lookup("LOG_LEVEL"); err != nil {
		return err
	} else if ok {
		cfg.Log.Level = val
	}

	if val, ok, err := lookup("LOG_FORMAT"); err != nil {
		return err
	} else if ok {
		cfg.Log.Format = val
	}

	if val, ok, err := lookup("CACHE_ENABLED"); err != nil {
		return err
	} else if ok {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%s_CACHE_ENABLED: %w", l.envPrefix, errors.ErrInvalidConfig)
		}
		cfg.Cache.Enabled = enabled
	}

	if val, ok, err := lookup("CACHE_STRATEGY"); err != nil {
		return err
	} else if ok {
		cfg.Cache.Strategy = cache.Strategy(val)
	}

	if val, ok, err := lookup("CACHE_MAX_SIZE"); err != nil {
		return err
	} else if ok {
		size, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%s_CACHE_MAX_SIZE %q is not an integer: %w", l.envPrefix, val, errors.ErrInvalidConfig)
		}
		cfg.Cache.MaxSize = size
	}

	return nil
}

// deepMergeMaps recursively merges two maps, with override taking precedence
func deepMergeMaps(base, override map[string]any) map[string]any {
	result := make(map[string]any, len(base))
	for k, v := range base {
		result[k] = v
	}

	for k, v := range override {
		if v == nil {
			continue
		}
		if baseMap, ok := base[k].(map[string]any); ok {
			if overrideMap, ok := v.(map[string]any); ok {
				result[k] = deepMergeMaps(baseMap, overrideMap)
				continue
			}
		}
		result[k] = v
	}
	return result
}

func toMap(cfg *Config) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromMap(m map[string]any) (*Config, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
