package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/emiliopalmerini/aidash/internal/util"
)

const (
	envPrefix  = "AIDASH_"
	envConfig  = "AIDASH_CONFIG"
	envNesting = "__"

	defaultConfigFile = "config.yaml"
)

// Load builds a Config by layering defaults, an optional YAML file and env
// vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file at path, else $AIDASH_CONFIG, else $XDG_CONFIG_HOME/aidash/config.yaml
//     when that file exists
//  3. env (prefix AIDASH_, "__" separates nested keys:
//     AIDASH_SOURCE__RESPONSES_PATH -> source.responses_path)
func Load(path string) (*Config, error) {
	base := New()
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, envNesting, ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfigPath() string {
	dir, err := util.GetXDGConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, defaultConfigFile)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Validate checks the fields the dashboard cannot start without.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.Source.Driver {
	case DriverCSV:
		if c.Source.ResponsesPath == "" || c.Source.CapabilitiesPath == "" {
			return fmt.Errorf("%w: both table paths are required", ErrInvalidConfig)
		}
		if utf8.RuneCountInString(c.Source.Delimiter) != 1 {
			return fmt.Errorf("%w: delimiter must be a single character, got %q", ErrInvalidConfig, c.Source.Delimiter)
		}
	case DriverLibSQL:
		if c.Source.DatabaseURL == "" {
			return fmt.Errorf("%w: source.database_url is required for the libsql driver", ErrInvalidConfig)
		}
		if c.Source.ResponsesTable == "" || c.Source.CapabilitiesTable == "" {
			return fmt.Errorf("%w: both table names are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown source driver %q", ErrInvalidConfig, c.Source.Driver)
	}
	if c.OTEL.Enabled && c.OTEL.Endpoint == "" {
		return fmt.Errorf("%w: otel.endpoint is required when otel is enabled", ErrInvalidConfig)
	}
	return nil
}
