package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"

	"github.com/tolvera-labs/tolvera-sketch/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyInitPath     = "init.path"
	KeyInitTemplate = "init.template"
	KeyInitManifest = "init.manifest"
	KeyPython       = "python"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
)

// DefaultPython is the Python constraint written into generated manifests.
const DefaultPython = "^3.11"

var defaults = map[string]any{
	KeyInitPath:     "",
	KeyInitTemplate: true,
	KeyInitManifest: true,
	KeyPython:       DefaultPython,
	KeyLogLevel:     "warn",
	KeyLogFormat:    "text",
}

// Config wraps a Viper instance bound to the config file and environment.
type Config struct {
	v    *viper.Viper
	path string
}

// Dir returns the config directory. TOLVERA_HOME wins over ~/.tolvera.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads the config file (a missing file is fine) and binds the
// environment.
func Load() (*Config, error) {
	return LoadFile(FilePath())
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return &Config{v: v, path: path}, nil
}

// Path returns the file this config reads from and writes to.
func (c *Config) Path() string { return c.path }

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Set validates and writes a key-value pair, then saves the config file.
func (c *Config) Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := validate(key, value); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write from a file-only view so env overrides and defaults stay out of
	// the saved file.
	file := viper.New()
	file.SetConfigFile(c.path)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file %s: %w", c.path, err)
		}
	}
	file.Set(key, value)
	if err := file.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	c.v.Set(key, value)
	return nil
}

// InitPath returns the default target directory for new sketchbooks.
func (c *Config) InitPath() string { return c.v.GetString(KeyInitPath) }

// InitTemplate reports whether init writes template files by default.
func (c *Config) InitTemplate() bool { return c.v.GetBool(KeyInitTemplate) }

// InitManifest reports whether init writes pyproject.toml by default.
func (c *Config) InitManifest() bool { return c.v.GetBool(KeyInitManifest) }

// Python returns the Python version constraint for generated manifests.
func (c *Config) Python() string { return c.v.GetString(KeyPython) }

// LogLevel returns the configured slog level name.
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// LogFormat returns the configured log format ("text" or "json").
func (c *Config) LogFormat() string { return c.v.GetString(KeyLogFormat) }

// Keys returns every known config key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is a recognised config key.
func IsKnownKey(key string) bool {
	_, ok := defaults[key]
	return ok
}

// ValidatePython checks that s parses as a version constraint.
func ValidatePython(s string) error {
	if _, err := semver.NewConstraint(s); err != nil {
		return fmt.Errorf("invalid python constraint %q: %w", s, err)
	}
	return nil
}

func validate(key, value string) error {
	switch key {
	case KeyInitTemplate, KeyInitManifest:
		if value != "true" && value != "false" {
			return fmt.Errorf("%s must be 'true' or 'false', got %q", key, value)
		}
	case KeyPython:
		return ValidatePython(value)
	case KeyLogLevel:
		switch value {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("%s must be one of debug, info, warn, error; got %q", key, value)
		}
	case KeyLogFormat:
		if value != "text" && value != "json" {
			return fmt.Errorf("%s must be 'text' or 'json', got %q", key, value)
		}
	}
	return nil
}
