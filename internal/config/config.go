// Package config loads mathdrill settings from defaults, an optional
// mathdrill.yaml, a .env file, MATHDRILL_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/mathdrill/internal/logging"
	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

// ErrInvalidConfig is returned by Load when the merged settings are unusable.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is prepended to every key to form its environment variable.
const EnvPrefix = "MATHDRILL"

// Keys.
const (
	KeyDB          = "db"
	KeyMinNumber   = "min_number"
	KeyMaxNumber   = "max_number"
	KeyMaxAttempts = "max_attempts"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
)

// Config is the merged configuration.
type Config struct {
	DB          string `mapstructure:"db"`
	MinNumber   int    `mapstructure:"min_number"`
	MaxNumber   int    `mapstructure:"max_number"`
	MaxAttempts int    `mapstructure:"max_attempts"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// Settings returns the operand range.
func (c *Config) Settings() problem.Settings {
	return problem.Settings{MinNumber: c.MinNumber, MaxNumber: c.MaxNumber}
}

// Generator returns the generator configuration.
func (c *Config) Generator() problemgen.Config {
	return problemgen.Config{MaxAttempts: c.MaxAttempts}
}

// Loader merges configuration sources. The zero value is not usable; call
// NewLoader.
type Loader struct {
	v           *viper.Viper
	configPaths []string
	envFiles    []string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths replaces the directories searched for mathdrill.yaml.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.configPaths = paths }
}

// WithEnvFiles replaces the .env files loaded before reading the
// environment. Missing files are skipped.
func WithEnvFiles(paths ...string) LoaderOption {
	return func(l *Loader) { l.envFiles = paths }
}

// NewLoader creates a Loader with the default search locations.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		v:           viper.New(),
		configPaths: defaultConfigPaths(),
		envFiles:    []string{".env"},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"db":           KeyDB,
	"min":          KeyMinNumber,
	"max":          KeyMaxNumber,
	"max-attempts": KeyMaxAttempts,
	"log-level":    KeyLogLevel,
	"log-format":   KeyLogFormat,
}

// BindFlags binds any of the known flags present in fs. Flags override
// every other source when set on the command line.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Load reads every source and returns the merged configuration.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadEnvFiles(); err != nil {
		return nil, err
	}

	v := l.v
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("mathdrill")
	v.SetConfigType("yaml")
	for _, p := range l.configPaths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFile returns the config file that was read, or "" if none.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

func setDefaults(v *viper.Viper) {
	defaults := problem.DefaultSettings()
	v.SetDefault(KeyDB, "")
	v.SetDefault(KeyMinNumber, defaults.MinNumber)
	v.SetDefault(KeyMaxNumber, defaults.MaxNumber)
	v.SetDefault(KeyMaxAttempts, problemgen.DefaultMaxAttempts)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatConsole)
}

func validate(cfg *Config) error {
	if err := cfg.Settings().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts must be positive, got %d", ErrInvalidConfig, cfg.MaxAttempts)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalidConfig, cfg.LogFormat)
	}
	return nil
}

func (l *Loader) loadEnvFiles() error {
	for _, path := range l.envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// defaultConfigPaths returns $XDG_CONFIG_HOME/mathdrill (or
// ~/.config/mathdrill) followed by the working directory.
func defaultConfigPaths() []string {
	var paths []string
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		paths = append(paths, filepath.Join(dir, "mathdrill"))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mathdrill"))
	}
	return append(paths, ".")
}
