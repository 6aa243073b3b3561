package config

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// Logging selects the log level and output format.
type Logging struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Window describes the host surface.
type Window struct {
	Width  int    `yaml:"width" mapstructure:"width"`
	Height int    `yaml:"height" mapstructure:"height"`
	TPS    int    `yaml:"tps" mapstructure:"tps"`
	Title  string `yaml:"title" mapstructure:"title"`
}

// Scene selects the registered scene and its tunables. Params uses the same
// flag-style keys the scene factories accept.
type Scene struct {
	Name       string            `yaml:"name" mapstructure:"name"`
	Seed       int64             `yaml:"seed" mapstructure:"seed"`
	MaxDeltaMs int               `yaml:"max_delta_ms" mapstructure:"max_delta_ms"`
	Params     map[string]string `yaml:"params" mapstructure:"params"`
}

// Config represents the application configuration
type Config struct {
	Logging Logging `yaml:"logging" mapstructure:"logging"`
	Window  Window  `yaml:"window" mapstructure:"window"`
	Scene   Scene   `yaml:"scene" mapstructure:"scene"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: Logging{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Window: Window{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			TPS:    DefaultTPS,
			Title:  DefaultTitle,
		},
		Scene: Scene{
			Name:       DefaultScene,
			Seed:       DefaultSeed,
			MaxDeltaMs: DefaultMaxDeltaMs,
			Params:     map[string]string{},
		},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("%w: %w", ErrFailedToReadConfig, err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseConfig, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseConfig, err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// ApplyDefaults fills zero values left by a partial file
func (c *Config) ApplyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}

	if c.Window.TPS == 0 {
		c.Window.TPS = DefaultTPS
	}

	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}

	if c.Scene.Name == "" {
		c.Scene.Name = DefaultScene
	}

	if c.Scene.Params == nil {
		c.Scene.Params = map[string]string{}
	}
}

// Validate checks the configuration for values no host can run with
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.Logging.Format)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.Window.TPS)
	}

	if c.Scene.MaxDeltaMs < 0 {
		return fmt.Errorf("max_delta_ms must not be negative, got %d", c.Scene.MaxDeltaMs)
	}

	return nil
}

// ApplyOverrides merges key=value pairs into the scene params
func (c *Config) ApplyOverrides(pairs []string) error {
	if c.Scene.Params == nil {
		c.Scene.Params = map[string]string{}
	}

	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("%w: %q", ErrInvalidOverride, kv)
		}

		c.Scene.Params[strings.ToLower(key)] = strings.TrimSpace(value)
	}

	return nil
}

// SceneOptions returns the flag-style map handed to the scene factory. The
// window size and seed fill in keys the params leave unset.
func (c *Config) SceneOptions() map[string]string {
	opts := maps.Clone(c.Scene.Params)
	if opts == nil {
		opts = map[string]string{}
	}

	if _, ok := opts["w"]; !ok {
		opts["w"] = strconv.Itoa(c.Window.Width)
	}

	if _, ok := opts["h"]; !ok {
		opts["h"] = strconv.Itoa(c.Window.Height)
	}

	if _, ok := opts["seed"]; !ok && c.Scene.Seed != 0 {
		opts["seed"] = strconv.FormatInt(c.Scene.Seed, 10)
	}

	return opts
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
