// Package completionconfig loads the settings of the completion engine from
// a YAML file.
package completionconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/drogan2233/movecomplete/pkg/completion"
)

// Config holds the engine settings.  Fields omitted from the file keep their
// defaults.
type Config struct {
	// MaxChainLength bounds the number of entries after the leading segment.
	MaxChainLength int `yaml:"max_chain_length"`
	// PrimitiveTypes are offered first in type position.
	PrimitiveTypes []string `yaml:"primitive_types"`
	// HiddenModules are doublestar patterns matched against "0x1::m" and
	// "std::m" forms of module names.
	HiddenModules []string `yaml:"hidden_modules,omitempty"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxChainLength: completion.DefaultMaxChainLength,
		PrimitiveTypes: append([]string(nil), completion.DefaultPrimitiveTypes...),
		LogLevel:       zerolog.InfoLevel.String(),
	}
}

// Load reads and validates the configuration file.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Parse decodes and validates YAML configuration data.  Unknown keys are an
// error.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxChainLength < 0 {
		return fmt.Errorf("max_chain_length must not be negative: %d", c.MaxChainLength)
	}
	for _, prim := range c.PrimitiveTypes {
		if prim == "" {
			return errors.New("primitive_types: empty type name")
		}
	}
	for _, pattern := range c.HiddenModules {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("hidden_modules: invalid pattern %q", pattern)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.  An empty level means info.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Options converts the configuration to engine options.
func (c *Config) Options(logger zerolog.Logger) []completion.EngineOption {
	return []completion.EngineOption{
		completion.WithLogger(logger),
		completion.WithMaxChainLength(c.MaxChainLength),
		completion.WithPrimitiveTypes(c.PrimitiveTypes),
		completion.WithHiddenModules(c.HiddenModules),
	}
}
