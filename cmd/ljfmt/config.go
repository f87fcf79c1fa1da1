package main

import (
	"fmt"
	"os"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of ljfmt.
type Config struct {
	Indent   int    `yaml:"indent"`
	KeyCase  string `yaml:"key_case"`
	Comments bool   `yaml:"comments"`
	Debug    bool   `yaml:"debug"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Indent:  2,
		KeyCase: "none",
	}
}

// LoadConfig loads configuration from a YAML file. Fields not set in the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports an error if c is not usable.
func (c *Config) Validate() error {
	if c.Indent < 0 {
		return fmt.Errorf("%w: %d", ErrNegIndent, c.Indent)
	}
	if _, err := keyCaseFunc(c.KeyCase); err != nil {
		return err
	}
	return nil
}

// keyCaseFunc returns the function that rewrites object keys for the named
// case, or nil if keys are left unchanged.
func keyCaseFunc(name string) (func(string) string, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "snake":
		return strcase.ToSnake, nil
	case "kebab":
		return strcase.ToKebab, nil
	case "camel":
		return strcase.ToCamel, nil
	case "lower_camel":
		return strcase.ToLowerCamel, nil
	}
	return nil, fmt.Errorf("%w %q", ErrKeyCase, name)
}
