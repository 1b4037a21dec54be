package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Batch failure policies
const (
	OnErrorAbort = "abort"
	OnErrorSkip  = "skip"
)

// Config is the on-disk configuration shape (YAML).
// Every key is optional; zero values are replaced by Defaults.
type Config struct {
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Workers int    `yaml:"workers"`
	OnError string `yaml:"on_error"`

	// Lightweight concrete modifier used when the table has no lambda_c column
	DefaultLambda float64 `yaml:"default_lambda"`

	// Decimal places written to the output table, -1 for shortest exact form
	Precision *int `yaml:"precision"`

	Transpose bool   `yaml:"transpose"`
	Detail    bool   `yaml:"detail"`
	Chart     string `yaml:"chart"`
	Report    string `yaml:"report"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Defaults returns the configuration used when no file is given
func Defaults() *Config {
	precision := -1
	return &Config{
		Input:         "inputs.csv",
		Output:        "outputs.csv",
		Workers:       1,
		OnError:       OnErrorAbort,
		DefaultLambda: 1.0,
		Precision:     &precision,
		Server:        ServerConfig{Addr: ":8080"},
	}
}

// Load reads a YAML config, fills in defaults and validates it.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Defaults(), nil
	}
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// LoadUnchecked loads the config file without defaults or validation
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	d := Defaults()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Workers == 0 {
		c.Workers = d.Workers
	}
	if c.OnError == "" {
		c.OnError = d.OnError
	}
	if c.DefaultLambda == 0 {
		c.DefaultLambda = d.DefaultLambda
	}
	if c.Precision == nil {
		c.Precision = d.Precision
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.OnError != OnErrorAbort && c.OnError != OnErrorSkip {
		return fmt.Errorf("on_error must be %q or %q, got %q", OnErrorAbort, OnErrorSkip, c.OnError)
	}
	if c.DefaultLambda <= 0 {
		return fmt.Errorf("default_lambda must be positive, got %g", c.DefaultLambda)
	}
	if c.Precision != nil && *c.Precision < -1 {
		return fmt.Errorf("precision must be -1 or greater, got %d", *c.Precision)
	}
	return nil
}
