package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config drives one demo run.
type Config struct {
	Rows    int    `yaml:"rows"`
	Keys    int    `yaml:"keys"`
	Prefix  string `yaml:"prefix"`
	Format  string `yaml:"format"`
	TopK    int    `yaml:"topK"`
	Persist string `yaml:"persist"`
	Dir     string `yaml:"dir"`
	TableID string `yaml:"tableID"`
	Verbose bool   `yaml:"verbose"`
}

// Options are the command-line flags. Zero values leave the config file or
// defaults in place.
type Options struct {
	Config  string `short:"c" long:"config" description:"YAML config file"`
	Rows    int    `short:"r" long:"rows" description:"bucket count"`
	Keys    int    `short:"n" long:"keys" description:"number of generated keys"`
	Prefix  string `long:"prefix" description:"prefix for generated keys"`
	Format  string `short:"f" long:"format" description:"output format" choice:"text" choice:"dot" choice:"json" choice:"yaml" choice:"report"`
	TopK    int    `long:"top" description:"heaviest buckets listed by the report format"`
	Persist string `long:"persist" description:"snapshot encoding to write" choice:"json" choice:"yaml"`
	Dir     string `long:"dir" description:"snapshot directory"`
	TableID string `long:"id" description:"snapshot table ID"`
	Verbose bool   `short:"v" long:"verbose" description:"development logging"`
}

var validFormats = map[string]bool{"text": true, "dot": true, "json": true, "yaml": true, "report": true}

// DefaultConfig mirrors the classic demo: 20 buckets fed "0".."199".
func DefaultConfig() Config {
	return Config{
		Rows:    20,
		Keys:    200,
		Format:  "text",
		TopK:    5,
		Dir:     os.TempDir(),
		TableID: "demo",
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

// Apply overlays the flags that were set.
func (o Options) Apply(cfg Config) Config {
	if o.Rows != 0 {
		cfg.Rows = o.Rows
	}
	if o.Keys != 0 {
		cfg.Keys = o.Keys
	}
	if o.Prefix != "" {
		cfg.Prefix = o.Prefix
	}
	if o.Format != "" {
		cfg.Format = o.Format
	}
	if o.TopK != 0 {
		cfg.TopK = o.TopK
	}
	if o.Persist != "" {
		cfg.Persist = o.Persist
	}
	if o.Dir != "" {
		cfg.Dir = o.Dir
	}
	if o.TableID != "" {
		cfg.TableID = o.TableID
	}
	if o.Verbose {
		cfg.Verbose = true
	}
	return cfg
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs error
	if c.Rows <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("rows must be positive, got %d", c.Rows))
	}
	if c.Keys < 0 {
		errs = multierr.Append(errs, fmt.Errorf("keys must not be negative, got %d", c.Keys))
	}
	if !validFormats[c.Format] {
		errs = multierr.Append(errs, fmt.Errorf("unknown format %q", c.Format))
	}
	if c.TopK < 0 {
		errs = multierr.Append(errs, fmt.Errorf("top must not be negative, got %d", c.TopK))
	}
	switch c.Persist {
	case "", "json", "yaml":
	default:
		errs = multierr.Append(errs, fmt.Errorf("unknown persist encoding %q", c.Persist))
	}
	if c.Persist != "" && c.TableID == "" {
		errs = multierr.Append(errs, errors.New("persist requires a table ID"))
	}
	return errs
}
