// Package config loads the optional noviq.yaml runtime configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"go.creack.net/noviq/executor"
)

// DefaultPath is looked up in the working directory when no path is given.
const DefaultPath = "noviq.yaml"

type Config struct {
	// Builtin is the name the output builtin is registered under.
	Builtin string `yaml:"builtin"`
	// Extension is the required source file extension. Empty disables the check.
	Extension string `yaml:"extension"`
	// History is the REPL history file, relative to the home directory.
	History string `yaml:"history"`
}

func Default() Config {
	return Config{
		Builtin:   executor.BuiltinPrint,
		Extension: ".nvq",
		History:   ".noviq_history",
	}
}

// Load reads the configuration at path over the defaults. An empty path
// means DefaultPath, which may be absent.
func Load(path string) (Config, error) {
	optional := path == ""
	if optional {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }() // Best effort.

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Builtin {
	case executor.BuiltinPrint, executor.BuiltinLog:
	default:
		return fmt.Errorf("unsupported builtin %q, want %q or %q", c.Builtin, executor.BuiltinPrint, executor.BuiltinLog)
	}
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}
	return nil
}

// Options returns the interpreter options the configuration implies.
func (c Config) Options() []executor.Option {
	return []executor.Option{executor.WithOutputBuiltin(c.Builtin)}
}
