// Package config loads the launcher's settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the launcher configuration, read from ~/.skit/config.yaml by
// default. All fields are optional; zero values mean built-in defaults.
type Config struct {
	// ScriptsDir is where relative script paths resolve from.
	ScriptsDir string `yaml:"scriptsDir"`

	// Runtimes overrides the runtime binary names. Overriding a binary
	// never changes the fallback ordering.
	Runtimes RuntimeConfig `yaml:"runtimes"`

	// ExtraEnv names additional environment variables to pass through the
	// scrubbed environment, on top of the built-in allow list.
	ExtraEnv []string `yaml:"extraEnv"`

	// EnvFile points at a dotenv-style file whose values are exported to
	// spawned scripts.
	EnvFile string `yaml:"envFile"`

	// LogLevel sets the default log level: debug, info, warn or error.
	LogLevel string `yaml:"logLevel"`

	// resolved env file values, populated by Load.
	fileEnv map[string]string
}

// RuntimeConfig names the runtime binaries.
type RuntimeConfig struct {
	Bun  string `yaml:"bun"`
	Node string `yaml:"node"`
}

// DefaultPath returns the conventional config location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skit", "config.yaml")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Runtimes: RuntimeConfig{Bun: "bun", Node: "node"},
		LogLevel: "info",
	}
}

func (c *Config) applyDefaults() {
	if c.Runtimes.Bun == "" {
		c.Runtimes.Bun = "bun"
	}
	if c.Runtimes.Node == "" {
		c.Runtimes.Node = "node"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logLevel %q", c.LogLevel)
	}
	for _, key := range c.ExtraEnv {
		if key == "" {
			return fmt.Errorf("extraEnv entries must not be empty")
		}
	}
	return nil
}

// FileEnv returns the values loaded from EnvFile, if any.
func (c *Config) FileEnv() map[string]string {
	return c.fileEnv
}
