package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up next to the working directory
// when no explicit file is given.
const DefaultFileName = "scenegridgo.yaml"

// Config holds all the settings an App instance needs to run.
type Config struct {
	// ProjectPath points at a .xml project file or a directory of .hcl
	// scene files.
	ProjectPath string `yaml:"project"`

	// OutputDir receives the compiled graph manifest and generated scripts.
	OutputDir string `yaml:"output"`

	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`

	// TickRate is the preview simulation frame duration in seconds.
	TickRate float64 `yaml:"tick_rate"`

	// PreviewTicks is how many frames a -preview run simulates.
	PreviewTicks int `yaml:"preview_ticks"`

	Watch   bool `yaml:"watch"`
	Preview bool `yaml:"preview"`
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		OutputDir:    "out",
		LogFormat:    "text",
		LogLevel:     "info",
		TickRate:     1.0 / 60,
		PreviewTicks: 600,
	}
}

// LoadFile overlays the YAML file at path onto c. A missing file is not an
// error; a present but unparseable one is.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if c.ProjectPath == "" {
		return errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %v", c.TickRate)
	}
	if c.PreviewTicks < 0 {
		return fmt.Errorf("preview ticks must be >= 0, got %d", c.PreviewTicks)
	}
	return nil
}
