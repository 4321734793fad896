// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"unties/core/output"
	uerrors "unties/internal/errors"
	"unties/internal/logging"
)

// MaxPrecision is the largest useful number of significant digits for a
// float64 magnitude
const MaxPrecision = 17

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Catalog selects the units available to expressions
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// CatalogConfig contains unit catalog settings
type CatalogConfig struct {
	// Standard loads the built-in SI catalog
	Standard bool `json:"standard" yaml:"standard"`

	// UnitFiles are HCL unit files or directories loaded after the
	// standard catalog
	UnitFiles []string `json:"unit_files,omitempty" yaml:"unit_files,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format (cli, json, markdown)
	Format string `json:"format" yaml:"format"`

	// Precision is the number of significant digits shown; negative keeps
	// the shortest exact representation
	Precision int `json:"precision" yaml:"precision"`

	// Indent is the JSON indentation
	Indent string `json:"indent,omitempty" yaml:"indent,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			Standard: true,
		},
		Output: OutputConfig{
			Format:    string(output.FormatCLI),
			Precision: -1,
			Indent:    "  ",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.unties.yaml
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".unties.yaml"
	}
	return filepath.Join(homeDir, ".unties.yaml")
}

// Load loads configuration from a JSON or YAML file, chosen by extension.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, uerrors.Config(fmt.Sprintf("failed to read %s", path), err)
	}

	cfg := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, uerrors.Config(fmt.Sprintf("failed to decode %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the output settings
func (c *Config) Validate() error {
	if _, err := output.NewFormatter(c.Output.Format); err != nil {
		return uerrors.Config("invalid output format", err)
	}
	if c.Output.Precision > MaxPrecision {
		return uerrors.Config(
			fmt.Sprintf("precision must be at most %d", MaxPrecision),
			uerrors.OutOfRange(c.Output.Precision, -1, MaxPrecision),
		)
	}
	return nil
}

// Save saves configuration to a file in the format its extension names
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

var (
	mu           sync.RWMutex
	globalConfig = Default()
)

// Get returns the global configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = config
}
