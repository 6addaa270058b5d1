// Package config loads nav.yml, the runtime configuration for the navigator
// front end: handler identity, traversal modes, the dataset path, and
// free-form extension sections (logging, theme) other packages decode on
// demand.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/nav/errors"
	"github.com/grovetools/nav/paths"
)

// Config is the nav.yml document.
type Config struct {
	// Version of the configuration format (e.g. "1.0").
	Version string `yaml:"version" toml:"version"`

	// Handler is the identity recorded on items this actor opens. An opaque
	// string; no authentication is performed.
	Handler string `yaml:"handler,omitempty" toml:"handler,omitempty"`

	// Dataset is the path to the work-item dataset file (YAML, JSON, or TOML).
	Dataset string `yaml:"dataset,omitempty" toml:"dataset,omitempty"`

	// GroupNavigation allows single-step item moves to cross group boundaries.
	GroupNavigation bool `yaml:"group_navigation,omitempty" toml:"group_navigation,omitempty"`

	// AutoAdvance enables claim-and-advance traversal semantics.
	AutoAdvance bool `yaml:"auto_advance,omitempty" toml:"auto_advance,omitempty"`

	// Extensions captures all other top-level keys for extensibility
	// (e.g. the "logging" section).
	Extensions map[string]interface{} `yaml:",inline" toml:"-"`
}

// SetDefaults fills in defaults for unset fields.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Handler == "" {
		c.Handler = os.Getenv("USER")
	}
}

// Validate checks the configuration for basic consistency.
func (c *Config) Validate() error {
	if c.Handler == "" {
		return errors.ConfigInvalid("handler must not be empty (set it in nav.yml or via --handler)")
	}
	return nil
}

// UnmarshalExtension decodes a free-form extension section into a typed
// struct. A missing key is not an error; the target simply stays zero-valued.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	// Decode the generic map into the strongly-typed target, reusing the
	// yaml tag names for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// Load reads and parses a configuration file. The encoding is chosen by file
// extension: .toml is TOML, everything else is YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file").
				WithDetail("path", path)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file").
				WithDetail("path", path)
		}
	}

	cfg.SetDefaults()
	return &cfg, nil
}

// LoadDefault finds and loads the configuration starting from the current
// working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	path, err := FindConfigFile(cwd)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// FindConfigFile searches for a nav config file from startDir up to the
// filesystem root, then in the XDG config directory.
func FindConfigFile(startDir string) (string, error) {
	configNames := []string{
		"nav.yml",
		"nav.yaml",
		".nav.yml",
		".nav.yaml",
		"nav.toml",
	}

	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if xdg := xdgConfigPath(); xdg != "" {
		if info, err := os.Stat(xdg); err == nil && !info.IsDir() {
			return xdg, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

func xdgConfigPath() string {
	dir := paths.ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "nav.yml")
}
