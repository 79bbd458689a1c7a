// Package config provides configuration management for hubsh
package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFileName is the name of the config file (without extension)
	DefaultConfigFileName = ".hubsh"
	// DefaultConfigFileType is the config file extension
	DefaultConfigFileType = "yaml"
)

// Config holds all application configuration
type Config struct {
	// Global flags
	Verbose bool `yaml:"verbose"`

	// Shell presentation
	Pager string `yaml:"pager"`
	Color string `yaml:"color"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Verbose: false,
		Pager:   "",
		Color:   "auto",
	}
}

// ColorEnabled reports whether output should be styled, given whether
// stdout is a terminal. "always" and "never" override detection;
// anything else behaves like "auto".
func (c *Config) ColorEnabled(tty bool) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return tty
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultConfigFileName+"."+DefaultConfigFileType), nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	path, err := GetConfigFilePath()
	if err != nil {
		return err
	}

	// Check if config file already exists
	if _, err := os.Stat(path); err == nil {
		return nil // File exists
	} else if !os.IsNotExist(err) {
		return err // Some other error
	}

	// Create default config
	cfg := DefaultConfig()
	return cfg.SaveTo(path)
}

// LoadFrom loads configuration from a file
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveTo saves configuration to a file with secure permissions
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write with secure permissions (0600 = owner read/write only)
	return os.WriteFile(path, data, 0600)
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	path, err := GetConfigFilePath()
	if err != nil {
		return nil, err
	}

	return LoadFrom(path)
}
