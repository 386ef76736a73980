// Package config loads and saves the golia.json project configuration.
package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"

	goliaerr "github.com/golia-dev/golia/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "golia.json"

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultPort is the default server port.
	DefaultPort = 8000

	// DefaultOutput is the default render output directory.
	DefaultOutput = "dist"
)

// Config represents the complete golia.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Host is the server bind host.
	Host string `json:"host,omitempty"`

	// Port is the server port.
	Port int `json:"port,omitempty"`

	// Output is the directory rendered documents are written to.
	Output string `json:"output,omitempty"`

	// Render contains rendering options.
	Render RenderConfig `json:"render,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// RenderConfig contains rendering options.
type RenderConfig struct {
	// MinifyCSS minifies embedded stylesheets in rendered output.
	MinifyCSS bool `json:"minifyCss,omitempty"`
}

// PublishConfig contains S3 publishing configuration.
type PublishConfig struct {
	// Bucket is the target S3 bucket name.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix for published documents.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Host:   DefaultHost,
		Port:   DefaultPort,
		Output: DefaultOutput,
	}
}

// Load reads a configuration file from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goliaerr.Wrap("E100", err)
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, goliaerr.Wrap("E101", err).
			WithSuggestion("check " + path + " for JSON syntax errors")
	}
	cfg.applyDefaults()
	cfg.configPath = path
	return cfg, nil
}

// LoadFromWorkingDir searches the working directory and its parents
// for golia.json. When none is found, defaults are returned.
func LoadFromWorkingDir() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// applyDefaults fills in defaults for unset fields.
func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// Addr returns the host:port address for the server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Path returns the path the config was loaded from, if any.
func (c *Config) Path() string {
	return c.configPath
}

// Save writes the configuration to path as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
