package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAutoplayMs          = 5000
	DefaultTransitionMs        = 500
	DefaultTestimonialsPerPage = 3
	DefaultLogLevel            = "info"
)

// Config holds CLI configuration stored at ~/.skyline/config.
type Config struct {
	StorePath           string `yaml:"store_path"`
	LogPath             string `yaml:"log_path"`
	LogLevel            string `yaml:"log_level"`
	AutoplayMs          int    `yaml:"autoplay_ms"`
	TransitionMs        int    `yaml:"transition_ms"`
	TestimonialsPerPage int    `yaml:"testimonials_per_page"`
	VimKeys             bool   `yaml:"vim_keys"`
}

// Dir returns the directory holding config, database and logs.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".skyline")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.normalize()
	return cfg
}

// Load reads and parses the config file. Returns error if missing or insecure.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}
	// WriteFile keeps the mode of an existing file.
	return os.Chmod(path, 0600)
}

// Autoplay returns the carousel autoplay period.
func (c *Config) Autoplay() time.Duration {
	return time.Duration(c.AutoplayMs) * time.Millisecond
}

// Transition returns the carousel transition-lock window.
func (c *Config) Transition() time.Duration {
	return time.Duration(c.TransitionMs) * time.Millisecond
}

func (c *Config) normalize() {
	if c.StorePath == "" {
		c.StorePath = filepath.Join(Dir(), "skyline.db")
	}
	if c.LogPath == "" {
		c.LogPath = filepath.Join(Dir(), "skyline.log")
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.AutoplayMs <= 0 {
		c.AutoplayMs = DefaultAutoplayMs
	}
	if c.TransitionMs <= 0 {
		c.TransitionMs = DefaultTransitionMs
	}
	if c.TestimonialsPerPage <= 0 {
		c.TestimonialsPerPage = DefaultTestimonialsPerPage
	}
}
