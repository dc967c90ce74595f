// Package config loads runtime settings from defaults, an optional YAML
// file, GHPROFILE_* environment variables and command-line flags, in that
// order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"ghprofile/internal/github"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	// BaseURL is the REST host profiles are fetched from, without trailing slash.
	BaseURL string `yaml:"base_url"`
	// User is the login fetched on startup.
	User string `yaml:"user"`
	// Timeout bounds each request. Zero disables it.
	Timeout time.Duration `yaml:"timeout"`
	// LogFile receives log output. Empty discards logs.
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL: github.DefaultBaseURL,
		User:    github.DefaultUser,
	}
}

// InitialLocator is the profile URL loaded when the view mounts.
func (c *Config) InitialLocator() string {
	return github.UserURL(c.BaseURL, c.User)
}

// Validate checks the configuration for values the program cannot run with.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base url is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// Load parses args (without the program name) and merges every source.
// An optional first positional argument overrides the startup user.
// getenv is usually os.Getenv; output receives usage text.
func Load(args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	var (
		path  string
		flags Config
	)
	fs := flag.NewFlagSet("ghprofile", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&path, "config", getenv("GHPROFILE_CONFIG"), "path to a YAML config file")
	fs.StringVar(&flags.BaseURL, "base-url", "", "REST API base URL (default "+github.DefaultBaseURL+")")
	fs.StringVar(&flags.User, "user", "", "login to show on startup (default "+github.DefaultUser+")")
	fs.DurationVar(&flags.Timeout, "timeout", 0, "per-request timeout, 0 for none")
	fs.StringVar(&flags.LogFile, "log-file", "", "write logs to this file")
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: ghprofile [flags] [user]\n\n")
		fmt.Fprintf(output, "Search GitHub users and view their profile card.\n\n")
		fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "base-url":
			cfg.BaseURL = flags.BaseURL
		case "user":
			cfg.User = flags.User
		case "timeout":
			cfg.Timeout = flags.Timeout
		case "log-file":
			cfg.LogFile = flags.LogFile
		}
	})
	if fs.NArg() > 0 {
		cfg.User = fs.Arg(0)
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile overlays values present in the YAML file at path.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("GHPROFILE_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := getenv("GHPROFILE_USER"); v != "" {
		c.User = v
	}
	if v := getenv("GHPROFILE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GHPROFILE_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := getenv("GHPROFILE_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	return nil
}
