package main

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/fwojciec/atelier/site"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI configuration.
type Config struct {
	APIURL    string           `yaml:"api_url"`
	SiteURL   string           `yaml:"site_url"`
	DBPath    string           `yaml:"db_path"`
	Timeout   time.Duration    `yaml:"timeout"`
	RateLimit float64          `yaml:"rate_limit"`
	Retry     site.RetryConfig `yaml:"retry"`
}

func (c *Config) defaults() {
	if c.APIURL == "" {
		c.APIURL = "http://localhost:5000/api"
	}
	if c.SiteURL == "" {
		c.SiteURL = "http://localhost:3000"
	}
	if c.DBPath == "" {
		c.DBPath = defaultDBPath()
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.Retry.Delay <= 0 {
		c.Retry.Delay = 500 * time.Millisecond
	}
	if c.Retry.MaxRetries <= 0 {
		c.Retry.MaxRetries = 2
	}
}

// LoadConfig reads a YAML config file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	cfg.defaults()
	return cfg, nil
}

// Override applies command-line flags and their environment variables.
func (c *Config) Override(g Globals) {
	if g.APIURL != "" {
		c.APIURL = g.APIURL
	}
	if g.SiteURL != "" {
		c.SiteURL = g.SiteURL
	}
	if g.DB != "" {
		c.DBPath = g.DB
	}
	if g.NoRetry {
		c.Retry.Disabled = true
	}
}
