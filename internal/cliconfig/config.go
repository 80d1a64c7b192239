package cliconfig

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bft-labs/slackweb/pkg/api"
	"github.com/bft-labs/slackweb/pkg/log"
)

// Config holds CLI configuration for slackweb.
type Config struct {
	Token     string        `json:"token"`
	BaseURL   string        `json:"base_url"`
	Timeout   time.Duration `json:"timeout"`
	UserAgent string        `json:"user_agent,omitempty"`
	LogLevel  string        `json:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		BaseURL:  api.DefaultBaseURL,
		Timeout:  30 * time.Second,
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("token is required (set --token, SLACK_API_TOKEN or token in the config file)")
	}

	if c.BaseURL == "" {
		c.BaseURL = api.DefaultBaseURL
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("base-url %q must be an absolute URL", c.BaseURL)
	}

	// Method names are appended directly.
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}

	return nil
}

// Masked returns a copy safe to log.
func (c Config) Masked() Config {
	c.Token = log.RedactString(c.Token)
	return c
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}
