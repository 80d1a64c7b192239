package cliconfig

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	env "github.com/netflix/go-env"
)

// EnvConfig is the environment-variable view of Config. The token uses the
// conventional SLACK_API_TOKEN name so existing shells keep working.
type EnvConfig struct {
	Token     string `env:"SLACK_API_TOKEN"`
	BaseURL   string `env:"SLACKWEB_BASE_URL"`
	Timeout   string `env:"SLACKWEB_TIMEOUT"`
	UserAgent string `env:"SLACKWEB_USER_AGENT"`
	LogLevel  string `env:"SLACKWEB_LOG_LEVEL"`
}

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// LoadEnvConfig reads EnvConfig from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	var ec EnvConfig
	if _, err := env.UnmarshalFromEnviron(&ec); err != nil {
		return ec, err
	}
	return ec, nil
}

// ApplyEnvConfig applies configuration from environment variables.
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	ec, err := LoadEnvConfig()
	if err != nil {
		return err
	}

	s := newConfigSetter(changed)

	s.setString("token", ec.Token, &cfg.Token)
	s.setString("base-url", ec.BaseURL, &cfg.BaseURL)
	s.setString("user-agent", ec.UserAgent, &cfg.UserAgent)
	s.setString("log-level", ec.LogLevel, &cfg.LogLevel)

	return s.setDuration("timeout", ec.Timeout, &cfg.Timeout)
}
