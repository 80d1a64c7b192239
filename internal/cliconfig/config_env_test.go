package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"SLACK_API_TOKEN",
	"SLACKWEB_BASE_URL",
	"SLACKWEB_TIMEOUT",
	"SLACKWEB_USER_AGENT",
	"SLACKWEB_LOG_LEVEL",
}

// clearEnv blanks every variable ApplyEnvConfig reads for the test's duration.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all env vars",
			envVars: map[string]string{
				"SLACK_API_TOKEN":     "xoxb-env",
				"SLACKWEB_BASE_URL":   "http://localhost:1234/api/",
				"SLACKWEB_TIMEOUT":    "2s",
				"SLACKWEB_USER_AGENT": "env-agent",
				"SLACKWEB_LOG_LEVEL":  "debug",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				Token:     "xoxb-env",
				BaseURL:   "http://localhost:1234/api/",
				Timeout:   2 * time.Second,
				UserAgent: "env-agent",
				LogLevel:  "debug",
			},
		},
		{
			name:     "respects changed flags",
			envVars:  map[string]string{"SLACK_API_TOKEN": "xoxb-env"},
			changed:  map[string]bool{"token": true},
			initial:  Config{Token: "xoxb-flag"},
			expected: Config{Token: "xoxb-flag"},
		},
		{
			name:     "returns error for invalid duration",
			envVars:  map[string]string{"SLACKWEB_TIMEOUT": "not-a-duration"},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}

			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, ".env")

	content := "SLACK_API_TOKEN=xoxb-dotenv\nSLACKWEB_LOG_LEVEL=warn\n"
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create .env: %v", err)
	}

	// already set variables are not overridden
	t.Setenv("SLACKWEB_LOG_LEVEL", "error")
	t.Cleanup(func() { os.Unsetenv("SLACK_API_TOKEN") })
	os.Unsetenv("SLACK_API_TOKEN")

	if err := LoadDotEnv(p); err != nil {
		t.Fatalf("LoadDotEnv() unexpected error: %v", err)
	}

	if v := os.Getenv("SLACK_API_TOKEN"); v != "xoxb-dotenv" {
		t.Errorf("SLACK_API_TOKEN = %q, want xoxb-dotenv", v)
	}
	if v := os.Getenv("SLACKWEB_LOG_LEVEL"); v != "error" {
		t.Errorf("SLACKWEB_LOG_LEVEL = %q, want error", v)
	}

	if err := LoadDotEnv(filepath.Join(tmpDir, "missing.env")); err != nil {
		t.Errorf("LoadDotEnv() on a missing file: %v", err)
	}

	if err := LoadDotEnv(""); err != nil {
		t.Errorf(`LoadDotEnv("") unexpected error: %v`, err)
	}
}

// precedence order: CLI > env > file
func TestConfigPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("SLACK_API_TOKEN", "xoxb-env")
	t.Setenv("SLACKWEB_TIMEOUT", "7s")

	fileConf := FileConfig{
		Token:    "xoxb-file",
		Timeout:  "3s",
		LogLevel: "warn",
		BaseURL:  "http://file.example/api/",
	}

	changed := map[string]bool{"base-url": true}

	cfg := DefaultConfig()
	cfg.BaseURL = "http://cli.example/api/"

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.BaseURL != "http://cli.example/api/" {
		t.Errorf("BaseURL = %v, want CLI value", cfg.BaseURL)
	}
	if cfg.Token != "xoxb-env" {
		t.Errorf("Token = %v, want xoxb-env (env should override file)", cfg.Token)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("Timeout = %v, want 7s (env should override file)", cfg.Timeout)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn (file should set)", cfg.LogLevel)
	}
}
