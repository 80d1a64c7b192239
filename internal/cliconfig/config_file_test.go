package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				Token:     "xoxb-file",
				BaseURL:   "http://localhost:9000/api/",
				Timeout:   "5s",
				UserAgent: "file-agent",
				LogLevel:  "debug",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				Token:     "xoxb-file",
				BaseURL:   "http://localhost:9000/api/",
				Timeout:   5 * time.Second,
				UserAgent: "file-agent",
				LogLevel:  "debug",
			},
		},
		{
			name:       "respects changed flags",
			fileConfig: FileConfig{Token: "xoxb-file", Timeout: "5s"},
			changed:    map[string]bool{"token": true, "timeout": true},
			initial:    Config{Token: "xoxb-flag", Timeout: time.Minute},
			expected:   Config{Token: "xoxb-flag", Timeout: time.Minute},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{Timeout: "soon"},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}

			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
token = "xoxb-from-file"
base_url = "https://slack.com/api/"
timeout = "10s"
log_level = "warn"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0o600); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	want := FileConfig{
		Token:    "xoxb-from-file",
		BaseURL:  "https://slack.com/api/",
		Timeout:  "10s",
		LogLevel: "warn",
	}
	if fc != want {
		t.Errorf("LoadFileConfig() = %+v, want %+v", fc, want)
	}
}

func TestLoadFileConfig_errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(tmpDir, "missing.toml")); err == nil {
		t.Error("LoadFileConfig() on a missing file expected error")
	}

	bad := filepath.Join(tmpDir, "bad.toml")
	if err := os.WriteFile(bad, []byte("token = \n"), 0o600); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("LoadFileConfig() on invalid TOML expected error")
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "exists")

	if FileExists(p) {
		t.Fatalf("FileExists(%q) = true before creation", p)
	}

	if err := os.WriteFile(p, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(p) {
		t.Fatalf("FileExists(%q) = false after creation", p)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	p := DefaultConfigPath()
	if p == "" {
		t.Skip("no home directory")
	}

	if !strings.HasSuffix(p, filepath.Join(".slackweb", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %q", p)
	}
}
