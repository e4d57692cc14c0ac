package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validBaseConfig() *Config {
	return &Config{
		Log:      LogConfig{Level: "info", Format: "text"},
		Matching: MatchingConfig{Strategy: "interest"},
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "volunteer.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// ============================================================================
// Validate
// ============================================================================

func TestConfig_Validate_ValidConfig(t *testing.T) {
	if err := validBaseConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidLogLevel(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "VOLUNTEER_LOG_LEVEL") {
		t.Errorf("expected error to mention VOLUNTEER_LOG_LEVEL, got: %v", err)
	}
	if !strings.Contains(err.Error(), "verbose") {
		t.Errorf("expected error to mention the bad value, got: %v", err)
	}
}

func TestConfig_Validate_InvalidLogFormat(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid log format")
	}
	if !strings.Contains(err.Error(), "VOLUNTEER_LOG_FORMAT") {
		t.Errorf("expected error to mention VOLUNTEER_LOG_FORMAT, got: %v", err)
	}
}

func TestConfig_Validate_MissingStrategy(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Matching.Strategy = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing strategy")
	}
	if !strings.Contains(err.Error(), "VOLUNTEER_MATCHING_STRATEGY is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors for empty config")
	}
	for _, want := range []string{"VOLUNTEER_LOG_LEVEL", "VOLUNTEER_LOG_FORMAT", "VOLUNTEER_MATCHING_STRATEGY"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got: %v", want, err)
		}
	}
}

// ============================================================================
// Load
// ============================================================================

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.Matching.Strategy != "interest" {
		t.Errorf("expected interest strategy, got %q", cfg.Matching.Strategy)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VOLUNTEER_LOG_LEVEL", "debug")
	t.Setenv("VOLUNTEER_METRICS_ENABLED", "true")
	t.Setenv("VOLUNTEER_SEED_PATH", "/tmp/seed.toml")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug, got %q", cfg.Log.Level)
	}
	if !cfg.Metrics.Enabled {
		t.Error("expected metrics enabled from env")
	}
	if cfg.Seed.Path != "/tmp/seed.toml" {
		t.Errorf("expected seed path from env, got %q", cfg.Seed.Path)
	}
}

func TestLoad_RejectsBadLevel(t *testing.T) {
	t.Setenv("VOLUNTEER_LOG_LEVEL", "loud")

	if _, err := Load(""); err == nil {
		t.Error("expected error for bad log level")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
[log]
level = "warn"
format = "json"

[seed]
path = "seed.toml"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.Seed.Path != "seed.toml" {
		t.Errorf("expected seed path from file, got %q", cfg.Seed.Path)
	}
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	path := writeConfigFile(t, "[log]\nlevel = \"warn\"\n")
	t.Setenv("VOLUNTEER_LOG_LEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("expected env to win, got %q", cfg.Log.Level)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

// ============================================================================
// Logger
// ============================================================================

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := (LogConfig{Level: tt.level}).SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("key", "value"))

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"kept"`) || !strings.Contains(out, `"key":"value"`) {
		t.Errorf("expected JSON record, got: %s", out)
	}
}
