package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.History.Backend != "sqlite" || cfg.DB.Path != ":memory:" {
		t.Fatalf("unexpected history defaults: %+v", cfg)
	}
	if cfg.WS.PingPeriod != 54*time.Second {
		t.Fatalf("unexpected ping period %v", cfg.WS.PingPeriod)
	}
}

func TestLoad_FileValues(t *testing.T) {
	dir := writeConfig(t, `
port: "9090"
log:
  level: debug
  format: json
history:
  backend: Memory
ws:
  ping_period: 5s
`)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected values: %+v", cfg)
	}
	if cfg.History.Backend != "memory" {
		t.Fatalf("backend must be normalized, got %q", cfg.History.Backend)
	}
	if cfg.WS.PingPeriod != 5*time.Second {
		t.Fatalf("unexpected ping period %v", cfg.WS.PingPeriod)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "port: \"9090\"\n")
	t.Setenv("TEMPCONV_PORT", "7070")
	t.Setenv("TEMPCONV_HISTORY_BACKEND", "memory")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" || cfg.History.Backend != "memory" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad_backend": "history:\n  backend: postgres\n",
		"bad_ping":    "ws:\n  ping_period: 0s\n",
		"bad_yaml":    "port: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoad_BackendErrorNamesChoices(t *testing.T) {
	_, err := Load(writeConfig(t, "history:\n  backend: redis\n"))
	if err == nil || !strings.Contains(err.Error(), "memory or sqlite") {
		t.Fatalf("unexpected error: %v", err)
	}
}
