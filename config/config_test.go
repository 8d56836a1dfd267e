package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "server:\n  port: 9090\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Fatalf("port mismatch: got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.Host != "127.0.0.1" {
		t.Fatalf("default host mismatch: got %q", cfg.HTTP.Host)
	}
	if cfg.DB.Name != "boardhub" {
		t.Fatalf("default db name mismatch: got %q", cfg.DB.Name)
	}
	if cfg.JWT.ExpMin != 60 {
		t.Fatalf("default jwt exp mismatch: got %d", cfg.JWT.ExpMin)
	}
	if cfg.RateLimit.AuthMax != 5 || cfg.RateLimit.AuthWindow != 15*time.Minute {
		t.Fatalf("default auth limiter mismatch: %+v", cfg.RateLimit)
	}
	if cfg.RateLimit.APIMax != 100 || cfg.RateLimit.APIWindow != time.Minute {
		t.Fatalf("default api limiter mismatch: %+v", cfg.RateLimit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 8088
db:
  host: db.internal
  name: boards
jwt:
  secret: prod-secret
  exp_min: 15
master:
  email: root@example.com
ratelimit:
  auth_max: 3
  auth_window_min: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTP.Host != "0.0.0.0" || cfg.HTTP.Port != 8088 {
		t.Fatalf("http mismatch: %+v", cfg.HTTP)
	}
	if cfg.DB.Host != "db.internal" || cfg.DB.Name != "boards" {
		t.Fatalf("db mismatch: %+v", cfg.DB)
	}
	if cfg.JWT.Secret != "prod-secret" || cfg.JWT.ExpMin != 15 {
		t.Fatalf("jwt mismatch: %+v", cfg.JWT)
	}
	if cfg.Master.Email != "root@example.com" {
		t.Fatalf("master mismatch: %+v", cfg.Master)
	}
	if cfg.RateLimit.AuthMax != 3 || cfg.RateLimit.AuthWindow != 5*time.Minute {
		t.Fatalf("ratelimit mismatch: %+v", cfg.RateLimit)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
