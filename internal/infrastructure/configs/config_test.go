package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "SERVICE_MESSAGE", "HTTP_HOST", "PORT",
		"HTTP_READ_TIMEOUT_SECONDS", "HTTP_WRITE_TIMEOUT_SECONDS",
		"HTTP_IDLE_TIMEOUT_SECONDS", "HTTP_SHUTDOWN_TIMEOUT_SECONDS",
		"RATE_LIMIT_WINDOW_MINUTES", "RATE_LIMIT_MAX_REQUESTS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != 3000 {
		t.Errorf("port: got %d, want 3000", cfg.HTTP.Port)
	}
	if cfg.Environment != "production" {
		t.Errorf("environment: got %q, want production", cfg.Environment)
	}
	if cfg.IsDevelopment() {
		t.Error("default config reports development mode, want suppressed error detail")
	}
	if cfg.RateLimiter.Window != 15*time.Minute {
		t.Errorf("rate limit window: got %v, want 15m", cfg.RateLimiter.Window)
	}
	if cfg.RateLimiter.MaxRequests != 100 {
		t.Errorf("rate limit max: got %d, want 100", cfg.RateLimiter.MaxRequests)
	}
	if cfg.Service.Message == "" {
		t.Error("service message: empty")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("HTTP_IDLE_TIMEOUT_SECONDS", "90")
	t.Setenv("RATE_LIMIT_WINDOW_MINUTES", "1")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "5")
	t.Setenv("SERVICE_MESSAGE", "hello from env")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != 8081 {
		t.Errorf("port: got %d, want 8081", cfg.HTTP.Port)
	}
	if cfg.Environment != "production" {
		t.Errorf("environment: got %q, want production", cfg.Environment)
	}
	if cfg.HTTP.IdleTimeout != 90*time.Second {
		t.Errorf("idle timeout: got %v, want 90s", cfg.HTTP.IdleTimeout)
	}
	if cfg.RateLimiter.Window != time.Minute {
		t.Errorf("rate limit window: got %v, want 1m", cfg.RateLimiter.Window)
	}
	if cfg.RateLimiter.MaxRequests != 5 {
		t.Errorf("rate limit max: got %d, want 5", cfg.RateLimiter.MaxRequests)
	}
	if cfg.Service.Message != "hello from env" {
		t.Errorf("service message: got %q", cfg.Service.Message)
	}
}

func TestLoad_DevelopmentOptIn(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.IsDevelopment() {
		t.Error("explicit development environment: IsDevelopment got false, want true")
	}
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
environment: staging
http:
  port: 9090
rateLimiter:
  window: 30m
  maxRequests: 50
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Environment != "staging" {
		t.Errorf("environment: got %q, want staging", cfg.Environment)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port: got %d, want 9090", cfg.HTTP.Port)
	}
	if cfg.RateLimiter.Window != 30*time.Minute {
		t.Errorf("rate limit window: got %v, want 30m", cfg.RateLimiter.Window)
	}
	if cfg.RateLimiter.MaxRequests != 50 {
		t.Errorf("rate limit max: got %d, want 50", cfg.RateLimiter.MaxRequests)
	}
	// Defaults still apply for keys the file omits.
	if cfg.HTTP.Host != "0.0.0.0" {
		t.Errorf("host: got %q, want 0.0.0.0", cfg.HTTP.Host)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7070")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http:\n  port: 9090\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 7070 {
		t.Errorf("port: got %d, want env override 7070", cfg.HTTP.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Error("Load: expected error for missing explicit config file")
	}
}

func TestIsDevelopment(t *testing.T) {
	cfg := Config{Environment: "development"}
	if !cfg.IsDevelopment() {
		t.Error("development: got false, want true")
	}

	for _, env := range []string{"production", "staging", ""} {
		cfg := Config{Environment: env}
		if cfg.IsDevelopment() {
			t.Errorf("%q: got true, want false", env)
		}
	}
}
