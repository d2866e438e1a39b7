package configs

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pulsekit/pulsed/internal/infrastructure/env"
)

type Config struct {
	Environment string            `koanf:"environment"`
	Service     ServiceConfig     `koanf:"service"`
	HTTP        HTTPConfig        `koanf:"http"`
	RateLimiter RateLimiterConfig `koanf:"rateLimiter"`
}

type ServiceConfig struct {
	Message string `koanf:"message"`
}

type HTTPConfig struct {
	Host            string        `koanf:"host"`
	Port            uint16        `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type RateLimiterConfig struct {
	Window      time.Duration `koanf:"window"`
	MaxRequests int           `koanf:"maxRequests"`
}

// IsDevelopment reports whether verbose error detail should be exposed
// in 500 responses.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Load from YAML file if one was found; the service runs fine on
	// defaults and environment variables alone.
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Apply defaults and environment variable overrides
	applyDefaults(k)
	applyEnvOverrides(k)

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(k *koanf.Koanf) {
	// Verbose 500 detail is opt-in: only an explicit "development" value
	// enables it.
	setDefault(k, "environment", "production")
	setDefault(k, "service.message", "Pulse status service is running")

	// HTTP defaults
	setDefault(k, "http.host", "0.0.0.0")
	setDefault(k, "http.port", 3000)
	setDefault(k, "http.read_timeout", 10*time.Second)
	setDefault(k, "http.write_timeout", 30*time.Second)
	setDefault(k, "http.idle_timeout", time.Minute)
	setDefault(k, "http.shutdown_timeout", 5*time.Second)

	// Rate limiter defaults
	setDefault(k, "rateLimiter.window", 15*time.Minute)
	setDefault(k, "rateLimiter.maxRequests", 100)
}

func applyEnvOverrides(k *koanf.Koanf) {
	if environment := env.GetString("ENVIRONMENT", ""); environment != "" {
		k.Set("environment", environment)
	}
	if message := env.GetString("SERVICE_MESSAGE", ""); message != "" {
		k.Set("service.message", message)
	}

	// HTTP config from env
	if host := env.GetString("HTTP_HOST", ""); host != "" {
		k.Set("http.host", host)
	}
	if port := env.GetInt("PORT", 0); port > 0 {
		k.Set("http.port", port)
	}
	if readTimeout := env.GetInt("HTTP_READ_TIMEOUT_SECONDS", 0); readTimeout > 0 {
		k.Set("http.read_timeout", time.Duration(readTimeout)*time.Second)
	}
	if writeTimeout := env.GetInt("HTTP_WRITE_TIMEOUT_SECONDS", 0); writeTimeout > 0 {
		k.Set("http.write_timeout", time.Duration(writeTimeout)*time.Second)
	}
	if idleTimeout := env.GetInt("HTTP_IDLE_TIMEOUT_SECONDS", 0); idleTimeout > 0 {
		k.Set("http.idle_timeout", time.Duration(idleTimeout)*time.Second)
	}
	if shutdownTimeout := env.GetInt("HTTP_SHUTDOWN_TIMEOUT_SECONDS", 0); shutdownTimeout > 0 {
		k.Set("http.shutdown_timeout", time.Duration(shutdownTimeout)*time.Second)
	}

	// Rate limiter config from env
	if window := env.GetInt("RATE_LIMIT_WINDOW_MINUTES", 0); window > 0 {
		k.Set("rateLimiter.window", time.Duration(window)*time.Minute)
	}
	if maxRequests := env.GetInt("RATE_LIMIT_MAX_REQUESTS", 0); maxRequests > 0 {
		k.Set("rateLimiter.maxRequests", maxRequests)
	}
}

// setDefault only sets the value if the key doesn't already exist
func setDefault(k *koanf.Koanf, key string, value interface{}) {
	if !k.Exists(key) {
		k.Set(key, value)
	}
}
