package infra

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"

	"visionai/internal/imagegen"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv         string   `env:"APP_ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"8080"`
	NebiusAPIKey   string   `env:"NEBIUS_API_KEY"`
	NebiusBaseURL  string   `env:"NEBIUS_BASE_URL"`
	ImageModel     string   `env:"IMAGE_MODEL"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	ReadTimeoutSeconds  int `env:"HTTP_READ_TIMEOUT_SECONDS" envDefault:"15"`
	WriteTimeoutSeconds int `env:"HTTP_WRITE_TIMEOUT_SECONDS" envDefault:"120"`
	IdleTimeoutSeconds  int `env:"HTTP_IDLE_TIMEOUT_SECONDS" envDefault:"60"`
	RateLimitPerMin     int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"0"`

	// TrustProxyHeaders lets X-Forwarded-For and X-Real-IP replace the peer
	// address. Enable it only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
// The .env file, if any, is expected to be loaded by the caller beforehand.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.NebiusAPIKey = strings.TrimSpace(cfg.NebiusAPIKey)
	if cfg.NebiusAPIKey == "" {
		return nil, fmt.Errorf("NEBIUS_API_KEY is required")
	}
	if strings.TrimSpace(cfg.NebiusBaseURL) == "" {
		cfg.NebiusBaseURL = imagegen.DefaultBaseURL
	}
	if strings.TrimSpace(cfg.ImageModel) == "" {
		cfg.ImageModel = imagegen.DefaultModel
	}
	if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8080"
	}
	if cfg.RateLimitPerMin < 0 {
		cfg.RateLimitPerMin = 0
	}
	cfg.AllowedOrigins = cleanList(cfg.AllowedOrigins)

	cfg.HTTPReadTimeout = seconds(cfg.ReadTimeoutSeconds, 15)
	cfg.HTTPWriteTimeout = seconds(cfg.WriteTimeoutSeconds, 120)
	cfg.HTTPIdleTimeout = seconds(cfg.IdleTimeoutSeconds, 60)

	return cfg, nil
}

// IsDevelopment reports whether the service runs with developer-friendly defaults.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

func seconds(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Second
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
