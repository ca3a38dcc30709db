package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the runtime configuration of the service, sourced from the
// process environment (optionally seeded from a .env file by the CLI).
type Config struct {
	Port     int    `env:"PORT,default=8080"`
	Language string `env:"LANGUAGE,default=en"`

	// GitHubBaseURL points the remote client somewhere other than
	// api.github.com. GitHub Enterprise installs and the test suite use it.
	GitHubBaseURL string `env:"GITHUB_BASE_URL,default=https://api.github.com/"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL"`

	// RemoteTimeout bounds each individual call against the hosting API and
	// the generation backend.
	RemoteTimeout   time.Duration `env:"REMOTE_TIMEOUT,default=30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	// LogFile enables rotating JSON log output next to the console handler.
	LogFile string `env:"LOG_FILE"`
}

// Load builds the Config from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// LoadWith builds the Config from the given lookuper. Tests use it to
// inject a synthetic environment.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	return load(ctx, lookuper)
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("error processing environment config: %w", err)
	}

	cfg.Language = NormalizeLanguage(cfg.Language)

	if cfg.GeminiModel == "" {
		cfg.GeminiModel = string(DefaultModel())
	} else if !IsSupportedModel(cfg.GeminiModel) {
		return nil, fmt.Errorf("unsupported GEMINI_MODEL %q, supported models: %v", cfg.GeminiModel, SupportedModels())
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.RemoteTimeout <= 0 {
		return nil, fmt.Errorf("REMOTE_TIMEOUT must be positive, got %s", cfg.RemoteTimeout)
	}

	// go-github requires the base URL to end with a slash.
	if !strings.HasSuffix(cfg.GitHubBaseURL, "/") {
		cfg.GitHubBaseURL += "/"
	}

	return &cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
