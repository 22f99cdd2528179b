package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
)

// Provider identifiers accepted in the PROVIDER environment variable.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderDemo   = "demo"
)

// Config holds all environment-driven settings. It is read once at startup
// and never mutated afterwards.
type Config struct {
	Port       int    `env:"PORT,default=8787"`
	CORSOrigin string `env:"CORS_ORIGIN,default=*"`

	Provider     string `env:"PROVIDER,default=demo"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-4o-mini"`
	GeminiModel  string `env:"GEMINI_MODEL,default=gemini-1.5-flash"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW,default=60s"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX,default=60"`
	ScoreTimeout    time.Duration `env:"SCORE_TIMEOUT,default=20s"`

	DBPath   string `env:"DB_PATH,default=handsigned.db"`
	AdminKey string `env:"ADMIN_KEY"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.Provider = strings.ToLower(cfg.Provider)
	switch cfg.Provider {
	case ProviderOpenAI, ProviderGemini, ProviderDemo:
	default:
		return nil, fmt.Errorf("PROVIDER must be one of openai, gemini, demo; got %q", cfg.Provider)
	}

	if cfg.RateLimitMax < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX must be at least 1, got %d", cfg.RateLimitMax)
	}

	return &cfg, nil
}

// ProviderAvailable reports whether the named provider can actually be
// invoked, i.e. its credential is present. The demo provider needs nothing.
func (c *Config) ProviderAvailable(name string) bool {
	switch name {
	case ProviderOpenAI:
		return c.OpenAIAPIKey != ""
	case ProviderGemini:
		return c.GeminiAPIKey != ""
	case ProviderDemo:
		return true
	default:
		return false
	}
}
