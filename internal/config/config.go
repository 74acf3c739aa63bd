package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime configuration. The Gemini credential is the only
// required value; everything else has a sensible default.
type Config struct {
	// Server
	Port      int    `env:"PORT" envDefault:"5000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // "json" or "text"

	// Generation service
	GeminiAPIKey string `env:"GEMINI_API_KEY" validate:"required"`
	Model        string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash-lite"`
}

var validate = validator.New()

// Load reads configuration from environment variables with defaults. A
// missing GEMINI_API_KEY is an error: the service must not start without
// its credential.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse env: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("GEMINI_API_KEY environment variable is not set: %w", err)
	}
	return cfg, nil
}
