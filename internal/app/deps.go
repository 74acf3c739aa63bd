package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"gemini-summarizer/internal/config"
	"gemini-summarizer/internal/llm"
	"gemini-summarizer/internal/logger"
)

// Deps bundles the runtime dependencies shared by the handlers. The Gemini
// client is built once at startup and reused across requests.
type Deps struct {
	Config    config.Config
	Log       *slog.Logger
	Generator llm.Generator
}

// Build loads env, config, and shared components. A missing .env file is
// fine; a missing credential is not.
func Build(ctx context.Context) (Deps, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Deps{}, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return Deps{}, err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	gen, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.Model)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	log.Info("using Gemini generator", "model", cfg.Model)

	return Deps{
		Config:    cfg,
		Log:       log,
		Generator: gen,
	}, nil
}
