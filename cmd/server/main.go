package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"gemini-summarizer/internal/app"
	"gemini-summarizer/internal/httputil"
	"gemini-summarizer/internal/prompt"
)

const (
	serviceName    = "Gemini AI Summarizer"
	serviceVersion = "1.0.0"

	minTextLength = 50

	shutdownGrace = 10 * time.Second
)

type summarizeRequest struct {
	Text   string `json:"text"`
	Mode   string `json:"mode"`
	Length string `json:"length"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
	Mode    string `json:"mode"`
	Length  string `json:"length"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Build(ctx)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	r := httputil.NewRouter(deps.Log)
	r.Post("/summarize", summarizeHandler(deps))
	r.Get("/health", healthHandler())

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("summarizer listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		deps.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

// summarizeHandler validates the payload, builds the mode-specific prompt,
// and makes one blocking generation call. Validation failures never reach
// the generator.
func summarizeHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req *summarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == nil {
			httputil.Fail(deps.Log, w, "No data provided", err, http.StatusBadRequest)
			return
		}

		text := strings.TrimSpace(req.Text)
		mode := strings.ToLower(req.Mode)
		if mode == "" {
			mode = string(prompt.ModeParagraph)
		}
		length := strings.ToLower(req.Length)
		if length == "" {
			length = string(prompt.LengthMedium)
		}

		if text == "" {
			httputil.Fail(deps.Log, w, "Text field is required", nil, http.StatusBadRequest)
			return
		}
		if utf8.RuneCountInString(text) < minTextLength {
			httputil.Fail(deps.Log, w, "Text must be at least 50 characters long", nil, http.StatusBadRequest)
			return
		}
		if !prompt.Mode(mode).Valid() {
			httputil.Fail(deps.Log, w, "Invalid mode specified", nil, http.StatusBadRequest)
			return
		}
		if !prompt.Length(length).Valid() {
			httputil.Fail(deps.Log, w, "Invalid length specified", nil, http.StatusBadRequest)
			return
		}

		p := prompt.Build(text, prompt.Mode(mode), prompt.Length(length))
		summary, err := deps.Generator.Generate(r.Context(), p)
		if err != nil {
			httputil.Fail(deps.Log, w,
				"An error occurred while generating the summary: "+err.Error(),
				err, http.StatusInternalServerError)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, summarizeResponse{
			Summary: strings.TrimSpace(summary),
			Mode:    mode,
			Length:  length,
		})
	}
}

// healthHandler reports a fixed payload regardless of any other state.
func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": serviceName,
			"version": serviceVersion,
		})
	}
}
