package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient calls the Gemini generateContent API.
type GeminiClient struct {
	model  string
	client *genai.Client
}

const defaultModel = "gemini-2.0-flash-lite"

// Generation settings are fixed: low temperature keeps summaries focused
// and consistent.
const (
	temperature     float32 = 0.3
	topP            float32 = 0.8
	topK            float32 = 40
	maxOutputTokens int32   = 1024
)

// NewGeminiClient builds a client against the Gemini API backend.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = defaultModel
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		model:  model,
		client: cli,
	}, nil
}

// Generate makes a single blocking generateContent call. No retries; the
// request context is the only cancellation hook.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil gemini client")
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		TopP:            genai.Ptr(topP),
		TopK:            genai.Ptr(topK),
		MaxOutputTokens: maxOutputTokens,
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini: no text returned")
	}
	return text, nil
}
