package generator

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type implGemini struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// NewGemini creates a Generator backed by the Gemini API. A nil httpClient
// uses the genai default; cfg.Endpoint overrides the API base URL.
func NewGemini(ctx context.Context, cfg config.LLMConfig, httpClient *http.Client, log logger.Logger) (Generator, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.Endpoint != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Endpoint}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &implGemini{
		client: client,
		model:  cfg.Model,
		logger: log,
	}, nil
}

func (g *implGemini) Generate(ctx context.Context, prompt string, maxOutputTokens int) (string, error) {
	g.logger.Debug(ctx, "Calling %s (max %d output tokens)", g.model, maxOutputTokens)

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxOutputTokens),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := responseText(result)
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	return text
}
