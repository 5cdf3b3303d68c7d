package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

const anthropicVersion = "2023-06-01"

type implAnthropic struct {
	cfg        config.LLMConfig
	httpClient *http.Client
	logger     logger.Logger
}

// NewAnthropic creates a Generator backed by the Anthropic Messages API.
func NewAnthropic(cfg config.LLMConfig, httpClient *http.Client, log logger.Logger) Generator {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &implAnthropic{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     log,
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (a *implAnthropic) Generate(ctx context.Context, prompt string, maxOutputTokens int) (string, error) {
	if a.cfg.APIKey == "" {
		return "", fmt.Errorf("anthropic API key not set: set ANTHROPIC_API_KEY or llm.api_key")
	}

	jsonBody, err := json.Marshal(anthropicRequest{
		Model:     a.cfg.Model,
		MaxTokens: maxOutputTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.Endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.cfg.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	a.logger.Debug(ctx, "Calling %s (max %d output tokens)", a.cfg.Model, maxOutputTokens)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call anthropic API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic API error (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("parse anthropic response: %w", err)
	}

	var text string
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from Anthropic API")
	}
	return text, nil
}
