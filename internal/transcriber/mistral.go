package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type implMistral struct {
	cfg        config.MistralConfig
	httpClient *http.Client
	logger     logger.Logger
}

// NewMistral creates a Transcriber backed by the Mistral audio transcription API.
func NewMistral(cfg config.MistralConfig, httpClient *http.Client, log logger.Logger) Transcriber {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &implMistral{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     log,
	}
}

type mistralResponse struct {
	Text string `json:"text"`
}

func (m *implMistral) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	if m.cfg.APIKey == "" {
		return "", fmt.Errorf("mistral API key not set: set MISTRAL_API_KEY or transcriber.mistral.api_key")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("model", m.cfg.Model); err != nil {
		return "", err
	}
	if language != "" {
		if err := writer.WriteField("language", language); err != nil {
			return "", err
		}
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint, body)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)

	m.logger.Debug(ctx, "Uploading %s to %s", audioPath, m.cfg.Endpoint)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call mistral API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mistral API error (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var apiResp mistralResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("parse mistral response: %w", err)
	}
	return apiResp.Text, nil
}
