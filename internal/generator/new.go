package generator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

// New builds the Generator selected by cfg.LLM.Provider. The returned client
// is meant to be created once per run and shared by every recording.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Generator, error) {
	switch cfg.LLM.Provider {
	case config.LLMGemini:
		return NewGemini(ctx, cfg.LLM, nil, log)
	case config.LLMAnthropic:
		return NewAnthropic(cfg.LLM, &http.Client{Timeout: 5 * time.Minute}, log), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.LLM.Provider)
	}
}
