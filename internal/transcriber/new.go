package transcriber

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

// New builds the Transcriber selected by cfg.Transcriber.Provider
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcriber.Provider {
	case config.TranscriberWhisperCpp:
		return NewWhisperCpp(cfg.Transcriber.Whisper, cfg.Paths.Temp, exec, log), nil
	case config.TranscriberMistral:
		return NewMistral(cfg.Transcriber.Mistral, &http.Client{Timeout: 10 * time.Minute}, log), nil
	default:
		return nil, fmt.Errorf("unsupported transcriber provider %q", cfg.Transcriber.Provider)
	}
}
