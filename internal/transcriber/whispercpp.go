package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

type implWhisperCpp struct {
	cfg      config.WhisperConfig
	tempRoot string
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisperCpp creates a Transcriber that shells out to ffmpeg and the whisper.cpp CLI.
// Intermediate files live in a per-call directory under tempRoot (OS default when empty).
func NewWhisperCpp(cfg config.WhisperConfig, tempRoot string, exec executor.Executor, log logger.Logger) Transcriber {
	return &implWhisperCpp{
		cfg:      cfg,
		tempRoot: tempRoot,
		executor: exec,
		logger:   log,
	}
}

func (w *implWhisperCpp) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	if w.tempRoot != "" {
		if err := os.MkdirAll(w.tempRoot, 0755); err != nil {
			return "", fmt.Errorf("create temp root: %w", err)
		}
	}
	tempDir, err := os.MkdirTemp(w.tempRoot, "transcribe-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	wavPath, err := w.extractAudio(ctx, audioPath, tempDir)
	if err != nil {
		return "", err
	}

	return w.runWhisper(ctx, wavPath, language, tempDir)
}

// extractAudio converts the recording to 16kHz mono WAV, the input whisper.cpp expects
func (w *implWhisperCpp) extractAudio(ctx context.Context, audioPath, tempDir string) (string, error) {
	wavPath := filepath.Join(tempDir, "audio.wav")

	w.logger.Debug(ctx, "Converting to WAV: %s", audioPath)

	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}

	if _, err := w.executor.Execute(ctx, w.cfg.FFmpegPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}
	return wavPath, nil
}

func (w *implWhisperCpp) runWhisper(ctx context.Context, wavPath, language, tempDir string) (string, error) {
	// whisper.cpp appends .txt to the prefix
	outputPrefix := filepath.Join(tempDir, "transcript")

	w.logger.Debug(ctx, "Running whisper.cpp with %d threads, language %s", w.cfg.Threads, language)

	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
