package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/generator"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
	"github.com/nguyentantai21042004/minutes-flow/internal/watcher"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// config.yaml, recordings/ and minutes/ live next to the binary
	baseDir := programDir()

	cfg, err := config.Load(filepath.Join(baseDir, "config.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ResolvePaths(baseDir)

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Minutes Generator")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Input: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Transcriber: %s (language: %s)", cfg.Transcriber.Provider, cfg.Transcriber.Language)
	log.Info(ctx, "LLM: %s %s (max %d tokens)", cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.MaxOutputTokens)

	// Clients are created once and shared by every recording of the run
	tr, err := transcriber.New(cfg, executor.New(), log)
	if err != nil {
		log.Error(ctx, "Failed to create transcriber: %v", err)
		os.Exit(1)
	}
	gen, err := generator.New(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to create LLM client: %v", err)
		os.Exit(1)
	}

	pipeline := minutes.New(minutes.Options{
		InputDir:        cfg.Paths.Input,
		OutputDir:       cfg.Paths.Output,
		Extension:       cfg.Recording.Extension,
		Language:        cfg.Transcriber.Language,
		MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		ExportDocx:      cfg.Output.Docx,
	}, tr, gen, log)

	// Per-recording failures are in the summary; the exit status stays 0
	if _, err := pipeline.ProcessAll(ctx); err != nil {
		log.Error(ctx, "Batch failed: %v", err)
	}

	if cfg.Watch.Enabled {
		watch(ctx, cfg, pipeline, log)
	}
}

// watch reruns the batch whenever new recordings appear, until SIGINT/SIGTERM
func watch(ctx context.Context, cfg *config.Config, pipeline minutes.Pipeline, log logger.Logger) {
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create input directory: %v", err)
		return
	}

	w, err := watcher.New(cfg.Paths.Input, cfg.Recording.Extension, func(ctx context.Context, filePath string) error {
		_, err := pipeline.ProcessAll(ctx)
		return err
	}, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}
	cancel()
}

func programDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
