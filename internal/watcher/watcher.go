package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type implWatcher struct {
	inputDir    string
	extension   string
	handler     EventHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	settleDelay time.Duration
}

// Start blocks until ctx is done, calling the handler once per burst of new
// recordings. The handler runs on the calling goroutine, so runs never overlap.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for new %s files", w.inputDir, w.extension)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.isNewRecording(event) {
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", event.Name)

			// Give the writer time to finish, then fold any further arrivals into this run
			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
			latest := w.drain(ctx, event.Name)

			if err := w.handler(ctx, latest); err != nil {
				w.logger.Error(ctx, "Failed to process new recordings: %v", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// drain consumes already queued events and returns the last recording seen
func (w *implWatcher) drain(ctx context.Context, latest string) string {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return latest
			}
			if w.isNewRecording(event) {
				w.logger.Debug(ctx, "Coalescing %s into current run", event.Name)
				latest = event.Name
			}
		default:
			return latest
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) isNewRecording(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return filepath.Ext(name) == w.extension
}
