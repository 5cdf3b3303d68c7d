package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

func TestIsNewRecording(t *testing.T) {
	w := &implWatcher{extension: ".mp3"}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"created mp3", fsnotify.Event{Name: "/in/a.mp3", Op: fsnotify.Create}, true},
		{"upper-case extension", fsnotify.Event{Name: "/in/a.MP3", Op: fsnotify.Create}, false},
		{"write event", fsnotify.Event{Name: "/in/a.mp3", Op: fsnotify.Write}, false},
		{"other extension", fsnotify.Event{Name: "/in/a.txt", Op: fsnotify.Create}, false},
		{"hidden temp file", fsnotify.Event{Name: "/in/.a.mp3", Op: fsnotify.Create}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.isNewRecording(tt.event); got != tt.want {
				t.Errorf("isNewRecording() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartCallsHandler(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 10)

	w, err := New(dir, ".mp3", func(ctx context.Context, filePath string) error {
		handled <- filePath
		return nil
	}, logger.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	w.(*implWatcher).settleDelay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "meeting1.mp3")
	if err := os.WriteFile(path, []byte("ID3"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-handled:
		if got != path {
			t.Errorf("handler got %s, want %s", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), ".mp3", nil, logger.Nop())
	if err == nil {
		t.Error("New() should fail for a missing directory")
	}
}
