package watcher

import "context"

// Watcher defines the interface for input directory monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called with the newest recording of a burst of arrivals
type EventHandler func(ctx context.Context, filePath string) error
