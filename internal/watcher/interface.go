package watcher

import "context"

// Watcher monitors an inbox directory for new audio files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one detected audio file.
type EventHandler func(ctx context.Context, filePath string) error
