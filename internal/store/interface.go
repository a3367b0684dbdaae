package store

import (
	"context"
	"time"

	"github.com/noteflowhq/noteflow/internal/model"
)

// Store persists NotesRecords keyed by audio name.
type Store interface {
	// Save upserts a record under audioName, stamping the store's current
	// time, and returns that timestamp so callers hold the same value the
	// document carries. Last write wins; re-saving a name overwrites the
	// prior record.
	Save(ctx context.Context, audioName, transcription, summary string) (time.Time, error)

	// FetchAll returns every stored record ordered newest first. An empty
	// store yields an empty slice, not an error.
	FetchAll(ctx context.Context) ([]model.NotesRecord, error)
}
