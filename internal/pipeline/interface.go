package pipeline

import (
	"context"

	"github.com/noteflowhq/noteflow/internal/ingest"
	"github.com/noteflowhq/noteflow/internal/model"
)

// Pipeline runs one audio source through ingest, transcription,
// summarization, and persistence.
type Pipeline interface {
	// Run executes the stages strictly in sequence. The temporary audio
	// artifact is deleted on every exit path. If persistence fails after
	// transcription and summarization succeeded, the computed record is
	// still returned alongside the store error so callers can present it.
	Run(ctx context.Context, src ingest.Source) (model.NotesRecord, error)
}
