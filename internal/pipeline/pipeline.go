package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/noteflowhq/noteflow/internal/ingest"
	"github.com/noteflowhq/noteflow/internal/model"
)

// Run orchestrates one pipeline run: ingest, transcribe, summarize,
// persist. Stages run strictly in sequence; no stage result is consumed
// before the previous stage has fully completed.
func (p *implPipeline) Run(ctx context.Context, src ingest.Source) (model.NotesRecord, error) {
	startTime := time.Now()
	p.logger.Info(ctx, "Starting pipeline run: %s", src.Name())

	audioPath, err := src.Materialize(ctx, p.ingestor)
	if err != nil {
		return model.NotesRecord{}, fmt.Errorf("ingest: %w", err)
	}
	// The artifact is owned exclusively by this run and is never retained.
	defer p.removeArtifact(ctx, audioPath)

	transcript, err := p.runStage(ctx, func(sctx context.Context) (string, error) {
		return p.transcriber.Transcribe(sctx, audioPath)
	})
	if err != nil {
		return model.NotesRecord{}, fmt.Errorf("transcribe: %w", err)
	}

	summary, err := p.runStage(ctx, func(sctx context.Context) (string, error) {
		return p.summarizer.Summarize(sctx, transcript)
	})
	if err != nil {
		return model.NotesRecord{}, fmt.Errorf("summarize: %w", err)
	}

	rec := model.NotesRecord{
		AudioName:     src.Name(),
		Transcription: transcript,
		Summary:       summary,
	}

	ts, err := p.store.Save(ctx, rec.AudioName, rec.Transcription, rec.Summary)
	if err != nil {
		// The transcript and summary are already in memory; return them so
		// the caller can still present them. The timestamp is advisory
		// here since nothing was persisted.
		rec.Timestamp = time.Now().UTC()
		p.logger.Error(ctx, "Persistence failed for %s: %v", rec.AudioName, err)
		return rec, fmt.Errorf("persist: %w", err)
	}
	// Carry the store-assigned timestamp so the returned record matches
	// the persisted document.
	rec.Timestamp = ts

	p.logger.Info(ctx, "Pipeline run completed: %s in %s", src.Name(), time.Since(startTime))
	return rec, nil
}

// runStage applies the per-stage timeout so a hung model call cannot block
// the run indefinitely.
func (p *implPipeline) runStage(ctx context.Context, fn func(context.Context) (string, error)) (string, error) {
	if p.stageTimeout <= 0 {
		return fn(ctx)
	}
	sctx, cancel := context.WithTimeout(ctx, p.stageTimeout)
	defer cancel()
	return fn(sctx)
}

func (p *implPipeline) removeArtifact(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		p.logger.Warn(ctx, "Failed to remove artifact %s: %v", path, err)
	} else {
		p.logger.Debug(ctx, "Removed artifact: %s", path)
	}
}
