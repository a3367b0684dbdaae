// Package app wires the pipeline components for the binaries.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/noteflowhq/noteflow/internal/config"
	"github.com/noteflowhq/noteflow/internal/ingest"
	"github.com/noteflowhq/noteflow/internal/logger"
	"github.com/noteflowhq/noteflow/internal/pipeline"
	"github.com/noteflowhq/noteflow/internal/registry"
	"github.com/noteflowhq/noteflow/internal/store"
	"github.com/noteflowhq/noteflow/internal/summarizer"
	"github.com/noteflowhq/noteflow/internal/transcriber"
	"github.com/noteflowhq/noteflow/pkg/executor"
)

// Build constructs the pipeline and its store. Models are loaded up front
// through the registry so a broken model configuration fails at startup
// instead of on the first request.
func Build(ctx context.Context, cfg *config.Config, log logger.Logger) (pipeline.Pipeline, store.Store, error) {
	exec := executor.New()

	ing, err := ingest.New(cfg, exec, log)
	if err != nil {
		return nil, nil, fmt.Errorf("build ingestor: %w", err)
	}

	reg := registry.New(func(ctx context.Context) (transcriber.Transcriber, summarizer.Model, error) {
		tr, err := transcriber.New(cfg, exec, log)
		if err != nil {
			return nil, nil, err
		}
		m, err := summarizer.NewGeminiModel(ctx, os.Getenv("GEMINI_API_KEY"), cfg.Gemini.Model)
		if err != nil {
			return nil, nil, err
		}
		return tr, m, nil
	})
	if err := reg.Load(ctx); err != nil {
		return nil, nil, fmt.Errorf("load models: %w", err)
	}

	st, err := buildStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	sum := summarizer.New(cfg, reg.SummaryModel(), log)
	return pipeline.New(cfg, ing, reg.Transcriber(), sum, st, log), st, nil
}

func buildStore(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Store, error) {
	switch cfg.Store.Backend {
	case "memory":
		return store.NewMemory(), nil
	default:
		return store.NewFirestore(ctx, cfg.Store.ProjectID, cfg.Store.Collection, log)
	}
}
