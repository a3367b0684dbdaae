package pipeline

import (
	"time"

	"github.com/noteflowhq/noteflow/internal/config"
	"github.com/noteflowhq/noteflow/internal/ingest"
	"github.com/noteflowhq/noteflow/internal/logger"
	"github.com/noteflowhq/noteflow/internal/store"
	"github.com/noteflowhq/noteflow/internal/summarizer"
	"github.com/noteflowhq/noteflow/internal/transcriber"
)

type implPipeline struct {
	ingestor     ingest.Ingestor
	transcriber  transcriber.Transcriber
	summarizer   summarizer.Summarizer
	store        store.Store
	stageTimeout time.Duration
	logger       logger.Logger
}

// New wires the pipeline stages together.
func New(cfg *config.Config, ing ingest.Ingestor, tr transcriber.Transcriber, sum summarizer.Summarizer, st store.Store, log logger.Logger) Pipeline {
	return &implPipeline{
		ingestor:     ing,
		transcriber:  tr,
		summarizer:   sum,
		store:        st,
		stageTimeout: time.Duration(cfg.Pipeline.StageTimeoutSeconds) * time.Second,
		logger:       log,
	}
}
