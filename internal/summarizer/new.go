package summarizer

import (
	"github.com/noteflowhq/noteflow/internal/config"
	"github.com/noteflowhq/noteflow/internal/logger"
)

type implSummarizer struct {
	model      Model
	chunkChars int
	maxLen     int
	minLen     int
	logger     logger.Logger
}

// New creates a Summarizer applying cfg.Summary policy over the given
// model. A nil model is tolerated here and reported as ErrModelUnavailable
// on the first Summarize call that needs it.
func New(cfg *config.Config, m Model, log logger.Logger) Summarizer {
	return &implSummarizer{
		model:      m,
		chunkChars: cfg.Summary.ChunkChars,
		maxLen:     cfg.Summary.MaxLen,
		minLen:     cfg.Summary.MinLen,
		logger:     log,
	}
}
