package ingest

import (
	"fmt"
	"os"

	"github.com/noteflowhq/noteflow/internal/config"
	"github.com/noteflowhq/noteflow/internal/logger"
	"github.com/noteflowhq/noteflow/pkg/executor"
)

type implIngestor struct {
	maxUploadBytes int64
	sampleRate     int
	normalize      bool
	tempDir        string
	executor       executor.Executor
	logger         logger.Logger
}

// New creates an Ingestor writing artifacts under cfg.Paths.Temp.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Ingestor, error) {
	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	return &implIngestor{
		maxUploadBytes: cfg.Ingest.MaxUploadBytes,
		sampleRate:     cfg.Ingest.SampleRate,
		normalize:      cfg.Ingest.Normalize,
		tempDir:        cfg.Paths.Temp,
		executor:       exec,
		logger:         log,
	}, nil
}
