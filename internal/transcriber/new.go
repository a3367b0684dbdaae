package transcriber

import (
	"fmt"
	"os"

	"github.com/noteflowhq/noteflow/internal/config"
	"github.com/noteflowhq/noteflow/internal/logger"
	"github.com/noteflowhq/noteflow/internal/model"
	"github.com/noteflowhq/noteflow/pkg/executor"
)

type implTranscriber struct {
	modelPath  string
	binaryPath string
	language   string
	threads    int
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a Transcriber backed by a whisper.cpp binary. Model and
// binary paths are checked up front so a missing model surfaces as
// ErrModelUnavailable at startup, not on the first request.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	if _, err := os.Stat(cfg.Whisper.ModelPath); err != nil {
		return nil, fmt.Errorf("%w: whisper model %s: %v", model.ErrModelUnavailable, cfg.Whisper.ModelPath, err)
	}
	if _, err := os.Stat(cfg.Whisper.BinaryPath); err != nil {
		return nil, fmt.Errorf("%w: whisper binary %s: %v", model.ErrModelUnavailable, cfg.Whisper.BinaryPath, err)
	}

	return &implTranscriber{
		modelPath:  cfg.Whisper.ModelPath,
		binaryPath: cfg.Whisper.BinaryPath,
		language:   cfg.Whisper.Language,
		threads:    cfg.Whisper.Threads,
		executor:   exec,
		logger:     log,
	}, nil
}
