package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/noteflowhq/noteflow/internal/app"
	"github.com/noteflowhq/noteflow/internal/config"
	"github.com/noteflowhq/noteflow/internal/export"
	"github.com/noteflowhq/noteflow/internal/ingest"
	"github.com/noteflowhq/noteflow/internal/logger"
	"github.com/noteflowhq/noteflow/internal/pipeline"
	"github.com/noteflowhq/noteflow/internal/watcher"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	ctx := context.Background()

	// Secrets (GEMINI_API_KEY, GOOGLE_APPLICATION_CREDENTIALS) come from
	// the environment; .env is a local convenience.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "Voice notes batch pipeline starting")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	pl, _, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}

	handler := newInboxHandler(cfg, pl, log)
	w, err := watcher.New(cfg.Paths.Inbox, handler, log, cfg.Pipeline.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Exports: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Voice notes pipeline stopped")
}

// newInboxHandler runs one inbox file through the pipeline, writes exports,
// and archives the original recording.
func newInboxHandler(cfg *config.Config, pl pipeline.Pipeline, log logger.Logger) watcher.EventHandler {
	return func(ctx context.Context, filePath string) error {
		f, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("open recording: %w", err)
		}

		rec, err := pl.Run(ctx, ingest.Upload{Filename: filepath.Base(filePath), Data: f})
		f.Close()
		if err != nil {
			return err
		}

		base := strings.TrimSuffix(rec.AudioName, filepath.Ext(rec.AudioName))
		docxPath := filepath.Join(cfg.Paths.Output, base+".docx")
		if err := export.WriteDocx(rec, docxPath); err != nil {
			log.Warn(ctx, "Failed to write export for %s: %v", rec.AudioName, err)
		} else {
			log.Info(ctx, "Export written: %s", docxPath)
		}

		archivePath := filepath.Join(cfg.Paths.Archive, filepath.Base(filePath))
		if err := os.Rename(filePath, archivePath); err != nil {
			log.Warn(ctx, "Failed to archive %s: %v", filePath, err)
		}
		return nil
	}
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Output,
		cfg.Paths.Archive,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
