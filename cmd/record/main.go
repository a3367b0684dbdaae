package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/noteflowhq/noteflow/internal/app"
	"github.com/noteflowhq/noteflow/internal/capture"
	"github.com/noteflowhq/noteflow/internal/config"
	"github.com/noteflowhq/noteflow/internal/export"
	"github.com/noteflowhq/noteflow/internal/ingest"
	"github.com/noteflowhq/noteflow/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	name := flag.String("name", "", "record name (defaults to the fixed recording placeholder)")
	seconds := flag.Int("seconds", 0, "capture duration (defaults to the configured maximum)")
	flag.Parse()

	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	duration := time.Duration(cfg.Ingest.MaxCaptureSeconds) * time.Second
	if *seconds > 0 && *seconds < cfg.Ingest.MaxCaptureSeconds {
		duration = time.Duration(*seconds) * time.Second
	}

	pl, _, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}

	// Ctrl+C stops the capture early and processes what was recorded.
	captureCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info(ctx, "Recording up to %s at %d Hz (Ctrl+C to stop early)...", duration, cfg.Ingest.SampleRate)
	frames, err := capture.Record(captureCtx, cfg.Ingest.SampleRate, duration)
	if err != nil {
		log.Error(ctx, "Capture failed: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Captured %.1f seconds of audio", float64(len(frames))/float64(cfg.Ingest.SampleRate))

	rec, err := pl.Run(ctx, ingest.Recording{Label: *name, Frames: frames})
	if err != nil {
		log.Error(ctx, "Pipeline failed: %v", err)
		os.Exit(1)
	}

	fmt.Println(export.Text(rec))
}
