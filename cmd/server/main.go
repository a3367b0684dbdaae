package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/noteflowhq/noteflow/internal/app"
	"github.com/noteflowhq/noteflow/internal/config"
	"github.com/noteflowhq/noteflow/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "Voice notes server starting")

	pl, st, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}

	h := &handlers{pipeline: pl, store: st, logger: log}

	srv := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Ingest.MaxUploadBytes) + (1 << 20),
	})
	srv.Post("/notes", h.createNote)
	srv.Get("/notes", h.listNotes)
	srv.Get("/notes/:name/export", h.exportNote)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Listen(cfg.Server.Addr); err != nil {
			errChan <- err
		}
	}()

	log.Info(ctx, "Listening on %s", cfg.Server.Addr)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}
	log.Info(ctx, "Voice notes server stopped")
}
