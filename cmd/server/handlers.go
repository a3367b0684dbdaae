package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/noteflowhq/noteflow/internal/export"
	"github.com/noteflowhq/noteflow/internal/ingest"
	"github.com/noteflowhq/noteflow/internal/logger"
	"github.com/noteflowhq/noteflow/internal/model"
	"github.com/noteflowhq/noteflow/internal/pipeline"
	"github.com/noteflowhq/noteflow/internal/store"
	"github.com/noteflowhq/noteflow/internal/watcher"
)

type handlers struct {
	pipeline pipeline.Pipeline
	store    store.Store
	logger   logger.Logger
}

type noteResponse struct {
	Record    model.NotesRecord `json:"record"`
	Persisted bool              `json:"persisted"`
	Warning   string            `json:"warning,omitempty"`
}

// createNote accepts a multipart audio upload and runs it through the
// pipeline.
func (h *handlers) createNote(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing audio file field")
	}
	if !watcher.IsAudioFile(fileHeader.Filename) {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported audio format, expected .wav/.mp3/.m4a")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable upload")
	}
	defer f.Close()

	rec, err := h.pipeline.Run(c.Context(), ingest.Upload{Filename: fileHeader.Filename, Data: f})
	if err != nil {
		// The transcript and summary survive a persistence failure; show
		// them to the user instead of discarding the run.
		if errors.Is(err, model.ErrStoreUnavailable) {
			return c.Status(fiber.StatusOK).JSON(noteResponse{
				Record:  rec,
				Warning: "result computed but not persisted: store unavailable",
			})
		}
		return fiber.NewError(statusFor(err), err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(noteResponse{Record: rec, Persisted: true})
}

// listNotes returns every stored record, newest first.
func (h *handlers) listNotes(c *fiber.Ctx) error {
	records, err := h.store.FetchAll(c.Context())
	if err != nil {
		return fiber.NewError(statusFor(err), err.Error())
	}
	return c.JSON(records)
}

// exportNote renders one stored record as txt or docx.
func (h *handlers) exportNote(c *fiber.Ctx) error {
	name := c.Params("name")

	records, err := h.store.FetchAll(c.Context())
	if err != nil {
		return fiber.NewError(statusFor(err), err.Error())
	}

	var rec *model.NotesRecord
	for i := range records {
		if records[i].AudioName == name {
			rec = &records[i]
			break
		}
	}
	if rec == nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("no record for %q", name))
	}

	// The record key is user input; only its base name may reach headers
	// or the filesystem.
	downloadName := filepath.Base(name)

	switch c.Query("format", "txt") {
	case "txt":
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", downloadName+".txt"))
		return c.SendString(export.Text(*rec))

	case "docx":
		// Render to a per-request temp file: the path never derives from
		// the record key, so concurrent exports cannot collide.
		tmp, err := os.CreateTemp("", "noteflow-export-*.docx")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		path := tmp.Name()
		tmp.Close()
		defer os.Remove(path)

		if err := export.WriteDocx(*rec, path); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", downloadName+".docx"))
		return c.Send(data)

	default:
		return fiber.NewError(fiber.StatusBadRequest, "format must be txt or docx")
	}
}

// statusFor maps pipeline failure kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrOversizeInput):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, model.ErrTranscriptionFailed):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrModelUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, model.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
