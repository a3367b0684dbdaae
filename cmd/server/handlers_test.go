package main

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/noteflowhq/noteflow/internal/export"
	"github.com/noteflowhq/noteflow/internal/logger"
	"github.com/noteflowhq/noteflow/internal/model"
	"github.com/noteflowhq/noteflow/internal/store"
)

func newTestApp(t *testing.T) (*fiber.App, store.Store) {
	t.Helper()

	st := store.NewMemory()
	h := &handlers{store: st, logger: logger.NewWithWriter("error", os.Stderr)}

	srv := fiber.New()
	srv.Get("/notes", h.listNotes)
	srv.Get("/notes/:name/export", h.exportNote)
	return srv, st
}

func TestExportNoteText(t *testing.T) {
	srv, st := newTestApp(t)
	if _, err := st.Save(context.Background(), "standup.wav", "we shipped", "shipped"); err != nil {
		t.Fatal(err)
	}

	resp, err := srv.Test(httptest.NewRequest("GET", "/notes/standup.wav/export?format=txt", nil))
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	want := export.Text(model.NotesRecord{Transcription: "we shipped", Summary: "shipped"})
	if string(body) != want {
		t.Errorf("body = %q, want %q", body, want)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, `"standup.wav.txt"`) {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestExportNoteDocx(t *testing.T) {
	srv, st := newTestApp(t)
	// Dots in the record key must not influence where the export renders.
	if _, err := st.Save(context.Background(), "standup..v2.wav", "we shipped", "shipped"); err != nil {
		t.Fatal(err)
	}

	resp, err := srv.Test(httptest.NewRequest("GET", "/notes/standup..v2.wav/export?format=docx", nil))
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if len(body) == 0 {
		t.Error("docx export is empty")
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, `"standup..v2.wav.docx"`) {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestExportNoteNotFound(t *testing.T) {
	srv, _ := newTestApp(t)

	resp, err := srv.Test(httptest.NewRequest("GET", "/notes/missing.wav/export", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestExportNoteBadFormat(t *testing.T) {
	srv, st := newTestApp(t)
	if _, err := st.Save(context.Background(), "a.wav", "t", "s"); err != nil {
		t.Fatal(err)
	}

	resp, err := srv.Test(httptest.NewRequest("GET", "/notes/a.wav/export?format=pdf", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{model.ErrOversizeInput, fiber.StatusRequestEntityTooLarge},
		{model.ErrTranscriptionFailed, fiber.StatusUnprocessableEntity},
		{model.ErrModelUnavailable, fiber.StatusServiceUnavailable},
		{model.ErrStoreUnavailable, fiber.StatusServiceUnavailable},
		{io.ErrUnexpectedEOF, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
