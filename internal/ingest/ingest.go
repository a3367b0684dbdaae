package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/noteflowhq/noteflow/internal/model"
)

// FromUpload streams uploaded bytes to a fresh temp file. Uploads over the
// configured limit are rejected with ErrOversizeInput and leave no file
// behind.
func (p *implIngestor) FromUpload(ctx context.Context, name string, r io.Reader) (string, error) {
	path := p.artifactPath()

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create artifact: %w", err)
	}

	// Read one byte past the limit so an exactly-at-limit upload passes.
	n, err := io.Copy(f, io.LimitReader(r, p.maxUploadBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write artifact: %w", err)
	}
	if n > p.maxUploadBytes {
		os.Remove(path)
		return "", fmt.Errorf("%w: upload %q exceeds %d bytes", model.ErrOversizeInput, name, p.maxUploadBytes)
	}

	p.logger.Debug(ctx, "Ingested upload %s (%d bytes) -> %s", name, n, path)

	if p.normalize {
		return p.normalizeArtifact(ctx, path)
	}
	return path, nil
}

// normalizeArtifact resamples an uploaded file to mono 16-bit PCM at the
// configured sample rate. Whisper expects this format; uploads may arrive
// as mp3/m4a or at other rates.
func (p *implIngestor) normalizeArtifact(ctx context.Context, path string) (string, error) {
	normPath := strings.TrimSuffix(path, filepath.Ext(path)) + "_norm.wav"

	args := []string{
		"-i", path,
		"-ar", fmt.Sprintf("%d", p.sampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		normPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		os.Remove(normPath)
		os.Remove(path)
		return "", fmt.Errorf("ffmpeg normalize: %w", err)
	}

	os.Remove(path)
	p.logger.Debug(ctx, "Normalized artifact: %s", normPath)
	return normPath, nil
}

func (p *implIngestor) artifactPath() string {
	return filepath.Join(p.tempDir, uuid.NewString()+".wav")
}
