package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// FromFrames encodes captured PCM frames as a mono 16-bit WAV file at the
// configured sample rate. Duration is bounded by the capture side, so no
// byte check is applied here.
func (p *implIngestor) FromFrames(ctx context.Context, name string, frames []int16) (string, error) {
	path := p.artifactPath()

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create artifact: %w", err)
	}

	enc := wav.NewEncoder(f, p.sampleRate, 16, 1, 1)

	data := make([]int, len(frames))
	for i, s := range frames {
		data[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: p.sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		enc.Close()
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("finalize wav: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close artifact: %w", err)
	}

	p.logger.Debug(ctx, "Encoded capture %s (%d frames) -> %s", name, len(frames), path)
	return path, nil
}
