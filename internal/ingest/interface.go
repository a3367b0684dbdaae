package ingest

import (
	"context"
	"io"
)

// Ingestor normalizes an incoming audio source into a temporary WAV
// artifact on disk. The returned path is owned by the caller, which must
// delete it when the run finishes.
type Ingestor interface {
	// FromUpload writes uploaded bytes to a fresh temp file, enforcing the
	// configured byte limit.
	FromUpload(ctx context.Context, name string, r io.Reader) (string, error)

	// FromFrames encodes captured PCM frames (mono 16-bit) as a WAV file.
	FromFrames(ctx context.Context, name string, frames []int16) (string, error)
}

// Source is one audio input for a pipeline run.
type Source interface {
	// Name identifies the source and becomes the record key.
	Name() string

	// Materialize produces the temporary audio artifact via the ingestor.
	Materialize(ctx context.Context, ing Ingestor) (string, error)
}

// DefaultRecordingName is the record key used for microphone captures
// that carry no filename.
const DefaultRecordingName = "recording.wav"

// Upload is an uploaded audio file.
type Upload struct {
	Filename string
	Data     io.Reader
}

func (u Upload) Name() string { return u.Filename }

func (u Upload) Materialize(ctx context.Context, ing Ingestor) (string, error) {
	return ing.FromUpload(ctx, u.Filename, u.Data)
}

// Recording is a captured sequence of PCM frames.
type Recording struct {
	Label  string
	Frames []int16
}

func (r Recording) Name() string {
	if r.Label == "" {
		return DefaultRecordingName
	}
	return r.Label
}

func (r Recording) Materialize(ctx context.Context, ing Ingestor) (string, error) {
	return ing.FromFrames(ctx, r.Name(), r.Frames)
}
