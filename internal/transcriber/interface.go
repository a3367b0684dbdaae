package transcriber

import "context"

// Transcriber converts an audio artifact on disk into plain text.
type Transcriber interface {
	// Transcribe returns the recognized speech as a single string: segments
	// in playback order joined by single spaces, trimmed. The input file is
	// never modified or deleted. A silent recording yields an empty string;
	// that is a valid transcript, not an error.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
