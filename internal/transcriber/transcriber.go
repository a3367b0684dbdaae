package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/noteflowhq/noteflow/internal/model"
)

// Transcribe runs whisper.cpp over the artifact and collects its text
// output. Whisper writes <prefix>.txt with one segment per line; the lines
// are joined with single spaces in playback order.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Starting transcription (%d threads, language %s): %s",
		t.threads, t.language, audioPath)

	// -otxt: plain text output
	// -l: force language (prevents hallucination)
	// -bo 5: best of 5 for better accuracy
	args := []string{
		"-m", t.modelPath,
		"-f", audioPath,
		"-otxt",
		"-l", t.language,
		"-t", strconv.Itoa(t.threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.binaryPath, args...); err != nil {
		return "", fmt.Errorf("%w: run whisper: %w", model.ErrTranscriptionFailed, err)
	}

	txtPath := outputPrefix + ".txt"
	raw, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("%w: read whisper output: %w", model.ErrTranscriptionFailed, err)
	}
	defer os.Remove(txtPath)

	transcript := joinSegments(string(raw))
	t.logger.Info(ctx, "Transcription completed: %d characters", len(transcript))
	return transcript, nil
}

// joinSegments flattens whisper's per-line segments into one string with
// single-space separators.
func joinSegments(raw string) string {
	lines := strings.Split(raw, "\n")
	segments := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, " ")
}
