package summarizer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/noteflowhq/noteflow/internal/model"
)

// Summarize splits the transcript into fixed-size character windows,
// summarizes each independently, and joins the per-chunk summaries with
// single spaces, in chunk order.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	if utf8.RuneCountInString(transcript) < shortTextThreshold {
		s.logger.Debug(ctx, "Transcript below %d chars, skipping summarization", shortTextThreshold)
		return ShortTextSentinel, nil
	}

	// Model availability is checked before any chunk is sent so a load
	// failure never leaves a partial summary.
	if s.model == nil {
		return "", fmt.Errorf("%w: summarization model not loaded", model.ErrModelUnavailable)
	}

	chunks := chunk(transcript, s.chunkChars)
	s.logger.Info(ctx, "Summarizing transcript: %d characters in %d chunks",
		utf8.RuneCountInString(transcript), len(chunks))

	parts := make([]string, 0, len(chunks))
	for i, c := range chunks {
		out, err := s.model.Summarize(ctx, c, s.maxLen, s.minLen)
		if err != nil {
			return "", fmt.Errorf("%w: summarize chunk %d/%d: %w", model.ErrModelUnavailable, i+1, len(chunks), err)
		}
		parts = append(parts, strings.TrimSpace(out))
	}

	return strings.Join(parts, " "), nil
}

// chunk partitions s into consecutive non-overlapping windows of chars
// characters. Windows are character-index slices, not sentence-aware; the
// final window may be shorter. Slicing on rune boundaries keeps every
// chunk valid UTF-8 regardless of where the window lands.
func chunk(s string, chars int) []string {
	runes := []rune(s)
	if chars <= 0 || len(runes) <= chars {
		return []string{s}
	}

	out := make([]string, 0, (len(runes)+chars-1)/chars)
	for start := 0; start < len(runes); start += chars {
		end := start + chars
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}
