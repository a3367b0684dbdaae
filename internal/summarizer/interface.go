package summarizer

import "context"

// Summarizer condenses a transcript into a short abstract.
type Summarizer interface {
	// Summarize applies the chunked summarization policy. Transcripts under
	// the short-text threshold return ShortTextSentinel without touching
	// the model.
	Summarize(ctx context.Context, transcript string) (string, error)
}

// Model is the abstractive summarization backend for a single chunk.
// Implementations must be deterministic: repeated calls on the same input
// yield the same output.
type Model interface {
	Summarize(ctx context.Context, text string, maxLen, minLen int) (string, error)
}

// ShortTextSentinel is returned instead of a summary when the transcript
// is below the minimum length policy threshold.
const ShortTextSentinel = "text too short"

// shortTextThreshold is the minimum transcript length eligible for
// summarization, in characters.
const shortTextThreshold = 50
