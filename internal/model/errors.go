package model

import "errors"

// Pipeline failure kinds. Stages wrap these with fmt.Errorf("%w") so
// callers can classify with errors.Is while keeping the underlying cause
// in the message chain.
var (
	// ErrOversizeInput is returned when an uploaded recording exceeds the
	// configured byte limit. User-correctable, never retried.
	ErrOversizeInput = errors.New("input exceeds configured size limit")

	// ErrTranscriptionFailed is returned when the speech model cannot
	// process the input (corrupt audio, unsupported encoding, nonzero exit).
	ErrTranscriptionFailed = errors.New("transcription failed")

	// ErrModelUnavailable is returned when a model handle failed to load
	// or the model backend cannot be reached. Fatal for the run.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrStoreUnavailable is returned when the document store cannot be
	// reached or authenticated. The computed transcript and summary are
	// still returned to the caller.
	ErrStoreUnavailable = errors.New("document store unavailable")
)
