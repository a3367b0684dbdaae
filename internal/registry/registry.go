// Package registry holds the process-wide model handles. Models are loaded
// at most once per process lifetime and shared read-only by every pipeline
// run; the sync.Once guard prevents duplicate loads under concurrent first
// requests.
package registry

import (
	"context"
	"sync"

	"github.com/noteflowhq/noteflow/internal/summarizer"
	"github.com/noteflowhq/noteflow/internal/transcriber"
)

// Loader constructs the model handles. It runs exactly once.
type Loader func(ctx context.Context) (transcriber.Transcriber, summarizer.Model, error)

type Registry struct {
	once        sync.Once
	load        Loader
	transcriber transcriber.Transcriber
	summaryMod  summarizer.Model
	err         error
}

func New(load Loader) *Registry {
	return &Registry{load: load}
}

// Load initializes the model handles on first call and returns the load
// result on every call.
func (r *Registry) Load(ctx context.Context) error {
	r.once.Do(func() {
		r.transcriber, r.summaryMod, r.err = r.load(ctx)
	})
	return r.err
}

// Transcriber returns the loaded speech model handle, or nil if Load
// failed or was never called.
func (r *Registry) Transcriber() transcriber.Transcriber {
	return r.transcriber
}

// SummaryModel returns the loaded summarization backend, or nil if Load
// failed or was never called.
func (r *Registry) SummaryModel() summarizer.Model {
	return r.summaryMod
}
