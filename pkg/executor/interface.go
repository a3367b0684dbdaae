package executor

import "context"

// Executor runs external tools (ffmpeg, whisper.cpp) and returns stdout.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
