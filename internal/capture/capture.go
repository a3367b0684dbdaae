// Package capture records microphone audio as mono 16-bit PCM frames.
package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/gordonklaus/portaudio"
)

const framesPerBuffer = 1024

// Record captures from the default input device until ctx is cancelled or
// maxDuration elapses, whichever comes first. The duration bound is the
// capture-side counterpart of the upload byte limit.
func Record(ctx context.Context, sampleRate int, maxDuration time.Duration) ([]int16, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}
	defer portaudio.Terminate()

	buf := make([]int16, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(sampleRate), framesPerBuffer, buf)
	if err != nil {
		return nil, fmt.Errorf("open input stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("start input stream: %w", err)
	}
	defer stream.Stop()

	maxFrames := int(float64(sampleRate) * maxDuration.Seconds())
	frames := make([]int16, 0, maxFrames)

	for len(frames) < maxFrames {
		select {
		case <-ctx.Done():
			return frames, nil
		default:
		}

		if err := stream.Read(); err != nil {
			return nil, fmt.Errorf("read input stream: %w", err)
		}
		frames = append(frames, buf...)
	}

	if len(frames) > maxFrames {
		frames = frames[:maxFrames]
	}
	return frames, nil
}
