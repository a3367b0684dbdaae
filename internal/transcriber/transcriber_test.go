package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/noteflowhq/noteflow/internal/config"
	"github.com/noteflowhq/noteflow/internal/logger"
	"github.com/noteflowhq/noteflow/internal/model"
)

// fakeWhisper mimics the whisper.cpp binary: it writes <prefix>.txt with
// the configured content, or fails.
type fakeWhisper struct {
	output string
	err    error
	calls  int
}

func (f *fakeWhisper) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}

	var prefix string
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "--output-file" {
			prefix = args[i+1]
		}
	}
	if prefix == "" {
		return "", errors.New("missing --output-file")
	}
	if err := os.WriteFile(prefix+".txt", []byte(f.output), 0644); err != nil {
		return "", err
	}
	return "", nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	modelPath := filepath.Join(dir, "ggml-base.en.bin")
	binPath := filepath.Join(dir, "whisper-cli")
	for _, p := range []string{modelPath, binPath} {
		if err := os.WriteFile(p, []byte("stub"), 0755); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &config.Config{}
	cfg.Whisper.ModelPath = modelPath
	cfg.Whisper.BinaryPath = binPath
	cfg.Whisper.Language = "en"
	cfg.Whisper.Threads = 4
	return cfg
}

func writeArtifact(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note.wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribe(t *testing.T) {
	fake := &fakeWhisper{output: " Hello there.\n General Kenobi.\n\n"}
	tr, err := New(testConfig(t), fake, logger.NewWithWriter("error", os.Stderr))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	artifact := writeArtifact(t)
	got, err := tr.Transcribe(context.Background(), artifact)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if want := "Hello there. General Kenobi."; got != want {
		t.Errorf("Transcribe() = %q, want %q", got, want)
	}

	// Input artifact must survive transcription.
	if _, err := os.Stat(artifact); err != nil {
		t.Errorf("input artifact was removed: %v", err)
	}
	// Whisper's own output file must not.
	txt := artifact[:len(artifact)-4] + ".txt"
	if _, err := os.Stat(txt); !os.IsNotExist(err) {
		t.Errorf("whisper output file %s was left behind", txt)
	}
}

func TestTranscribeSilence(t *testing.T) {
	fake := &fakeWhisper{output: "\n"}
	tr, err := New(testConfig(t), fake, logger.NewWithWriter("error", os.Stderr))
	if err != nil {
		t.Fatal(err)
	}

	got, err := tr.Transcribe(context.Background(), writeArtifact(t))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "" {
		t.Errorf("Transcribe() = %q, want empty string for silence", got)
	}
}

func TestTranscribeFailure(t *testing.T) {
	fake := &fakeWhisper{err: errors.New("exit status 1")}
	tr, err := New(testConfig(t), fake, logger.NewWithWriter("error", os.Stderr))
	if err != nil {
		t.Fatal(err)
	}

	_, err = tr.Transcribe(context.Background(), writeArtifact(t))
	if !errors.Is(err, model.ErrTranscriptionFailed) {
		t.Errorf("error = %v, want ErrTranscriptionFailed", err)
	}
}

func TestNewMissingModel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Whisper.ModelPath = filepath.Join(t.TempDir(), "missing.bin")

	_, err := New(cfg, &fakeWhisper{}, logger.NewWithWriter("error", os.Stderr))
	if !errors.Is(err, model.ErrModelUnavailable) {
		t.Errorf("error = %v, want ErrModelUnavailable", err)
	}
}
