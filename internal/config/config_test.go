package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/ggml-base.en.bin",
					BinaryPath: "./whisper-cli",
				},
				Store: StoreConfig{
					Backend:   "firestore",
					ProjectID: "noteflow-test",
				},
			},
			wantErr: false,
		},
		{
			name: "memory backend needs no project",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/ggml-base.en.bin",
					BinaryPath: "./whisper-cli",
				},
				Store: StoreConfig{Backend: "memory"},
			},
			wantErr: false,
		},
		{
			name: "missing model path",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
				},
				Store: StoreConfig{Backend: "memory"},
			},
			wantErr: true,
		},
		{
			name: "firestore backend without project",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/ggml-base.en.bin",
					BinaryPath: "./whisper-cli",
				},
				Store: StoreConfig{Backend: "firestore"},
			},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/ggml-base.en.bin",
					BinaryPath: "./whisper-cli",
				},
				Store: StoreConfig{Backend: "dynamo"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			ModelPath:  "models/ggml-base.en.bin",
			BinaryPath: "./whisper-cli",
		},
		Store: StoreConfig{Backend: "memory"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Summary.ChunkChars != 1024 {
		t.Errorf("ChunkChars = %d, want 1024", cfg.Summary.ChunkChars)
	}
	if cfg.Summary.MaxLen != 150 || cfg.Summary.MinLen != 50 {
		t.Errorf("summary bounds = [%d, %d], want [50, 150]", cfg.Summary.MinLen, cfg.Summary.MaxLen)
	}
	if cfg.Ingest.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", cfg.Ingest.SampleRate)
	}
	if cfg.Ingest.MaxCaptureSeconds != 60 {
		t.Errorf("MaxCaptureSeconds = %d, want 60", cfg.Ingest.MaxCaptureSeconds)
	}
	if cfg.Store.Collection != "transcriptions" {
		t.Errorf("Collection = %q, want transcriptions", cfg.Store.Collection)
	}
	if cfg.Whisper.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Whisper.Language)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}

	content := `
whisper:
  model_path: "models/ggml-base.en.bin"
  binary_path: "./whisper-cli"
  language: "en"

store:
  backend: "firestore"
  project_id: "noteflow-test"
  collection: "transcriptions"

ingest:
  max_upload_bytes: 104857600

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/ggml-base.en.bin" {
		t.Errorf("ModelPath = %v, want models/ggml-base.en.bin", cfg.Whisper.ModelPath)
	}
	if cfg.Store.ProjectID != "noteflow-test" {
		t.Errorf("ProjectID = %v, want noteflow-test", cfg.Store.ProjectID)
	}
	if cfg.Ingest.MaxUploadBytes != 104857600 {
		t.Errorf("MaxUploadBytes = %d, want 104857600", cfg.Ingest.MaxUploadBytes)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
