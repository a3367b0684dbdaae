package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper  WhisperConfig  `yaml:"whisper"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Summary  SummaryConfig  `yaml:"summary"`
	Store    StoreConfig    `yaml:"store"`
	Paths    PathsConfig    `yaml:"paths"`
	Server   ServerConfig   `yaml:"server"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type IngestConfig struct {
	MaxUploadBytes    int64 `yaml:"max_upload_bytes"`
	MaxCaptureSeconds int   `yaml:"max_capture_seconds"`
	SampleRate        int   `yaml:"sample_rate"`
	Normalize         bool  `yaml:"normalize"`
}

type SummaryConfig struct {
	ChunkChars int `yaml:"chunk_chars"`
	MaxLen     int `yaml:"max_len"`
	MinLen     int `yaml:"min_len"`
}

type StoreConfig struct {
	// Backend is "firestore" or "memory".
	Backend    string `yaml:"backend"`
	ProjectID  string `yaml:"project_id"`
	Collection string `yaml:"collection"`
}

type PathsConfig struct {
	Inbox   string `yaml:"inbox"`
	Output  string `yaml:"output"`
	Archive string `yaml:"archive"`
	Temp    string `yaml:"temp"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type PipelineConfig struct {
	StageTimeoutSeconds int `yaml:"stage_timeout_seconds"`
	MaxConcurrent       int `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields and fills in defaults.
func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}

	if c.Store.Backend == "" {
		c.Store.Backend = "firestore"
	}
	if c.Store.Backend != "firestore" && c.Store.Backend != "memory" {
		return fmt.Errorf("store.backend must be firestore or memory, got %q", c.Store.Backend)
	}
	if c.Store.Backend == "firestore" && c.Store.ProjectID == "" {
		return fmt.Errorf("store.project_id is required for the firestore backend")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Ingest.MaxUploadBytes == 0 {
		c.Ingest.MaxUploadBytes = 200 << 20
	}
	if c.Ingest.MaxCaptureSeconds == 0 {
		c.Ingest.MaxCaptureSeconds = 60
	}
	if c.Ingest.SampleRate == 0 {
		c.Ingest.SampleRate = 16000
	}
	if c.Summary.ChunkChars == 0 {
		c.Summary.ChunkChars = 1024
	}
	if c.Summary.MaxLen == 0 {
		c.Summary.MaxLen = 150
	}
	if c.Summary.MinLen == 0 {
		c.Summary.MinLen = 50
	}
	if c.Store.Collection == "" {
		c.Store.Collection = "transcriptions"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archive == "" {
		c.Paths.Archive = "data/archive"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Pipeline.StageTimeoutSeconds == 0 {
		c.Pipeline.StageTimeoutSeconds = 300
	}
	if c.Pipeline.MaxConcurrent == 0 {
		c.Pipeline.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
