package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "mistral transcriber",
			config: Config{
				Transcriber: TranscriberConfig{Provider: TranscriberMistral},
			},
			wantErr: false,
		},
		{
			name: "unknown transcriber",
			config: Config{
				Transcriber: TranscriberConfig{Provider: "google"},
			},
			wantErr: true,
		},
		{
			name: "unknown llm",
			config: Config{
				LLM: LLMConfig{Provider: "openai"},
			},
			wantErr: true,
		},
		{
			name: "negative token limit",
			config: Config{
				LLM: LLMConfig{MaxOutputTokens: -1},
			},
			wantErr: true,
		},
		{
			name: "token limit above int32",
			config: Config{
				LLM: LLMConfig{MaxOutputTokens: math.MaxInt32 + 1},
			},
			wantErr: true,
		},
		{
			name: "token limit at int32 max",
			config: Config{
				LLM: LLMConfig{MaxOutputTokens: math.MaxInt32},
			},
			wantErr: false,
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

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Paths.Input != "recordings" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "recordings")
	}
	if cfg.Paths.Output != "minutes" {
		t.Errorf("Output = %v, want %v", cfg.Paths.Output, "minutes")
	}
	if cfg.Recording.Extension != ".mp3" {
		t.Errorf("Extension = %v, want %v", cfg.Recording.Extension, ".mp3")
	}
	if cfg.Transcriber.Language != "ja" {
		t.Errorf("Language = %v, want %v", cfg.Transcriber.Language, "ja")
	}
	if cfg.LLM.MaxOutputTokens != 4000 {
		t.Errorf("MaxOutputTokens = %v, want %v", cfg.LLM.MaxOutputTokens, 4000)
	}
	if cfg.LLM.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want %v", cfg.LLM.Model, "gemini-2.5-flash")
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
paths:
  input: "data/recordings"
  output: "data/minutes"

recording:
  extension: "wav"

transcriber:
  provider: "whisper_cpp"
  language: "en"
  whisper:
    model_path: "models/test.bin"
    binary_path: "./whisper"
    threads: 4

llm:
  provider: "anthropic"
  max_output_tokens: 2000

output:
  docx: true

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "data/recordings" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/recordings")
	}
	if cfg.Recording.Extension != ".wav" {
		t.Errorf("Extension = %v, want %v", cfg.Recording.Extension, ".wav")
	}
	if cfg.Transcriber.Whisper.Threads != 4 {
		t.Errorf("Threads = %v, want %v", cfg.Transcriber.Whisper.Threads, 4)
	}
	if cfg.Transcriber.Whisper.FFmpegPath != "ffmpeg" {
		t.Errorf("FFmpegPath = %v, want %v", cfg.Transcriber.Whisper.FFmpegPath, "ffmpeg")
	}
	if cfg.LLM.APIKey != "env-key" {
		t.Errorf("APIKey = %v, want %v", cfg.LLM.APIKey, "env-key")
	}
	if cfg.LLM.Endpoint != "https://api.anthropic.com/v1/messages" {
		t.Errorf("Endpoint = %v", cfg.LLM.Endpoint)
	}
	if cfg.LLM.MaxOutputTokens != 2000 {
		t.Errorf("MaxOutputTokens = %v, want %v", cfg.LLM.MaxOutputTokens, 2000)
	}
	if !cfg.Output.Docx {
		t.Error("Output.Docx = false, want true")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Paths.Input != "recordings" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "recordings")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("paths: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for malformed file")
	}
}

func TestResolvePaths(t *testing.T) {
	cfg := Default()
	cfg.Paths.Output = "/abs/minutes"
	cfg.ResolvePaths("/opt/app")

	if cfg.Paths.Input != filepath.Join("/opt/app", "recordings") {
		t.Errorf("Input = %v", cfg.Paths.Input)
	}
	if cfg.Paths.Output != "/abs/minutes" {
		t.Errorf("Output = %v, want absolute path untouched", cfg.Paths.Output)
	}
	if cfg.Transcriber.Whisper.ModelPath != filepath.Join("/opt/app", "models/ggml-base.bin") {
		t.Errorf("ModelPath = %v", cfg.Transcriber.Whisper.ModelPath)
	}
}
