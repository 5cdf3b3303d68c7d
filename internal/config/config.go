package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

const (
	TranscriberWhisperCpp = "whisper_cpp"
	TranscriberMistral    = "mistral"

	LLMGemini    = "gemini"
	LLMAnthropic = "anthropic"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Recording   RecordingConfig   `yaml:"recording"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
	Watch       WatchConfig       `yaml:"watch"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type RecordingConfig struct {
	Extension string `yaml:"extension"`
}

type TranscriberConfig struct {
	Provider string        `yaml:"provider"`
	Language string        `yaml:"language"`
	Whisper  WhisperConfig `yaml:"whisper"`
	Mistral  MistralConfig `yaml:"mistral"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	FFmpegPath string `yaml:"ffmpeg_path"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type MistralConfig struct {
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Endpoint string `yaml:"endpoint"`
}

type LLMConfig struct {
	Provider        string `yaml:"provider"`
	Model           string `yaml:"model"`
	APIKey          string `yaml:"api_key"`
	Endpoint        string `yaml:"endpoint"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type WatchConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	// Validate only fills defaults on an empty config
	_ = cfg.Validate()
	return cfg
}

// Validate fills unset fields with defaults and rejects unsupported values.
func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		c.Paths.Input = "recordings"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "minutes"
	}
	if c.Recording.Extension == "" {
		c.Recording.Extension = ".mp3"
	}
	if !strings.HasPrefix(c.Recording.Extension, ".") {
		c.Recording.Extension = "." + c.Recording.Extension
	}

	if c.Transcriber.Provider == "" {
		c.Transcriber.Provider = TranscriberWhisperCpp
	}
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = "ja"
	}
	switch c.Transcriber.Provider {
	case TranscriberWhisperCpp:
		w := &c.Transcriber.Whisper
		if w.BinaryPath == "" {
			w.BinaryPath = "whisper-cli"
		}
		if w.FFmpegPath == "" {
			w.FFmpegPath = "ffmpeg"
		}
		if w.ModelPath == "" {
			w.ModelPath = "models/ggml-base.bin"
		}
		if w.Threads == 0 {
			w.Threads = 8
		}
	case TranscriberMistral:
		m := &c.Transcriber.Mistral
		if m.Model == "" {
			m.Model = "voxtral-mini-latest"
		}
		if m.Endpoint == "" {
			m.Endpoint = "https://api.mistral.ai/v1/audio/transcriptions"
		}
	default:
		return fmt.Errorf("transcriber.provider %q is not supported", c.Transcriber.Provider)
	}

	if c.LLM.Provider == "" {
		c.LLM.Provider = LLMGemini
	}
	switch c.LLM.Provider {
	case LLMGemini:
		if c.LLM.Model == "" {
			c.LLM.Model = "gemini-2.5-flash"
		}
	case LLMAnthropic:
		if c.LLM.Model == "" {
			c.LLM.Model = "claude-3-5-sonnet-20241022"
		}
		if c.LLM.Endpoint == "" {
			c.LLM.Endpoint = "https://api.anthropic.com/v1/messages"
		}
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if c.LLM.MaxOutputTokens < 0 || c.LLM.MaxOutputTokens > math.MaxInt32 {
		return fmt.Errorf("llm.max_output_tokens must be between 0 and %d", math.MaxInt32)
	}
	if c.LLM.MaxOutputTokens == 0 {
		c.LLM.MaxOutputTokens = 4000
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// ResolvePaths makes every relative path absolute against baseDir.
func (c *Config) ResolvePaths(baseDir string) {
	resolve := func(p *string) {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(baseDir, *p)
		}
	}
	resolve(&c.Paths.Input)
	resolve(&c.Paths.Output)
	resolve(&c.Paths.Temp)
	if c.Transcriber.Provider == TranscriberWhisperCpp {
		resolve(&c.Transcriber.Whisper.ModelPath)
	}
}
