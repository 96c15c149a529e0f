package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all provider configuration.
type Config struct {
	// Provider selects which provider to use.
	// Values: "ollama", "openai", "anthropic", "gemini", "mock"
	Provider string

	Ollama    OllamaConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout is the maximum duration for a single generation request.
	// On expiry the caller falls back to templates; there is no retry of
	// a timed-out request. Default: 60s.
	Timeout time.Duration
}

// OllamaConfig holds configuration for a local Ollama server.
type OllamaConfig struct {
	BaseURL string // Default: "http://localhost:11434"
	Model   string // Default: "phi3:mini"
}

// OpenAIConfig holds OpenAI-specific configuration. BaseURL allows any
// OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults: a local Ollama
// server, matching the offline-first design.
func DefaultConfig() Config {
	return Config{
		Provider: "ollama",
		Ollama: OllamaConfig{
			BaseURL: "http://localhost:11434",
			Model:   "phi3:mini",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 1 * time.Second,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ApplyEnv overlays SKILLSCOPE_* environment variables onto the config,
// one field at a time so values from other sources survive when only a
// sibling field is set. An unparseable timeout is ignored.
func (c *Config) ApplyEnv() {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.Provider, "SKILLSCOPE_LLM_PROVIDER")
	if t := os.Getenv("SKILLSCOPE_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			c.Timeout = d
		}
	}

	set(&c.Ollama.BaseURL, "SKILLSCOPE_OLLAMA_URL")
	set(&c.Ollama.Model, "SKILLSCOPE_OLLAMA_MODEL")

	set(&c.OpenAI.APIKey, "SKILLSCOPE_OPENAI_API_KEY")
	set(&c.OpenAI.Model, "SKILLSCOPE_OPENAI_MODEL")
	set(&c.OpenAI.BaseURL, "SKILLSCOPE_OPENAI_BASE_URL")

	set(&c.Anthropic.APIKey, "SKILLSCOPE_ANTHROPIC_API_KEY")
	set(&c.Anthropic.Model, "SKILLSCOPE_ANTHROPIC_MODEL")

	set(&c.Gemini.APIKey, "SKILLSCOPE_GEMINI_API_KEY")
	set(&c.Gemini.Model, "SKILLSCOPE_GEMINI_MODEL")
}

// Validate checks that the selected provider has its required settings.
func (c Config) Validate() error {
	switch c.Provider {
	case "ollama", "mock":
		return nil
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("SKILLSCOPE_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("SKILLSCOPE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("SKILLSCOPE_GEMINI_API_KEY is required for the gemini provider")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
