package llm

import (
	"testing"
	"time"
)

func TestApplyEnv_OverlaysOnlySetVariables(t *testing.T) {
	t.Setenv("SKILLSCOPE_OLLAMA_MODEL", "env-model")
	t.Setenv("SKILLSCOPE_LLM_TIMEOUT", "15s")

	cfg := DefaultConfig()
	cfg.Ollama.BaseURL = "http://file-host:11434"
	cfg.ApplyEnv()

	if cfg.Ollama.Model != "env-model" {
		t.Errorf("model = %q, want env-model", cfg.Ollama.Model)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("timeout = %v, want 15s", cfg.Timeout)
	}
	// A sibling field set by another source survives the overlay.
	if cfg.Ollama.BaseURL != "http://file-host:11434" {
		t.Errorf("base url = %q, want file value", cfg.Ollama.BaseURL)
	}
	if cfg.Provider != "ollama" {
		t.Errorf("provider = %q, want default", cfg.Provider)
	}
}

func TestApplyEnv_IgnoresUnparseableTimeout(t *testing.T) {
	t.Setenv("SKILLSCOPE_LLM_TIMEOUT", "soon")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if cfg.Timeout != 60*time.Second {
		t.Errorf("timeout = %v, want default 60s", cfg.Timeout)
	}
}

func TestValidate_RequiresProviderKeys(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("ollama default should validate: %v", err)
	}

	cfg.Provider = "openai"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for openai without API key")
	}
	cfg.OpenAI.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("openai with key should validate: %v", err)
	}

	cfg.Provider = "nonesuch"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
