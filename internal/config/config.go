// Package config loads application configuration from an optional YAML
// file with environment variable overrides. Precedence: defaults, then
// file, then environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/skillscope/internal/llm"
	"github.com/abhisek/skillscope/internal/skills"
)

// Config is the resolved application configuration.
type Config struct {
	LLM    llm.Config
	Skills SkillsConfig
	Output OutputConfig
}

// SkillsConfig controls skill extraction.
type SkillsConfig struct {
	// Threshold is the minimum fuzzy match score (0-100).
	Threshold int
	// VocabularyPath optionally points to a custom skills vocabulary
	// JSON file. Empty means the built-in vocabulary.
	VocabularyPath string
}

// OutputConfig controls where artifacts are written.
type OutputConfig struct {
	Dir string
}

// fileConfig is the YAML shape of the config file.
type fileConfig struct {
	LLM struct {
		Provider string `yaml:"provider"`
		Timeout  string `yaml:"timeout"`
		Ollama   struct {
			BaseURL string `yaml:"base_url"`
			Model   string `yaml:"model"`
		} `yaml:"ollama"`
		OpenAI struct {
			APIKey  string `yaml:"api_key"`
			Model   string `yaml:"model"`
			BaseURL string `yaml:"base_url"`
		} `yaml:"openai"`
		Anthropic struct {
			APIKey string `yaml:"api_key"`
			Model  string `yaml:"model"`
		} `yaml:"anthropic"`
		Gemini struct {
			APIKey string `yaml:"api_key"`
			Model  string `yaml:"model"`
		} `yaml:"gemini"`
	} `yaml:"llm"`
	Skills struct {
		Threshold  *int   `yaml:"match_threshold"`
		Vocabulary string `yaml:"vocabulary"`
	} `yaml:"skills"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LLM: llm.DefaultConfig(),
		Skills: SkillsConfig{
			Threshold: skills.DefaultThreshold,
		},
		Output: OutputConfig{
			Dir: "output",
		},
	}
}

// Load resolves configuration: defaults, overlaid with the YAML file (if
// present), overlaid with environment variables. A missing file is not an
// error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	path, err := configPath()
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// configPath returns the config file path, or "" when none exists.
// SKILLSCOPE_CONFIG takes priority and must exist when set.
func configPath() (string, error) {
	if p := os.Getenv("SKILLSCOPE_CONFIG"); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("config file %s: %w", p, err)
		}
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", nil // no home dir, run on defaults
		}
		configHome = filepath.Join(home, ".config")
	}

	p := filepath.Join(configHome, "skillscope", "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return "", nil
	}
	return p, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.LLM.Provider != "" {
		cfg.LLM.Provider = fc.LLM.Provider
	}
	if fc.LLM.Timeout != "" {
		d, err := time.ParseDuration(fc.LLM.Timeout)
		if err != nil {
			return fmt.Errorf("config %s: llm.timeout: %w", path, err)
		}
		cfg.LLM.Timeout = d
	}
	if fc.LLM.Ollama.BaseURL != "" {
		cfg.LLM.Ollama.BaseURL = fc.LLM.Ollama.BaseURL
	}
	if fc.LLM.Ollama.Model != "" {
		cfg.LLM.Ollama.Model = fc.LLM.Ollama.Model
	}
	if fc.LLM.OpenAI.APIKey != "" {
		cfg.LLM.OpenAI.APIKey = fc.LLM.OpenAI.APIKey
	}
	if fc.LLM.OpenAI.Model != "" {
		cfg.LLM.OpenAI.Model = fc.LLM.OpenAI.Model
	}
	if fc.LLM.OpenAI.BaseURL != "" {
		cfg.LLM.OpenAI.BaseURL = fc.LLM.OpenAI.BaseURL
	}
	if fc.LLM.Anthropic.APIKey != "" {
		cfg.LLM.Anthropic.APIKey = fc.LLM.Anthropic.APIKey
	}
	if fc.LLM.Anthropic.Model != "" {
		cfg.LLM.Anthropic.Model = fc.LLM.Anthropic.Model
	}
	if fc.LLM.Gemini.APIKey != "" {
		cfg.LLM.Gemini.APIKey = fc.LLM.Gemini.APIKey
	}
	if fc.LLM.Gemini.Model != "" {
		cfg.LLM.Gemini.Model = fc.LLM.Gemini.Model
	}

	if fc.Skills.Threshold != nil {
		t := *fc.Skills.Threshold
		if t < 0 || t > 100 {
			return fmt.Errorf("config %s: skills.match_threshold must be 0-100, got %d", path, t)
		}
		cfg.Skills.Threshold = t
	}
	if fc.Skills.Vocabulary != "" {
		cfg.Skills.VocabularyPath = fc.Skills.Vocabulary
	}
	if fc.Output.Dir != "" {
		cfg.Output.Dir = fc.Output.Dir
	}
	return nil
}

// applyEnv overlays environment variables. LLM settings delegate to the
// llm package's own env overlay.
func applyEnv(cfg *Config) {
	cfg.LLM.ApplyEnv()

	if t := os.Getenv("SKILLSCOPE_MATCH_THRESHOLD"); t != "" {
		if v, err := strconv.Atoi(t); err == nil && v >= 0 && v <= 100 {
			cfg.Skills.Threshold = v
		}
	}
	if v := os.Getenv("SKILLSCOPE_VOCABULARY"); v != "" {
		cfg.Skills.VocabularyPath = v
	}
	if d := os.Getenv("SKILLSCOPE_OUTPUT_DIR"); d != "" {
		cfg.Output.Dir = d
	}
}
