package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhisek/skillscope/internal/llm"
)

func ollamaConfig(baseURL string) llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Ollama.BaseURL = baseURL
	return cfg
}

func TestCheckOllama_SilentWhenModelPulled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"models": [{"name": "phi3:mini"}]}`))
	}))
	defer srv.Close()

	var buf strings.Builder
	checkOllama(context.Background(), ollamaConfig(srv.URL), &buf)
	if buf.Len() != 0 {
		t.Errorf("unexpected warning: %q", buf.String())
	}
}

func TestCheckOllama_WarnsWhenModelMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models": [{"name": "llama3:8b"}]}`))
	}))
	defer srv.Close()

	var buf strings.Builder
	checkOllama(context.Background(), ollamaConfig(srv.URL), &buf)
	if !strings.Contains(buf.String(), "ollama pull phi3:mini") {
		t.Errorf("warning = %q, want pull hint", buf.String())
	}
}

func TestCheckOllama_WarnsWhenServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	var buf strings.Builder
	checkOllama(context.Background(), ollamaConfig(srv.URL), &buf)
	if !strings.Contains(buf.String(), "unreachable") {
		t.Errorf("warning = %q, want unreachable", buf.String())
	}
}

func TestCheckOllama_SkipsOtherProviders(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Provider = "mock"

	var buf strings.Builder
	checkOllama(context.Background(), cfg, &buf)
	if buf.Len() != 0 {
		t.Errorf("unexpected warning: %q", buf.String())
	}
}
