package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// OllamaProvider implements Provider against a local Ollama server using
// its native /api/generate endpoint. This is the production default: the
// whole pipeline must work offline against a small local model.
type OllamaProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOllamaProvider creates a new Ollama provider.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &OllamaProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   cfg.Model,
		// Deadlines come from the request context; no client timeout here.
		httpClient: &http.Client{},
	}, nil
}

type ollamaGenerateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaGenerateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	DoneReason      string `json:"done_reason"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	body := ollamaGenerateRequest{
		Model:  p.model,
		Prompt: joinUserMessages(req.Messages),
		System: req.System,
		Stream: false,
		Options: map[string]any{
			"temperature": req.Temperature,
		},
	}
	if req.MaxTokens > 0 {
		body.Options["num_predict"] = req.MaxTokens
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer httpResp.Body.Close()

	switch {
	case httpResp.StatusCode == http.StatusTooManyRequests:
		return nil, &ErrRateLimit{Err: fmt.Errorf("ollama returned 429")}
	case httpResp.StatusCode >= 500:
		return nil, &ErrUnavailable{Err: fmt.Errorf("ollama returned %d", httpResp.StatusCode)}
	case httpResp.StatusCode != http.StatusOK:
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("ollama returned %d", httpResp.StatusCode)}
	}

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, mapTransportError(err)
	}

	var out ollamaGenerateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ErrInvalidResponse{Content: string(raw), Err: fmt.Errorf("decode response: %w", err)}
	}
	if strings.TrimSpace(out.Response) == "" {
		return nil, &ErrInvalidResponse{Content: string(raw), Err: fmt.Errorf("empty response text")}
	}

	stopReason := "end"
	if out.DoneReason == "length" {
		stopReason = "max_tokens"
	}

	return &Response{
		Content: out.Response,
		Usage: Usage{
			InputTokens:  out.PromptEvalCount,
			OutputTokens: out.EvalCount,
			TotalTokens:  out.PromptEvalCount + out.EvalCount,
		},
		Model:      out.Model,
		StopReason: stopReason,
	}, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.model
}

// Ping checks that the Ollama server is reachable and reports whether the
// configured model is pulled.
func (p *OllamaProvider) Ping(ctx context.Context) (modelAvailable bool, err error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return false, mapTransportError(err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return false, &ErrUnavailable{Err: fmt.Errorf("ollama returned %d", httpResp.StatusCode)}
	}

	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&tags); err != nil {
		return false, &ErrInvalidResponse{Err: fmt.Errorf("decode tags: %w", err)}
	}

	for _, m := range tags.Models {
		if m.Name == p.model || strings.HasPrefix(m.Name, p.model+":") {
			return true, nil
		}
	}
	return false, nil
}

// joinUserMessages flattens the conversation into a single prompt string.
// Ollama's generate endpoint is single-turn.
func joinUserMessages(msgs []Message) string {
	var b strings.Builder
	for _, m := range msgs {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.Content)
	}
	return b.String()
}

// mapTransportError classifies HTTP transport failures into the typed
// error taxonomy. Deadline expiry is a timeout; everything else at this
// layer means the server could not be reached.
func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ErrTimeout{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ErrTimeout{Err: err}
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return &ErrUnavailable{Err: err}
}
