package assessment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/skillscope/internal/llm"
)

// defaultDomains is the static fallback when the model is unavailable or
// returns nothing usable.
var defaultDomains = []string{"General IT", "Software Development", "IT Operations"}

const (
	minDomains = 2
	maxDomains = 3
)

// Suggester proposes career domains from an evaluation. Like test
// generation, it degrades to a fixed answer rather than failing.
type Suggester struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewSuggester creates a Suggester. A nil provider always yields the
// static fallback.
func NewSuggester(provider llm.Provider, timeout time.Duration) *Suggester {
	return &Suggester{provider: provider, timeout: timeout}
}

// Suggest returns 2-3 suitable career domains for the evaluation.
// Never fails and never returns fewer than two entries.
func (s *Suggester) Suggest(ctx context.Context, eval Evaluation) []string {
	if s.provider == nil {
		return defaultDomains
	}

	ctx = llm.WithPurpose(ctx, "domain-suggest")
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSuggestPrompt(eval)},
		},
		MaxTokens:   128,
		Temperature: 0.3,
	})
	if err != nil {
		return defaultDomains
	}

	domains := parseDomains(resp.Content)
	if len(domains) == 0 {
		return defaultDomains
	}
	// Pad from the fallback list, skipping domains the model already named.
	for _, d := range defaultDomains {
		if len(domains) >= minDomains {
			break
		}
		if !containsFold(domains, d) {
			domains = append(domains, d)
		}
	}
	return domains
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func buildSuggestPrompt(eval Evaluation) string {
	var b strings.Builder

	b.WriteString("Based on the following skill assessment results, suggest 2-3 most suitable IT career domains.\n")
	b.WriteString("Only return the domain names, one per line. No numbering or extra text.\n\n")
	b.WriteString("Assessment:\n")
	fmt.Fprintf(&b, "- Level: %s\n", eval.Level)
	fmt.Fprintf(&b, "- Strengths: %s\n", strings.Join(eval.Strengths, ", "))
	fmt.Fprintf(&b, "- Weak Areas: %s\n", strings.Join(eval.WeakAreas, ", "))
	fmt.Fprintf(&b, "- Score: %d/%d\n\n", eval.Score, eval.Total)
	b.WriteString("Suggested domains:")

	return b.String()
}

// parseDomains keeps non-blank lines, capped at maxDomains.
func parseDomains(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*0123456789. "))
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == maxDomains {
			break
		}
	}
	return out
}
