package testgen

import (
	"context"
	"math/rand/v2"

	"github.com/abhisek/skillscope/internal/llm"
)

// Generator produces one assessment question per skill.
type Generator interface {
	// Generate returns a TestSet with exactly one Question per input
	// skill, in input order. It always succeeds when skills are non-empty:
	// any provider failure or unusable output falls back to a templated
	// question for that skill.
	Generate(ctx context.Context, skillNames []string, domain string) TestSet
}

// LLMGenerator implements Generator using an llm.Provider, with the
// deterministic template pool as the unconditional fallback path.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	rng      *rand.Rand
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		config:   cfg,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewWithRand creates an LLMGenerator with a caller-supplied rng, so tests
// can pin the template selection and option shuffle.
func NewWithRand(provider llm.Provider, cfg Config, rng *rand.Rand) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, rng: rng}
}

// Generate requests one question per skill and parses each response block
// in isolation, so one garbled response only costs its own skill.
func (g *LLMGenerator) Generate(ctx context.Context, skillNames []string, domain string) TestSet {
	ctx = llm.WithPurpose(ctx, "question-gen")

	set := make(TestSet, 0, len(skillNames))
	for _, skill := range skillNames {
		set = append(set, g.questionFor(ctx, skill, domain))
	}
	return set
}

func (g *LLMGenerator) questionFor(ctx context.Context, skill, domain string) Question {
	reqCtx := ctx
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	resp, err := g.provider.Generate(reqCtx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(skill, domain)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return FallbackQuestion(skill, g.rng)
	}

	parsed := Parse(resp.Content)
	if len(parsed) == 0 {
		return FallbackQuestion(skill, g.rng)
	}

	q := parsed[0] // exactly one question was requested
	q.SourceSkill = skill
	return q
}
