package testgen

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/skillscope/internal/llm"
)

func wellFormedBlock() string {
	return "Question 1: What does SELECT do?\n" +
		"a) Reads rows\nb) Deletes rows\nc) Creates tables\nd) Grants access\n" +
		"Correct Answer: a\n"
}

func TestGenerate_OneQuestionPerSkillInOrder(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: wellFormedBlock()},
		llm.MockResponse{Content: wellFormedBlock()},
		llm.MockResponse{Content: wellFormedBlock()},
	)
	gen := NewWithRand(mock, DefaultConfig(), testRand(7))

	skills := []string{"SQL", "Python", "Docker"}
	set := gen.Generate(context.Background(), skills, "Professional Skills")

	if len(set) != len(skills) {
		t.Fatalf("expected %d questions, got %d", len(skills), len(set))
	}
	for i, q := range set {
		if q.SourceSkill != skills[i] {
			t.Errorf("question %d: source skill = %q, want %q", i, q.SourceSkill, skills[i])
		}
		if err := q.Validate(); err != nil {
			t.Errorf("question %d invalid: %v", i, err)
		}
	}
}

func TestGenerate_FallbackOnProviderError(t *testing.T) {
	// Empty mock queue: every call fails with ErrUnavailable.
	mock := llm.NewMockProvider()
	gen := NewWithRand(mock, DefaultConfig(), testRand(7))

	skills := []string{"Python", "Go", "Kubernetes", "SQL"}
	set := gen.Generate(context.Background(), skills, "Professional Skills")

	if len(set) != len(skills) {
		t.Fatalf("expected %d questions, got %d", len(skills), len(set))
	}
	for i, q := range set {
		if err := q.Validate(); err != nil {
			t.Errorf("fallback question %d invalid: %v", i, err)
		}
		if q.SourceSkill != skills[i] {
			t.Errorf("question %d: source skill = %q, want %q", i, q.SourceSkill, skills[i])
		}
	}
}

func TestGenerate_FallbackOnTimeout(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrTimeout{Err: errors.New("deadline exceeded")}},
	)
	gen := NewWithRand(mock, DefaultConfig(), testRand(7))

	set := gen.Generate(context.Background(), []string{"Redis"}, "Professional Skills")
	if len(set) != 1 {
		t.Fatalf("expected 1 question, got %d", len(set))
	}
	if err := set[0].Validate(); err != nil {
		t.Errorf("fallback question invalid: %v", err)
	}
}

func TestGenerate_FallbackOnUnparseableOutput(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "I'm sorry, I can't produce a question right now."},
	)
	gen := NewWithRand(mock, DefaultConfig(), testRand(7))

	set := gen.Generate(context.Background(), []string{"Git"}, "Professional Skills")
	if len(set) != 1 {
		t.Fatalf("expected 1 question, got %d", len(set))
	}
	if err := set[0].Validate(); err != nil {
		t.Errorf("fallback question invalid: %v", err)
	}
	if set[0].SourceSkill != "Git" {
		t.Errorf("source skill = %q", set[0].SourceSkill)
	}
}

func TestGenerate_NoSkillsNoQuestions(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := NewWithRand(mock, DefaultConfig(), testRand(7))

	set := gen.Generate(context.Background(), nil, "Professional Skills")
	if len(set) != 0 {
		t.Fatalf("expected empty test set, got %d questions", len(set))
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestGenerate_PromptCarriesSkillAndDomain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: wellFormedBlock()})
	gen := NewWithRand(mock, DefaultConfig(), testRand(7))

	gen.Generate(context.Background(), []string{"Terraform"}, "Cloud Engineering")

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Terraform") || !strings.Contains(prompt, "Cloud Engineering") {
		t.Errorf("prompt missing skill or domain:\n%s", prompt)
	}
}

func TestGenerate_AppliesPerCallTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 10 * time.Millisecond

	slow := &slowProvider{delay: time.Second}
	gen := NewWithRand(slow, cfg, testRand(7))

	start := time.Now()
	set := gen.Generate(context.Background(), []string{"Python"}, "Professional Skills")
	elapsed := time.Since(start)

	if len(set) != 1 {
		t.Fatalf("expected 1 fallback question, got %d", len(set))
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("generation did not respect timeout, took %s", elapsed)
	}
}

// slowProvider blocks until the context is done.
type slowProvider struct {
	delay time.Duration
}

func (s *slowProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	select {
	case <-ctx.Done():
		return nil, &llm.ErrTimeout{Err: ctx.Err()}
	case <-time.After(s.delay):
		return &llm.Response{Content: "too late"}, nil
	}
}

func (s *slowProvider) ModelID() string { return "slow" }
