package testgen

import "fmt"

// Question is a single multiple-choice question ready for display.
// A Question is only valid when CorrectAnswer exactly equals one of its
// Options; invalid questions are dropped at parse time, never surfaced.
type Question struct {
	// Text is the question prompt shown to the candidate.
	Text string `json:"question"`

	// Options holds 2-4 unique answer choices in presentation order
	// (lettered a-d in the UI).
	Options []string `json:"options"`

	// CorrectAnswer is the full text of the correct option, not its letter.
	CorrectAnswer string `json:"correct_answer"`

	// SourceSkill is the normalized skill this question was generated for.
	// Empty for questions parsed outside the generation pipeline.
	SourceSkill string `json:"source_skill,omitempty"`
}

// minOptions and maxOptions bound the option count per question.
const (
	minOptions = 2
	maxOptions = 4
)

// Validate checks the Question invariant. It is enforced at flush time by
// the parser and again before a TestSet is returned to a caller.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) < minOptions {
		return fmt.Errorf("question has %d options, need at least %d", len(q.Options), minOptions)
	}
	if len(q.Options) > maxOptions {
		return fmt.Errorf("question has %d options, max is %d", len(q.Options), maxOptions)
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt] {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
	}
	if q.CorrectAnswer == "" {
		return fmt.Errorf("no correct answer marked")
	}
	if !seen[q.CorrectAnswer] {
		return fmt.Errorf("correct answer %q is not one of the options", q.CorrectAnswer)
	}
	return nil
}

// CorrectIndex returns the position of the correct answer within Options,
// or -1 when the question is invalid.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

// TestSet is an ordered sequence of validated questions, one assessment's
// worth. Immutable once handed to a caller.
type TestSet []Question
