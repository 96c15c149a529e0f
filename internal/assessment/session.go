package assessment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skillscope/internal/testgen"
)

// Session holds one assessment run: the generated test and the answers
// collected so far. It is an explicit request-scoped value passed by the
// caller, never a process singleton; concurrent users each get their own.
type Session struct {
	ID        uuid.UUID
	Domain    string
	Skills    []string
	Test      testgen.TestSet
	StartedAt time.Time

	answers []string
}

// NewSession creates a session for a generated test set.
func NewSession(domain string, skills []string, test testgen.TestSet) *Session {
	answers := make([]string, len(test))
	for i := range answers {
		answers[i] = NotAnswered
	}
	return &Session{
		ID:        uuid.New(),
		Domain:    domain,
		Skills:    skills,
		Test:      test,
		StartedAt: time.Now(),
		answers:   answers,
	}
}

// Answer records the candidate's answer for question i.
func (s *Session) Answer(i int, answer string) error {
	if i < 0 || i >= len(s.answers) {
		return fmt.Errorf("question index %d out of range (test has %d questions)", i, len(s.answers))
	}
	s.answers[i] = answer
	return nil
}

// Answers returns a copy of the collected answers, NotAnswered for skipped
// questions.
func (s *Session) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// Score grades the session as answered so far.
func (s *Session) Score() ScoreResult {
	return Score(s.Test, s.answers)
}
