package testgen

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestFallbackQuestion_InvariantHoldsForAnySeed(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		q := FallbackQuestion("Python", testRand(seed))
		if err := q.Validate(); err != nil {
			t.Fatalf("seed %d: invalid fallback question: %v", seed, err)
		}
		if q.SourceSkill != "Python" {
			t.Fatalf("seed %d: source skill = %q", seed, q.SourceSkill)
		}
		if len(q.Options) != 4 {
			t.Fatalf("seed %d: %d options", seed, len(q.Options))
		}
	}
}

func TestFallbackQuestion_SkillSubstituted(t *testing.T) {
	q := FallbackQuestion("Kubernetes", testRand(1))
	found := strings.Contains(q.Text, "Kubernetes")
	for _, opt := range q.Options {
		found = found || strings.Contains(opt, "Kubernetes")
	}
	if !found {
		t.Errorf("skill name missing from question and options: %+v", q)
	}
}

func TestFallbackQuestion_CorrectAnswerTracksShuffle(t *testing.T) {
	// The correct answer must point at the same option text no matter
	// where the shuffle lands it.
	for seed := uint64(0); seed < 20; seed++ {
		q := FallbackQuestion("SQL", testRand(seed))
		if q.CorrectIndex() < 0 {
			t.Fatalf("seed %d: correct answer %q not in options %v", seed, q.CorrectAnswer, q.Options)
		}
	}
}
