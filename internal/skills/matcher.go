package skills

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the minimum partial-ratio score (0-100) for a skill
// to count as found. Kept configurable so boundary behavior is testable.
const DefaultThreshold = 85

// Match fuzzy-matches free text against the vocabulary and returns the set
// of canonical skill names found, in vocabulary order.
//
// Each vocabulary entry is scored with a partial-ratio alignment against the
// full text: 100 means the entry appears as an exact contiguous substring,
// lower scores credit near matches with surrounding words, punctuation, or
// inflection. Short entries can false-positive on common words; that
// tradeoff is deliberate, resumes rarely quote skill names verbatim.
//
// Empty text or an empty vocabulary yields an empty result, not an error.
// Pure function over its inputs.
func Match(text string, vocab Vocabulary, threshold int) []string {
	text = strings.TrimSpace(text)
	if text == "" || vocab.Len() == 0 {
		return nil
	}

	lowered := strings.ToLower(text)

	var found []string
	for _, entry := range vocab.Entries() {
		score := fuzzy.PartialRatio(strings.ToLower(entry), lowered)
		if score >= threshold {
			found = append(found, entry)
		}
	}
	return found
}
