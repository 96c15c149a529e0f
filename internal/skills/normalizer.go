package skills

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Normalize resolves raw skill tokens to canonical vocabulary entries.
//
// Per token, in order: strip whitespace (skip if empty), look up the
// lowercased token in the alias table, otherwise fuzzy-match it against the
// vocabulary and take the best entry scoring at or above threshold. Tokens
// that resolve nowhere are dropped silently; unrecognized skills are
// filtered out by design.
//
// The result is deduplicated preserving first-seen order, which keeps test
// generation downstream reproducible. An empty vocabulary means no fuzzy
// matches are possible; only aliases can still resolve.
func Normalize(raw []string, vocab Vocabulary, threshold int) []string {
	var out []string
	seen := make(map[string]bool, len(raw))

	emit := func(canonical string) {
		key := strings.ToLower(canonical)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, canonical)
	}

	for _, token := range raw {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		lower := strings.ToLower(token)

		if canonical, ok := ResolveAlias(lower); ok {
			emit(canonical)
			continue
		}

		// Exact vocabulary hit short-circuits the fuzzy scan.
		if canonical, ok := vocab.Canonical(lower); ok {
			emit(canonical)
			continue
		}

		if canonical, ok := bestMatch(lower, vocab, threshold); ok {
			emit(canonical)
		}
	}
	return out
}

// bestMatch returns the highest-scoring vocabulary entry for a lowercased
// token, if any entry clears the threshold. Ties keep vocabulary order.
func bestMatch(lower string, vocab Vocabulary, threshold int) (string, bool) {
	best := ""
	bestScore := 0
	for _, entry := range vocab.Entries() {
		score := fuzzy.PartialRatio(strings.ToLower(entry), lower)
		if score >= threshold && score > bestScore {
			best = entry
			bestScore = score
		}
	}
	return best, best != ""
}
