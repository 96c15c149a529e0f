package testgen

import "strings"

// Parse recovers structured questions from loosely formatted generator
// output. The prompt requests an exact format but a local model drifts, so
// the parser accepts the superset of conventions observed in practice:
//
//	Question 1: ... | question: ... | Q: ...
//	a) text | A. text   (option letter, case-insensitive, '.' or ')')
//	Correct Answer: b | [Correct: B] | an option line ending in '*'
//
// Each question is validated when flushed (on the next question marker or
// at end of input); questions failing the invariant are dropped silently.
// Malformed input never panics and never returns an error: an empty result
// means no valid questions could be recovered.
func Parse(raw string) []Question {
	var out []Question
	var current *Question

	flush := func() {
		if current == nil {
			return
		}
		if current.Validate() == nil {
			out = append(out, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if text, ok := questionMarker(line); ok {
			flush()
			current = &Question{Text: text}
			continue
		}

		if opt, starred, ok := optionLine(line); ok {
			if current == nil {
				continue // stray option before any question marker
			}
			current.Options = append(current.Options, opt)
			if starred {
				current.CorrectAnswer = opt
			}
			continue
		}

		if letter, ok := correctMarker(line); ok && current != nil {
			idx := int(letter - 'a')
			if idx >= 0 && idx < len(current.Options) {
				current.CorrectAnswer = current.Options[idx]
			}
		}
	}

	flush()
	return out
}

// questionMarker reports whether the line opens a new question and returns
// the question text: everything after the first colon, or the whole line
// when there is none.
func questionMarker(line string) (string, bool) {
	lower := strings.ToLower(line)
	if !strings.HasPrefix(lower, "question") && !strings.HasPrefix(lower, "q:") {
		return "", false
	}
	if i := strings.Index(line, ":"); i >= 0 {
		return strings.TrimSpace(line[i+1:]), true
	}
	return line, true
}

// optionLine reports whether the line is a lettered option ("a) ...",
// "B. ..."). A trailing '*' marks the option itself as the correct answer.
func optionLine(line string) (text string, starred bool, ok bool) {
	if len(line) < 2 {
		return "", false, false
	}
	letter := line[0]
	if !strings.ContainsRune("ABCDabcd", rune(letter)) {
		return "", false, false
	}
	if line[1] != '.' && line[1] != ')' {
		return "", false, false
	}
	text = strings.TrimSpace(line[2:])
	if strings.HasSuffix(text, "*") {
		text = strings.TrimSpace(strings.TrimSuffix(text, "*"))
		starred = true
	}
	return text, starred, true
}

// correctMarker extracts the answer letter from a "Correct Answer: X" or
// "[Correct: X]" line. Returns the letter lowercased.
func correctMarker(line string) (byte, bool) {
	lower := strings.ToLower(line)

	rest := ""
	if i := strings.Index(lower, "correct answer:"); i >= 0 {
		rest = lower[i+len("correct answer:"):]
	} else if strings.HasPrefix(lower, "[correct:") {
		rest = lower[len("[correct:"):]
	} else {
		return 0, false
	}

	rest = strings.TrimSpace(strings.Trim(rest, " ]*."))
	if rest == "" {
		return 0, false
	}
	letter := rest[0]
	if letter < 'a' || letter > 'd' {
		return 0, false
	}
	return letter, true
}
