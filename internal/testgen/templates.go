package testgen

import (
	"math/rand/v2"
	"strings"
)

// fallbackTemplate is one deterministic question shape used when the
// generator is unreachable or its output is unusable. "{skill}" in the
// question or an option is replaced with the skill name.
type fallbackTemplate struct {
	question string
	options  []string
	correct  int // index into options before shuffling
}

var fallbackTemplates = []fallbackTemplate{
	{
		question: "What is a primary use case for {skill} in modern software development?",
		options: []string{
			"Building scalable applications with {skill}",
			"Managing version control for {skill} projects",
			"Debugging {skill} code efficiently",
			"Deploying {skill} applications to production",
		},
		correct: 0,
	},
	{
		question: "Which of the following best describes where {skill} fits in a project?",
		options: []string{
			"A core part of the implementation and delivery workflow",
			"A replacement for project planning",
			"A tool used only during interviews",
			"A deprecated technology with no current use",
		},
		correct: 0,
	},
	{
		question: "What is the main advantage of being proficient in {skill}?",
		options: []string{
			"Improved ability to design and maintain real systems",
			"It removes the need for testing",
			"It guarantees bug-free software",
			"It makes documentation unnecessary",
		},
		correct: 0,
	},
}

// FallbackQuestion builds a templated question for a skill. Options are
// shuffled and the correct answer is tracked through the shuffle, so the
// invariant holds for any rng state. Never fails.
func FallbackQuestion(skill string, rng *rand.Rand) Question {
	tmpl := fallbackTemplates[rng.IntN(len(fallbackTemplates))]

	expand := func(s string) string {
		return strings.ReplaceAll(s, "{skill}", skill)
	}

	options := make([]string, len(tmpl.options))
	for i, opt := range tmpl.options {
		options[i] = expand(opt)
	}
	correct := options[tmpl.correct]

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		Text:          expand(tmpl.question),
		Options:       options,
		CorrectAnswer: correct,
		SourceSkill:   skill,
	}
}
