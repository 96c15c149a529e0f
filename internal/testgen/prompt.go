package testgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write multiple-choice questions for professional skill assessments.

Rules:
- Generate exactly ONE technical question about the given skill.
- Provide exactly 4 answer options labeled a, b, c, d.
- Mark the correct answer clearly.
- Make the question challenging and specific to the skill. Focus on practical knowledge, not just definitions.`

// buildUserMessage constructs the per-skill generation request. The format
// block is load-bearing: the parser's tolerance is a superset of this
// contract, but the closer the model sticks to it the better the yield.
func buildUserMessage(skill, domain string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate ONE multiple-choice question to test knowledge of %s in %s.\n\n", skill, domain)
	b.WriteString("Format your response EXACTLY like this:\n")
	b.WriteString("Question: [Your question here]\n")
	b.WriteString("a) [Option A]\n")
	b.WriteString("b) [Option B]\n")
	b.WriteString("c) [Option C]\n")
	b.WriteString("d) [Option D]\n")
	b.WriteString("Correct Answer: [letter]\n\n")
	b.WriteString("Generate the question now:")

	return b.String()
}
