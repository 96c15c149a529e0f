package assessment

import (
	"fmt"
	"strings"
)

// ProfileSummary builds a short candidate blurb from normalized skills.
// Intentionally template-based: the summary is cosmetic and must work
// with the generator offline.
func ProfileSummary(skills []string) string {
	if len(skills) == 0 {
		return "Candidate profile is currently incomplete. Please add skills to generate a profile summary."
	}
	return fmt.Sprintf(
		"A motivated professional with skills in %s. Quick learner with strong problem-solving abilities and a passion for continuous improvement.",
		strings.Join(skills, ", "),
	)
}
