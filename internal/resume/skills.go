package resume

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ParseManualSkills splits a comma-separated skill list, dropping blanks.
func ParseManualSkills(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// LoadSkillsFile reads raw skill names from a JSON file. Accepted shapes:
// a bare array, {"skills": [...]}, or {"raw_skills": [...]}.
func LoadSkillsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skills file: %w", err)
	}

	var bare []string
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Skills    []string `json:"skills"`
		RawSkills []string `json:"raw_skills"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parse skills file: %w", err)
	}
	if len(wrapped.Skills) > 0 {
		return wrapped.Skills, nil
	}
	return wrapped.RawSkills, nil
}
