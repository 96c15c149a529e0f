package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Vocabulary is the master list of canonical skill names. Entries carry the
// authoritative casing; identity is case-insensitive. Read-only after load.
type Vocabulary struct {
	entries []string
	byLower map[string]string
}

// NewVocabulary builds a Vocabulary from canonical skill names.
// Duplicate entries (case-insensitive) keep the first spelling seen.
func NewVocabulary(names []string) Vocabulary {
	v := Vocabulary{byLower: make(map[string]string, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		lower := strings.ToLower(name)
		if _, ok := v.byLower[lower]; ok {
			continue
		}
		v.byLower[lower] = name
		v.entries = append(v.entries, name)
	}
	return v
}

// Load reads a vocabulary from a JSON file of the form {"skills": [...]}.
// A missing or unreadable file is an error; callers that want the
// degrade-to-empty behavior should fall back to an empty Vocabulary.
func Load(path string) (Vocabulary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}
	var doc struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}
	return NewVocabulary(doc.Skills), nil
}

// Entries returns the canonical skill names in vocabulary order.
func (v Vocabulary) Entries() []string {
	return v.entries
}

// Canonical returns the authoritative casing for a name, matched
// case-insensitively.
func (v Vocabulary) Canonical(name string) (string, bool) {
	c, ok := v.byLower[strings.ToLower(name)]
	return c, ok
}

// Len returns the number of entries.
func (v Vocabulary) Len() int { return len(v.entries) }

// Default returns the built-in master vocabulary, used when no vocabulary
// file is configured.
func Default() Vocabulary {
	return NewVocabulary([]string{
		"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Go",
		"Rust", "Ruby", "PHP", "Kotlin", "Swift", "SQL", "HTML", "CSS",
		"React", "Angular", "Vue.js", "Node.js", "Django", "Flask",
		"Spring Boot", "Express", "FastAPI",
		"Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "CI/CD",
		"Git", "Linux", "Bash",
		"AWS", "Azure", "Google Cloud",
		"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka",
		"GraphQL", "REST APIs", "gRPC", "Microservices",
		"Machine Learning", "Deep Learning", "Data Analysis",
		"Pandas", "NumPy", "TensorFlow", "PyTorch", "NLP",
		"Agile", "Scrum", "Project Management",
	})
}
