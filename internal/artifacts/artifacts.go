// Package artifacts persists assessment outputs as JSON files so a run's
// results can be inspected, diffed and re-loaded later.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/skillscope/internal/assessment"
	"github.com/abhisek/skillscope/internal/testgen"
)

// Artifact file names within the output directory.
const (
	RawSkillsFile  = "user_skills.json"
	SkillsFile     = "normalized_skills.json"
	TestFile       = "generated_test.json"
	EvaluationFile = "evaluation.json"
	DomainsFile    = "domain_suggestions.json"
	SummaryFile    = "profile_summary.txt"
)

type skillsDoc struct {
	NormalizedSkills []string `json:"normalized_skills"`
}

type rawSkillsDoc struct {
	RawSkills []string `json:"raw_skills"`
}

type testDoc struct {
	Questions []testgen.Question `json:"questions"`
}

type domainsDoc struct {
	Domains []string `json:"domains"`
}

// SaveRawSkills writes the skills as entered, before normalization. The
// format matches what LoadSkillsFile in the resume package reads back.
func SaveRawSkills(dir string, skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	return writeJSON(filepath.Join(dir, RawSkillsFile), rawSkillsDoc{RawSkills: skills})
}

// SaveSkills writes normalized skills to dir.
func SaveSkills(dir string, skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	return writeJSON(filepath.Join(dir, SkillsFile), skillsDoc{NormalizedSkills: skills})
}

// LoadSkills reads and validates a normalized skills artifact.
func LoadSkills(path string) ([]string, error) {
	var doc skillsDoc
	if err := readJSON(path, "skills", &doc); err != nil {
		return nil, err
	}
	return doc.NormalizedSkills, nil
}

// SaveTestSet writes a generated test to dir.
func SaveTestSet(dir string, set testgen.TestSet) error {
	return writeJSON(filepath.Join(dir, TestFile), testDoc{Questions: set})
}

// LoadTestSet reads and validates a test artifact. Questions that fail
// the structural invariant are dropped, same as during parsing.
func LoadTestSet(path string) (testgen.TestSet, error) {
	var doc testDoc
	if err := readJSON(path, "test", &doc); err != nil {
		return nil, err
	}
	var set testgen.TestSet
	for _, q := range doc.Questions {
		if q.Validate() == nil {
			set = append(set, q)
		}
	}
	return set, nil
}

// SaveEvaluation writes an evaluation to dir.
func SaveEvaluation(dir string, eval assessment.Evaluation) error {
	return writeJSON(filepath.Join(dir, EvaluationFile), eval)
}

// LoadEvaluation reads and validates an evaluation artifact.
func LoadEvaluation(path string) (assessment.Evaluation, error) {
	var eval assessment.Evaluation
	if err := readJSON(path, "evaluation", &eval); err != nil {
		return assessment.Evaluation{}, err
	}
	return eval, nil
}

// SaveDomains writes suggested career domains to dir.
func SaveDomains(dir string, domains []string) error {
	return writeJSON(filepath.Join(dir, DomainsFile), domainsDoc{Domains: domains})
}

// SaveSummary writes the profile summary as plain text.
func SaveSummary(dir, summary string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	path := filepath.Join(dir, SummaryFile)
	if err := os.WriteFile(path, []byte(summary+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readJSON(path, schemaName string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := validate(schemaName, data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
