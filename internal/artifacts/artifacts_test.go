package artifacts

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/abhisek/skillscope/internal/assessment"
	"github.com/abhisek/skillscope/internal/resume"
	"github.com/abhisek/skillscope/internal/testgen"
)

func TestSaveRawSkills_ReadableAsSkillsFile(t *testing.T) {
	dir := t.TempDir()
	raw := []string{"py", "k8s", "postgres"}

	if err := SaveRawSkills(dir, raw); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := resume.LoadSkillsFile(filepath.Join(dir, RawSkillsFile))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, raw) {
		t.Errorf("raw skills = %v, want %v", got, raw)
	}
}

func TestSkillsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	skills := []string{"Python", "SQL", "Docker"}

	if err := SaveSkills(dir, skills); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadSkills(filepath.Join(dir, SkillsFile))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, skills) {
		t.Errorf("skills = %v, want %v", got, skills)
	}
}

func TestSaveSkills_NilBecomesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	if err := SaveSkills(dir, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, SkillsFile))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) == "" || string(data) == "null" {
		t.Errorf("unexpected content: %q", data)
	}
	got, err := LoadSkills(filepath.Join(dir, SkillsFile))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("skills = %v, want empty", got)
	}
}

func TestLoadSkills_RejectsWrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"skills": ["Python"]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadSkills(path); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestTestSetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	set := testgen.TestSet{
		{
			Text:          "What is a primary key?",
			Options:       []string{"A unique row identifier", "A table name"},
			CorrectAnswer: "A unique row identifier",
			SourceSkill:   "SQL",
		},
	}

	if err := SaveTestSet(dir, set); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadTestSet(filepath.Join(dir, TestFile))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, set) {
		t.Errorf("test set = %+v, want %+v", got, set)
	}
}

func TestLoadTestSet_DropsInvalidQuestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	content := `{"questions": [
		{"question": "ok?", "options": ["a", "b"], "correct_answer": "a"},
		{"question": "broken?", "options": ["a", "b"], "correct_answer": "c"}
	]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	set, err := LoadTestSet(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(set) != 1 {
		t.Fatalf("questions = %d, want 1", len(set))
	}
	if set[0].Text != "ok?" {
		t.Errorf("kept question = %q", set[0].Text)
	}
}

func TestLoadTestSet_RejectsTooManyOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	content := `{"questions": [
		{"question": "q?", "options": ["a","b","c","d","e"], "correct_answer": "a"}
	]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadTestSet(path); err == nil {
		t.Fatal("expected schema validation error for 5 options")
	}
}

func TestEvaluationRoundTrip(t *testing.T) {
	dir := t.TempDir()
	eval := assessment.Evaluation{
		Level:     assessment.LevelIntermediate,
		Score:     2,
		Total:     3,
		Strengths: []string{"SQL", "Docker"},
		WeakAreas: []string{"Go"},
	}

	if err := SaveEvaluation(dir, eval); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadEvaluation(filepath.Join(dir, EvaluationFile))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, eval) {
		t.Errorf("evaluation = %+v, want %+v", got, eval)
	}
}

func TestLoadEvaluation_RejectsUnknownLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eval.json")
	content := `{"level": "Expert", "score": 1, "total_questions": 1}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadEvaluation(path); err == nil {
		t.Fatal("expected schema validation error for unknown level")
	}
}

func TestSaveDomainsAndSummary(t *testing.T) {
	dir := t.TempDir()

	if err := SaveDomains(dir, []string{"Data Engineering", "DevOps"}); err != nil {
		t.Fatalf("save domains: %v", err)
	}
	if err := SaveSummary(dir, "A motivated professional."); err != nil {
		t.Fatalf("save summary: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SummaryFile))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if string(data) != "A motivated professional.\n" {
		t.Errorf("summary = %q", data)
	}
}
