package resume

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestExtractText_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "Experienced developer. Skills: Python, SQL, Docker."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := ExtractText(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != content {
		t.Errorf("text = %q, want %q", got, content)
	}
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.exe")
	if err := os.WriteFile(path, []byte("binary"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := ExtractText(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	if _, err := ExtractText(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractTextFrom_ExtensionlessIsPlainText(t *testing.T) {
	got, err := ExtractTextFrom("notes", strings.NewReader("Go, Kubernetes"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "Go, Kubernetes" {
		t.Errorf("text = %q", got)
	}
}

func TestExtractTextFrom_UnsupportedFormat(t *testing.T) {
	if _, err := ExtractTextFrom("resume.exe", strings.NewReader("binary")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestStripTags(t *testing.T) {
	in := `<w:p><w:r><w:t>Python</w:t></w:r><w:r><w:t>SQL</w:t></w:r></w:p>`
	got := stripTags(in)
	if got != "Python SQL" {
		t.Errorf("stripTags = %q, want %q", got, "Python SQL")
	}
}

func TestParseManualSkills(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Python, SQL, Docker", []string{"Python", "SQL", "Docker"}},
		{"  Go ,, JavaScript ,", []string{"Go", "JavaScript"}},
		{"", nil},
		{" , , ", nil},
		{"single", []string{"single"}},
	}
	for _, tt := range tests {
		got := ParseManualSkills(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseManualSkills(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadSkillsFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"bare.json", `["Python", "SQL"]`, []string{"Python", "SQL"}},
		{"skills.json", `{"skills": ["Go"]}`, []string{"Go"}},
		{"raw.json", `{"raw_skills": ["Docker", "AWS"]}`, []string{"Docker", "AWS"}},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		got, err := LoadSkillsFile(path)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLoadSkillsFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadSkillsFile(path); err == nil {
		t.Fatal("expected error for malformed json")
	}
}
