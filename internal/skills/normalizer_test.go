package skills

import (
	"slices"
	"testing"
)

func TestNormalize_DedupPreservesFirstSeenOrder(t *testing.T) {
	got := Normalize([]string{"Python", "python", "PYTHON"}, testVocab(), DefaultThreshold)
	want := []string{"Python"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_OrderIsDeterministic(t *testing.T) {
	got := Normalize([]string{"docker", "python", "docker", "sql"}, testVocab(), DefaultThreshold)
	want := []string{"Docker", "Python", "SQL"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_AliasBeforeFuzzy(t *testing.T) {
	got := Normalize([]string{"py"}, testVocab(), DefaultThreshold)
	want := []string{"Python"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_AliasIgnoresVocabularyAndThreshold(t *testing.T) {
	// Aliases resolve even with no vocabulary and an unreachable threshold.
	got := Normalize([]string{"js", "k8s"}, Vocabulary{}, 101)
	want := []string{"JavaScript", "Kubernetes"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_FuzzyMatchEmitsCanonicalCasing(t *testing.T) {
	got := Normalize([]string{"python programming"}, testVocab(), DefaultThreshold)
	want := []string{"Python"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_UnrecognizedDroppedSilently(t *testing.T) {
	got := Normalize([]string{"underwater basket weaving", "Python"}, testVocab(), DefaultThreshold)
	want := []string{"Python"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_BlankTokensSkipped(t *testing.T) {
	got := Normalize([]string{"", "   ", "\t", "sql"}, testVocab(), DefaultThreshold)
	want := []string{"SQL"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_EmptyVocabulary(t *testing.T) {
	// No vocabulary means no fuzzy matches are possible; result is empty,
	// never an error.
	got := Normalize([]string{"python", "docker"}, Vocabulary{}, DefaultThreshold)
	if len(got) != 0 {
		t.Errorf("Normalize with empty vocabulary = %v, want empty", got)
	}
}

func TestNormalize_AliasAndFuzzyDedupTogether(t *testing.T) {
	got := Normalize([]string{"py", "Python"}, testVocab(), DefaultThreshold)
	want := []string{"Python"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestVocabulary_Load(t *testing.T) {
	_, err := Load("testdata/does-not-exist.json")
	if err == nil {
		t.Fatal("expected error for missing vocabulary file")
	}
}

func TestVocabulary_DuplicateEntriesKeepFirstCasing(t *testing.T) {
	v := NewVocabulary([]string{"Python", "PYTHON", "python"})
	if v.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", v.Len())
	}
	if c, _ := v.Canonical("python"); c != "Python" {
		t.Errorf("Canonical = %q, want Python", c)
	}
}
