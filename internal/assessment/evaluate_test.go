package assessment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/skillscope/internal/llm"
)

func TestEvaluate_StrengthsAndWeakAreas(t *testing.T) {
	set := sampleTest()
	result := Score(set, []string{"Reads rows", "A thread", "A template for containers"})

	eval := Evaluate(set, result)

	assert.Equal(t, []string{"SQL", "Docker"}, eval.Strengths)
	assert.Equal(t, []string{"Go"}, eval.WeakAreas)
	assert.Equal(t, 2, eval.Score)
	assert.Equal(t, 3, eval.Total)
}

func TestEvaluate_Levels(t *testing.T) {
	cases := []struct {
		correct int
		total   int
		want    Level
	}{
		{0, 3, LevelBeginner},
		{1, 3, LevelBeginner},
		{2, 3, LevelIntermediate},
		{3, 3, LevelAdvanced},
		{4, 5, LevelAdvanced},
		{0, 0, LevelBeginner},
	}
	for _, tc := range cases {
		got := levelFor(ScoreResult{Total: tc.total, Correct: tc.correct}.Percentage())
		assert.Equal(t, tc.want, got, "correct=%d total=%d", tc.correct, tc.total)
	}
}

func TestSuggest_FallbackWhenProviderFails(t *testing.T) {
	s := NewSuggester(llm.NewMockProvider(), 0) // empty queue: always errors

	domains := s.Suggest(context.Background(), Evaluation{Level: LevelBeginner})

	assert.Equal(t, defaultDomains, domains)
}

func TestSuggest_NilProvider(t *testing.T) {
	s := NewSuggester(nil, 0)

	domains := s.Suggest(context.Background(), Evaluation{})

	assert.Equal(t, defaultDomains, domains)
}

func TestSuggest_ParsesModelOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "Data Engineering\nBackend Development\nDevOps\nExtra One\n",
	})
	s := NewSuggester(mock, 0)

	domains := s.Suggest(context.Background(), Evaluation{Level: LevelAdvanced})

	assert.Equal(t, []string{"Data Engineering", "Backend Development", "DevOps"}, domains)
}

func TestSuggest_PadsShortAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "Cloud Engineering\n"})
	s := NewSuggester(mock, 0)

	domains := s.Suggest(context.Background(), Evaluation{})

	assert.Len(t, domains, 2)
	assert.Equal(t, "Cloud Engineering", domains[0])
}

func TestSuggest_PaddingSkipsDuplicates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "general it\n"})
	s := NewSuggester(mock, 0)

	domains := s.Suggest(context.Background(), Evaluation{})

	assert.Equal(t, []string{"general it", "Software Development"}, domains)
}

func TestProfileSummary(t *testing.T) {
	assert.Contains(t, ProfileSummary([]string{"Python", "SQL"}), "Python, SQL")
	assert.Contains(t, ProfileSummary(nil), "incomplete")
}
