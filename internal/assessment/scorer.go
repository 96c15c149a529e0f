package assessment

import "github.com/abhisek/skillscope/internal/testgen"

// NotAnswered is the sentinel for a question the candidate skipped.
// It is counted as incorrect, never treated as an error.
const NotAnswered = ""

// QuestionResult records the outcome for a single question.
type QuestionResult struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// ScoreResult is the graded outcome of a test. Derived from the TestSet
// and answers; never the source of truth beyond the caller's use.
type ScoreResult struct {
	Total       int              `json:"total"`
	Correct     int              `json:"correct"`
	PerQuestion []QuestionResult `json:"per_question"`
}

// Percentage returns the score as a percentage, 0 for an empty test.
func (r ScoreResult) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Score grades answers against a test set. answers[i] corresponds
// positionally to set[i]; missing trailing slots count as NotAnswered,
// surplus answers are ignored. Comparison is exact string equality: the
// options shown to the candidate are already canonical strings, so case
// or whitespace drift means the answer did not come from the option list.
// Pure function.
func Score(set testgen.TestSet, answers []string) ScoreResult {
	result := ScoreResult{
		Total:       len(set),
		PerQuestion: make([]QuestionResult, 0, len(set)),
	}

	for i, q := range set {
		answer := NotAnswered
		if i < len(answers) {
			answer = answers[i]
		}

		// A valid Question never has an empty CorrectAnswer, so the
		// NotAnswered sentinel can never score as correct.
		correct := answer == q.CorrectAnswer
		if correct {
			result.Correct++
		}

		result.PerQuestion = append(result.PerQuestion, QuestionResult{
			Question:      q.Text,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
		})
	}

	return result
}
