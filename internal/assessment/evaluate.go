package assessment

import "github.com/abhisek/skillscope/internal/testgen"

// Level buckets a percentage score.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Evaluation summarizes a graded test per skill: which skills the
// candidate answered correctly (strengths) and which not (weak areas).
type Evaluation struct {
	Level     Level    `json:"level"`
	Score     int      `json:"score"`
	Total     int      `json:"total_questions"`
	Strengths []string `json:"strengths"`
	WeakAreas []string `json:"weak_areas"`
}

// Evaluate derives an Evaluation from a graded test. Questions without a
// source skill (parsed outside the generation pipeline) contribute to the
// score but not to strengths or weak areas. Skill order follows the test.
func Evaluate(set testgen.TestSet, result ScoreResult) Evaluation {
	eval := Evaluation{
		Score: result.Correct,
		Total: result.Total,
		Level: levelFor(result.Percentage()),
	}

	for i, q := range set {
		if q.SourceSkill == "" || i >= len(result.PerQuestion) {
			continue
		}
		if result.PerQuestion[i].IsCorrect {
			eval.Strengths = append(eval.Strengths, q.SourceSkill)
		} else {
			eval.WeakAreas = append(eval.WeakAreas, q.SourceSkill)
		}
	}

	return eval
}

func levelFor(percentage float64) Level {
	switch {
	case percentage >= 80:
		return LevelAdvanced
	case percentage >= 50:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}
