package training

import (
	"math"

	"certtrack/catalog"
)

// QuizScore is the outcome of scoring one submission against a section's quiz.
type QuizScore struct {
	ScorePercent   int             `json:"score_percent"`
	Passed         bool            `json:"passed"`
	PerQuestion    map[string]bool `json:"per_question"`
	CorrectAnswers map[string]int  `json:"correct_answers,omitempty"` // populated on fail only, for the retry view
}

// ScoreQuiz scores submitted answers against a question set. A missing answer
// counts as incorrect rather than rejecting the submission; completeness is
// the caller's concern.
func ScoreQuiz(questions []catalog.Question, answers map[string]int) QuizScore {
	result := QuizScore{
		PerQuestion: make(map[string]bool, len(questions)),
	}

	correct := 0
	for _, q := range questions {
		selected, ok := answers[q.ID]
		isCorrect := ok && selected == q.CorrectAnswer
		result.PerQuestion[q.ID] = isCorrect
		if isCorrect {
			correct++
		}
	}

	result.ScorePercent = int(math.Round(100 * float64(correct) / float64(len(questions))))
	result.Passed = result.ScorePercent >= catalog.PassingThreshold

	if !result.Passed {
		result.CorrectAnswers = make(map[string]int, len(questions))
		for _, q := range questions {
			result.CorrectAnswers[q.ID] = q.CorrectAnswer
		}
	}

	return result
}
