package converter

import (
	"fmt"
	"math"
	dto "oddslab_backend/internal/api/dto/quiz"
	"oddslab_backend/internal/model"
)

func ToGenerateResponse(session *model.QuizSession) dto.GenerateResponse {
	questions := make([]dto.Question, len(session.Set.Questions))
	for i, q := range session.Set.Questions {
		questions[i] = dto.Question{
			Index:        i,
			Kind:         string(q.Kind),
			Prompt:       q.Prompt,
			NumericInput: q.Numeric,
		}
	}
	return dto.GenerateResponse{
		SessionID: session.ID,
		Questions: questions,
	}
}

func ToGradeResponse(result *model.GradingResult) dto.GradeResponse {
	grades := make([]dto.Grade, len(result.Grades))
	for i, g := range result.Grades {
		grades[i] = dto.Grade{
			Index:       g.Index,
			Correct:     g.Correct,
			UserAnswer:  g.UserAnswer,
			Expected:    g.Expected,
			Explanation: g.Explanation,
		}
	}
	return dto.GradeResponse{
		Grades:       grades,
		CorrectCount: result.CorrectCount,
		TotalCount:   result.TotalCount,
		Score:        FormatScore(result.CorrectCount, result.TotalCount),
	}
}

func ToCheckDataResponse(summary *model.SessionSummary) dto.CheckDataResponse {
	resp := dto.CheckDataResponse{
		SessionID:     summary.SessionID,
		QuestionCount: summary.QuestionCount,
		Graded:        summary.Graded,
		CorrectCount:  summary.CorrectCount,
		TotalCount:    summary.TotalCount,
	}
	if summary.Graded {
		resp.Score = FormatScore(summary.CorrectCount, summary.TotalCount)
	}
	return resp
}

// FormatScore Итоговый счет для отображения, например "3/5 (60%)"
func FormatScore(correct, total int) string {
	if total == 0 {
		return "0/0"
	}
	percent := int(math.Round(float64(correct) / float64(total) * 100))
	return fmt.Sprintf("%d/%d (%d%%)", correct, total, percent)
}
