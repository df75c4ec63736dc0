package quiz

import (
	"errors"
	"math"
	"oddslab_backend/internal/model"
	"strconv"
	"strings"
)

// answerTolerance Допуск для числовых ответов
const answerTolerance = 0.001

// Grade Проверяет ответы пользователя против набора вопросов сессии
// Проверку можно вызывать сколько угодно раз: набор вопросов не меняется,
// в сессии перезаписывается только последний результат
func (s *serv) Grade(sessionID string, answers []string) (*model.GradingResult, error) {
	session, ok := s.sessionRepo.Get(sessionID)
	if !ok {
		return nil, errors.New("session not found")
	}

	result := GradeSet(session.Set, answers)

	if err := s.sessionRepo.SetResult(sessionID, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GradeSet Чистая проверка набора ответов, без состояния
// Отсутствующий ответ считается пустой строкой, то есть неверным
func GradeSet(set model.QuestionSet, answers []string) *model.GradingResult {
	grades := make([]model.QuestionGrade, len(set.Questions))
	correctCount := 0

	for i, question := range set.Questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}

		correct := checkAnswer(question.Expected, answer)
		if correct {
			correctCount++
		}

		grades[i] = model.QuestionGrade{
			Index:       i,
			Correct:     correct,
			UserAnswer:  answer,
			Expected:    question.Expected,
			Explanation: question.Explanation,
		}
	}

	return &model.GradingResult{
		Grades:       grades,
		CorrectCount: correctCount,
		TotalCount:   len(set.Questions),
	}
}

// checkAnswer Сравнение одного ответа с ожидаемым
// Порядок правил фиксированный:
//  1. Если ожидаемый ответ — конечное число, сравниваем численно с допуском.
//     Нечисловой ввод пользователя в этом случае сразу неверен
//  2. Иначе сравниваем строки без учета регистра: точное совпадение либо
//     вхождение одной строки в другую (сознательная вольность для коротких
//     текстовых ответов, оставлена как есть)
func checkAnswer(expected, answer string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}

	expectedNum, err := strconv.ParseFloat(strings.TrimSpace(expected), 64)
	if err == nil && !math.IsInf(expectedNum, 0) && !math.IsNaN(expectedNum) {
		answerNum, err := strconv.ParseFloat(answer, 64)
		if err != nil || math.IsInf(answerNum, 0) || math.IsNaN(answerNum) {
			return false
		}
		return math.Abs(answerNum-expectedNum) <= answerTolerance
	}

	expectedStr := strings.ToLower(strings.TrimSpace(expected))
	answerStr := strings.ToLower(answer)
	if answerStr == expectedStr {
		return true
	}
	return strings.Contains(answerStr, expectedStr) || strings.Contains(expectedStr, answerStr)
}
