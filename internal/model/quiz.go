package model

import "time"

// QuestionKind Архетип вопроса
type QuestionKind string

const (
	KindLogitConversion       QuestionKind = "logit-conversion"
	KindOddsGrowth            QuestionKind = "odds-growth"
	KindLogitInterpretation   QuestionKind = "logit-interpretation"
	KindProbabilityConversion QuestionKind = "probability-conversion"
	KindCompareMetrics        QuestionKind = "compare-metrics"
)

// Question Один вопрос викторины
// После генерации не изменяется: Expected и Explanation считаются
// один раз по конкретному случайному значению
type Question struct {
	Kind        QuestionKind
	Prompt      string
	Expected    string // Ожидаемый ответ как строка: число или "True"/"False"
	Numeric     bool   // true — числовой ввод, false — булев
	Explanation string
}

// QuestionSet Набор вопросов, заменяется целиком при каждой генерации
type QuestionSet struct {
	Questions []Question
}

// QuestionGrade Вердикт по одному вопросу
type QuestionGrade struct {
	Index       int
	Correct     bool
	UserAnswer  string
	Expected    string
	Explanation string
}

// GradingResult Результат проверки набора ответов
type GradingResult struct {
	Grades       []QuestionGrade
	CorrectCount int
	TotalCount   int
}

// SessionSummary Сводка по сессии для check-data
type SessionSummary struct {
	SessionID     string
	QuestionCount int
	Graded        bool
	CorrectCount  int
	TotalCount    int
}

// QuizSession Сессия викторины: текущий набор вопросов и последний результат
// Хранится только в памяти, время жизни — процесс
type QuizSession struct {
	ID         string
	Set        QuestionSet
	LastResult *GradingResult // nil, пока набор не проверяли
	CreatedAt  time.Time
}
