package quiz

type GenerateRequest struct {
	SessionID string `json:"session_id,omitempty"` // Пусто — новая сессия, иначе замена набора
	Count     int    `json:"count"`                // Сколько вопросов (0 — значение по умолчанию)
}

type Question struct {
	Index        int    `json:"index"`
	Kind         string `json:"kind"`          // Архетип вопроса
	Prompt       string `json:"prompt"`        // Текст вопроса
	NumericInput bool   `json:"numeric_input"` // true — поле числа, false — True/False
}

type GenerateResponse struct {
	SessionID string     `json:"session_id"`
	Questions []Question `json:"questions"` // Ожидаемые ответы клиенту не отдаются
}

type GradeRequest struct {
	SessionID string   `json:"session_id"`
	Answers   []string `json:"answers"` // Сырые ответы по индексу вопроса
}

type Grade struct {
	Index       int    `json:"index"`
	Correct     bool   `json:"correct"`
	UserAnswer  string `json:"user_answer"`
	Expected    string `json:"expected"`
	Explanation string `json:"explanation"` // Подстановка формулы с теми же случайными значениями
}

type GradeResponse struct {
	Grades       []Grade `json:"grades"`
	CorrectCount int     `json:"correct_count"`
	TotalCount   int     `json:"total_count"`
	Score        string  `json:"score"` // Например "3/5 (60%)"
}

type CheckDataResponse struct {
	SessionID     string `json:"session_id"`
	QuestionCount int    `json:"question_count"`
	Graded        bool   `json:"graded"`          // Проверяли ли набор хотя бы раз
	CorrectCount  int    `json:"correct_count"`   // 0, пока не проверяли
	TotalCount    int    `json:"total_count"`     // 0, пока не проверяли
	Score         string `json:"score,omitempty"` // Последний счет, если проверяли
}
