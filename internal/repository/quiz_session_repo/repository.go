package quiz_session_repo

import (
	"errors"
	"oddslab_backend/internal/model"
	"sync"
)

// Реализация репозитория для хранения сессий викторины в памяти
// Сессия живет до конца процесса, на диск ничего не пишем
type SessionRepo struct {
	mtx      sync.RWMutex
	sessions map[string]*model.QuizSession
}

// NewQuizSessionRepository Конструктор репозитория сессий
func NewQuizSessionRepository() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]*model.QuizSession),
	}
}

// Save Сохранение сессии
// Если сессия с таким ID уже есть — заменяется целиком вместе с набором вопросов
func (r *SessionRepo) Save(session *model.QuizSession) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.sessions[session.ID] = session
}

// Get Получение сессии по ID
// Возвращает копию, чтобы вызывающий не менял набор вопросов в обход репозитория
func (r *SessionRepo) Get(id string) (*model.QuizSession, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, false
	}

	cp := *session
	cp.Set.Questions = append([]model.Question(nil), session.Set.Questions...)
	return &cp, true
}

// SetResult Сохранение результата последней проверки в сессии
func (r *SessionRepo) SetResult(id string, result *model.GradingResult) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return errors.New("session not found")
	}
	session.LastResult = result
	return nil
}
