package quiz

import (
	"errors"
	"oddslab_backend/internal/model"
)

// CheckData Сводка по текущему состоянию сессии
func (s *serv) CheckData(sessionID string) (*model.SessionSummary, error) {
	session, ok := s.sessionRepo.Get(sessionID)
	if !ok {
		return nil, errors.New("session not found")
	}

	summary := &model.SessionSummary{
		SessionID:     session.ID,
		QuestionCount: len(session.Set.Questions),
	}

	if session.LastResult != nil {
		summary.Graded = true
		summary.CorrectCount = session.LastResult.CorrectCount
		summary.TotalCount = session.LastResult.TotalCount
	}

	return summary, nil
}
