package repository

import (
	"oddslab_backend/internal/model"
)

type QuizSessionRepository interface {
	Save(session *model.QuizSession)
	Get(id string) (*model.QuizSession, bool)
	SetResult(id string, result *model.GradingResult) error
}

type SimStatsRepository interface {
	RecordRun(result model.SimulationResult)
	Stats() model.SimulationStats
}
