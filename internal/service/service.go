package service

import (
	"oddslab_backend/internal/model"
)

type ConvertService interface {
	Metrics(p float64) model.Metrics
	Curve(points int) []model.CurvePoint
}

type SimulationService interface {
	Run(run model.SimulationRun) model.SimulationResult
	Stats() model.SimulationStats
}

type QuizService interface {
	Generate(sessionID string, count int) (*model.QuizSession, error)
	Grade(sessionID string, answers []string) (*model.GradingResult, error)
	CheckData(sessionID string) (*model.SessionSummary, error)
}
