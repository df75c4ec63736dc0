package config

import (
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type QuizConfig interface {
	DefaultQuestionCount() int
	MaxQuestionCount() int
}

type SimulationConfig interface {
	FallbackTrialCount() int
	MaxTrialCount() int
	StatsWindowSize() int
}

type CurveConfig interface {
	DefaultPointCount() int
	MaxPointCount() int
}
