package env

import (
	"errors"
	"oddslab_backend/internal/config"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultQuestionCount = 5
	maxQuestionCount     = 50
)

type quizConfig struct {
	DefaultCount int `yaml:"default_count"`
	MaxCount     int `yaml:"max_count"`
}

type quizYAML struct {
	Quiz quizConfig `yaml:"quiz"`
}

// NewQuizConfigFromYAML Загрузка настроек викторины из config.yaml
// Если файла нет или секция пустая — используются значения по умолчанию
func NewQuizConfigFromYAML(path string) (config.QuizConfig, error) {
	cfg := quizConfig{
		DefaultCount: defaultQuestionCount,
		MaxCount:     maxQuestionCount,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}

	var doc quizYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Quiz.DefaultCount > 0 {
		cfg.DefaultCount = doc.Quiz.DefaultCount
	}
	if doc.Quiz.MaxCount > 0 {
		cfg.MaxCount = doc.Quiz.MaxCount
	}

	return &cfg, nil
}

func (cfg *quizConfig) DefaultQuestionCount() int {
	return cfg.DefaultCount
}

func (cfg *quizConfig) MaxQuestionCount() int {
	return cfg.MaxCount
}
