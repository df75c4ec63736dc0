package env

import (
	"errors"
	"oddslab_backend/internal/config"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// fallbackTrialCount Количество испытаний, когда клиент прислал некорректное n
	fallbackTrialCount = 1000
	maxTrialCount      = 1_000_000
	statsWindowSize    = 100
)

type simulationConfig struct {
	FallbackTrials int `yaml:"fallback_trials"`
	MaxTrials      int `yaml:"max_trials"`
	StatsWindow    int `yaml:"stats_window"`
}

type simulationYAML struct {
	Simulation simulationConfig `yaml:"simulation"`
}

// NewSimulationConfigFromYAML Загрузка настроек симуляции из config.yaml
func NewSimulationConfigFromYAML(path string) (config.SimulationConfig, error) {
	cfg := simulationConfig{
		FallbackTrials: fallbackTrialCount,
		MaxTrials:      maxTrialCount,
		StatsWindow:    statsWindowSize,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}

	var doc simulationYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Simulation.FallbackTrials > 0 {
		cfg.FallbackTrials = doc.Simulation.FallbackTrials
	}
	if doc.Simulation.MaxTrials > 0 {
		cfg.MaxTrials = doc.Simulation.MaxTrials
	}
	if doc.Simulation.StatsWindow > 0 {
		cfg.StatsWindow = doc.Simulation.StatsWindow
	}

	return &cfg, nil
}

func (cfg *simulationConfig) FallbackTrialCount() int {
	return cfg.FallbackTrials
}

func (cfg *simulationConfig) MaxTrialCount() int {
	return cfg.MaxTrials
}

func (cfg *simulationConfig) StatsWindowSize() int {
	return cfg.StatsWindow
}
