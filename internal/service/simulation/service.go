package simulation

import (
	"math/rand"
	"oddslab_backend/internal/config"
	"oddslab_backend/internal/repository"
	"oddslab_backend/internal/service"
	"sync"
)

type serv struct {
	cfg       config.SimulationConfig
	statsRepo repository.SimStatsRepository

	// rnd защищен мьютексом: *rand.Rand не потокобезопасен,
	// а источник прокидывается снаружи ради воспроизводимости в тестах
	mtx sync.Mutex
	rnd *rand.Rand
}

// NewSimulationService Создать сервис симуляции испытаний Бернулли
func NewSimulationService(
	cfg config.SimulationConfig,
	statsRepo repository.SimStatsRepository,
	rnd *rand.Rand,
) service.SimulationService {
	return &serv{
		cfg:       cfg,
		statsRepo: statsRepo,
		rnd:       rnd,
	}
}
