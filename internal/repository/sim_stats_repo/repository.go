package sim_stats_repo

import (
	"math"
	"oddslab_backend/internal/model"
	repoModel "oddslab_backend/internal/repository/sim_stats_repo/model"
	"sync"
)

// Реализация репозитория для накопленной статистики симулятора
// Наглядная иллюстрация закона больших чисел: чем больше испытаний,
// тем меньше среднее отклонение эмпирической частоты от теоретической
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.SimState
}

// NewSimStatsRepository Конструктор репозитория с начальным состоянием
func NewSimStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = 100
	}
	initialState := repoModel.SimState{
		TotalRuns:      0,
		TotalTrials:    0,
		TotalSuccesses: 0,
		RunWindow:      make([]repoModel.RunSample, 0),
		WindowSize:     windowSize,
	}
	return &StatsRepo{
		state: initialState,
	}
}

// RecordRun Обновление статистики после запуска симуляции
func (r *StatsRepo) RecordRun(result model.SimulationResult) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalRuns++
	r.state.TotalTrials += result.TrialCount
	r.state.TotalSuccesses += result.SuccessCount

	// Добавляем запуск в окно
	r.state.RunWindow = append(r.state.RunWindow, repoModel.RunSample{
		Probability:  result.Probability,
		ObservedRate: result.ObservedRate,
		Deviation:    math.Abs(result.ObservedRate - result.Probability),
	})

	// Поддерживаем размер окна
	if len(r.state.RunWindow) > r.state.WindowSize {
		r.state.RunWindow = r.state.RunWindow[1:]
	}
}

// Stats Получение сводки по накопленной статистике
// Возвращает копию, внутреннее состояние наружу не отдаем
func (r *StatsRepo) Stats() model.SimulationStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stats := model.SimulationStats{
		TotalRuns:      r.state.TotalRuns,
		TotalTrials:    r.state.TotalTrials,
		TotalSuccesses: r.state.TotalSuccesses,
		WindowSize:     r.state.WindowSize,
		WindowRuns:     len(r.state.RunWindow),
	}

	if r.state.TotalTrials > 0 {
		stats.OverallRate = float64(r.state.TotalSuccesses) / float64(r.state.TotalTrials)
	}

	// Среднее отклонение в окне
	if len(r.state.RunWindow) > 0 {
		var sum float64
		for _, run := range r.state.RunWindow {
			sum += run.Deviation
		}
		stats.WindowDeviation = sum / float64(len(r.state.RunWindow))
	}

	return stats
}
