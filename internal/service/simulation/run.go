package simulation

import (
	"oddslab_backend/internal/model"
	"oddslab_backend/pkg/logit"
)

// Run Выполняет серию независимых испытаний Бернулли
// Вероятность вне [0,1] молча приводится к границам (задокументированная
// вольность, ошибки не возвращаем). Некорректное число испытаний заменяется
// запасным значением из конфига, слишком большое — обрезается по максимуму.
// Цикл синхронный, без отмены: результат подменяется целиком после завершения
func (s *serv) Run(run model.SimulationRun) model.SimulationResult {
	p := logit.Clamp01(run.Probability)

	n := run.Trials
	if n <= 0 {
		n = s.cfg.FallbackTrialCount()
	}
	if n > s.cfg.MaxTrialCount() {
		n = s.cfg.MaxTrialCount()
	}

	// Испытания независимы: каждое — отдельный бросок rnd.Float64() < p
	successCount := 0
	s.mtx.Lock()
	for i := 0; i < n; i++ {
		if s.rnd.Float64() < p {
			successCount++
		}
	}
	s.mtx.Unlock()

	result := model.SimulationResult{
		SuccessCount: successCount,
		FailureCount: n - successCount,
		TrialCount:   n,
		ObservedRate: float64(successCount) / float64(n),
		Probability:  p,
	}

	// Обновляем накопленную статистику
	s.statsRepo.RecordRun(result)

	return result
}

// Stats Сводка по всем запускам с начала процесса
func (s *serv) Stats() model.SimulationStats {
	return s.statsRepo.Stats()
}
