package model

type SimulationRun struct {
	Probability float64
	Trials      int
}

// SimulationResult Результат серии испытаний Бернулли
// Инвариант: SuccessCount + FailureCount == TrialCount
type SimulationResult struct {
	SuccessCount int
	FailureCount int
	TrialCount   int
	ObservedRate float64 // Эмпирическая частота успеха
	Probability  float64 // Теоретическая вероятность после клампа
}

// SimulationStats Накопленная статистика по всем запускам симуляции
type SimulationStats struct {
	TotalRuns      int
	TotalTrials    int
	TotalSuccesses int
	OverallRate    float64 // Эмпирическая частота по всем испытаниям

	WindowSize      int     // Размер окна последних запусков
	WindowRuns      int     // Сколько запусков сейчас в окне
	WindowDeviation float64 // Среднее |observed - p| в окне
}
