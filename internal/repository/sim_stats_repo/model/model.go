package model

// Состояние накопленной статистики симулятора
type SimState struct {
	TotalRuns      int // Сколько всего запусков сделано
	TotalTrials    int // Сумма всех испытаний
	TotalSuccesses int // Сумма всех успехов

	RunWindow  []RunSample // Окно последних запусков для анализа отклонения
	WindowSize int         // Размер окна
}

// Результат запуска для окна
type RunSample struct {
	Probability  float64 // Теоретическая вероятность
	ObservedRate float64 // Эмпирическая частота
	Deviation    float64 // |ObservedRate - Probability|
}
