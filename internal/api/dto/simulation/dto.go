package simulation

type RunRequest struct {
	Probability float64 `json:"probability"` // Вероятность успеха одного испытания
	Trials      int     `json:"trials"`      // Количество испытаний (некорректное заменяется запасным)
}

type RunResponse struct {
	SuccessCount int     `json:"success_count"` // Успехов
	FailureCount int     `json:"failure_count"` // Неудач
	TrialCount   int     `json:"trial_count"`   // Фактически выполнено испытаний
	ObservedRate float64 `json:"observed_rate"` // Эмпирическая частота успеха
	Probability  float64 `json:"probability"`   // Теоретическая вероятность после клампа
}

type StatsResponse struct {
	TotalRuns       int     `json:"total_runs"`       // Запусков с начала процесса
	TotalTrials     int     `json:"total_trials"`     // Испытаний суммарно
	TotalSuccesses  int     `json:"total_successes"`  // Успехов суммарно
	OverallRate     float64 `json:"overall_rate"`     // Эмпирическая частота по всем испытаниям
	WindowRuns      int     `json:"window_runs"`      // Запусков в окне
	WindowSize      int     `json:"window_size"`      // Размер окна
	WindowDeviation float64 `json:"window_deviation"` // Среднее |observed - p| в окне
}
