package model

type ConvertRequest struct {
	Probability float64
}

// Metrics Полный набор метрик для одной вероятности
type Metrics struct {
	Probability float64 // Вероятность после клампа в [0,1]
	Odds        float64 // Шансы, +Inf при p=1
	LogOdds     float64 // Лог-шансы, ±Inf на границах
	Label       string  // Название категории ("about even" и т.д.)
	Description string  // Описание категории с подставленным процентом
}

// CurvePoint Точка кривой для графика (ось X — вероятность)
type CurvePoint struct {
	Probability float64
	Odds        float64
	LogOdds     float64
}
