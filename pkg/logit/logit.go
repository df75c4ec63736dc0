package logit

import "math"

const (
	// DisplayDigits Количество знаков после запятой для отображения
	DisplayDigits = 3
)

// OddsFromProb Перевод вероятности в шансы: p/(1-p)
// При p >= 1 возвращает +Inf (насыщение, не ошибка), при p <= 0 возвращает 0.
// Значения вне [0,1] вызывающий обязан заранее привести через Clamp01
func OddsFromProb(p float64) float64 {
	if p >= 1 {
		return math.Inf(1)
	}
	if p <= 0 {
		return 0
	}
	return p / (1 - p)
}

// LogitFromProb Перевод вероятности в лог-шансы: ln(p/(1-p))
// При p >= 1 возвращает +Inf, при p <= 0 возвращает -Inf
func LogitFromProb(p float64) float64 {
	if p >= 1 {
		return math.Inf(1)
	}
	if p <= 0 {
		return math.Inf(-1)
	}
	return math.Log(p / (1 - p))
}

// ProbFromLogit Обратный перевод лог-шансов в вероятность (сигмоида): e^l/(1+e^l)
// Определена на всей числовой прямой
func ProbFromLogit(l float64) float64 {
	// Для больших l считаем через exp(-l), чтобы не переполнить exp
	if l >= 0 {
		return 1 / (1 + math.Exp(-l))
	}
	e := math.Exp(l)
	return e / (1 + e)
}

// Round Округление до фиксированного числа знаков после запятой
// Половина округляется от нуля (round-half-away-from-zero), как math.Round.
// Используется только для отображения, не для промежуточных вычислений
func Round(v float64, digits int) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}

// Clamp01 Приведение вероятности к диапазону [0,1]
func Clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
