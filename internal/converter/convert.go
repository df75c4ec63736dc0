package converter

import (
	"math"
	dto "oddslab_backend/internal/api/dto/convert"
	"oddslab_backend/internal/model"
	"oddslab_backend/pkg/logit"
	"strconv"
)

func ToMetricsResponse(m model.Metrics) dto.MetricsResponse {
	resp := dto.MetricsResponse{
		Probability: m.Probability,
		OddsText:    formatMetric(m.Odds),
		LogOddsText: formatMetric(m.LogOdds),
		Label:       m.Label,
		Description: m.Description,
	}

	// Бесконечность в JSON не кодируется, сырые поля оставляем пустыми
	if !math.IsInf(m.Odds, 0) {
		odds := m.Odds
		resp.Odds = &odds
	}
	if !math.IsInf(m.LogOdds, 0) {
		logOdds := m.LogOdds
		resp.LogOdds = &logOdds
	}

	return resp
}

func ToCurveResponse(points []model.CurvePoint) dto.CurveResponse {
	result := make([]dto.CurvePoint, len(points))
	for i, p := range points {
		result[i] = dto.CurvePoint{
			Probability: p.Probability,
			Odds:        p.Odds,
			LogOdds:     p.LogOdds,
		}
	}
	return dto.CurveResponse{Points: result}
}

// formatMetric Округленное значение для отображения, "±∞" на границах
func formatMetric(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}
	return strconv.FormatFloat(logit.Round(v, logit.DisplayDigits), 'f', -1, 64)
}
