package convert

import (
	"oddslab_backend/internal/model"
	"oddslab_backend/pkg/logit"
)

// Curve Сетка точек для графика шансов и логита по вероятности
// Крайние точки p=0 и p=1 исключаем: там шансы и логит уходят в бесконечность,
// график их все равно не нарисует
func (s *serv) Curve(points int) []model.CurvePoint {
	if points <= 0 {
		points = s.curveCfg.DefaultPointCount()
	}
	if points > s.curveCfg.MaxPointCount() {
		points = s.curveCfg.MaxPointCount()
	}

	curve := make([]model.CurvePoint, points)
	step := 1.0 / float64(points+1)
	for i := 0; i < points; i++ {
		p := step * float64(i+1)
		curve[i] = model.CurvePoint{
			Probability: p,
			Odds:        logit.OddsFromProb(p),
			LogOdds:     logit.LogitFromProb(p),
		}
	}
	return curve
}
