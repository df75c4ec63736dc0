package convert

import (
	"fmt"
	"oddslab_backend/internal/model"
	servModel "oddslab_backend/internal/service/convert/model"
	"oddslab_backend/pkg/logit"
)

// Metrics Считает все метрики для одной вероятности
// Вход вне [0,1] молча приводится к границам, ошибок нет
func (s *serv) Metrics(p float64) model.Metrics {
	p = logit.Clamp01(p)

	// Подбираем категорию и подставляем округленный процент в шаблон
	bin := servModel.ClassifyBin(p)
	percent := logit.Round(p*100, 1)

	return model.Metrics{
		Probability: p,
		Odds:        logit.OddsFromProb(p),
		LogOdds:     logit.LogitFromProb(p),
		Label:       bin.Label,
		Description: fmt.Sprintf(bin.Template, percent),
	}
}
