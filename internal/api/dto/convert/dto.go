package convert

type MetricsRequest struct {
	Probability float64 `json:"probability"` // Вероятность, значения вне [0,1] приводятся к границам
}

type MetricsResponse struct {
	Probability float64  `json:"probability"`        // Вероятность после клампа
	Odds        *float64 `json:"odds,omitempty"`     // Шансы, отсутствует при p=1 (бесконечность)
	OddsText    string   `json:"odds_text"`          // Округленные шансы для отображения, "∞" на границе
	LogOdds     *float64 `json:"log_odds,omitempty"` // Лог-шансы, отсутствуют на границах
	LogOddsText string   `json:"log_odds_text"`      // Округленный логит для отображения, "±∞" на границах
	Label       string   `json:"label"`              // Категория вероятности
	Description string   `json:"description"`        // Описание категории с процентом
}

type CurvePoint struct {
	Probability float64 `json:"probability"`
	Odds        float64 `json:"odds"`
	LogOdds     float64 `json:"log_odds"`
}

type CurveResponse struct {
	Points []CurvePoint `json:"points"` // Сетка для графика, без крайних точек 0 и 1
}
