package convert

import (
	"net/http"
	dto "oddslab_backend/internal/api/dto/convert"
	"oddslab_backend/internal/converter"
	"oddslab_backend/internal/service"
	"oddslab_backend/pkg/req"
	"oddslab_backend/pkg/resp"
	"strconv"
)

type HandlerDeps struct {
	Serv service.ConvertService
}

type Handler struct {
	serv service.ConvertService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Metrics Пересчет одной вероятности в шансы, логит и категорию
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.MetricsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	metrics := h.serv.Metrics(payload.Probability)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMetricsResponse(metrics))
}

// Curve Сетка точек для графика
func (h *Handler) Curve(w http.ResponseWriter, r *http.Request) {
	// Некорректное значение points молча заменяется значением по умолчанию
	points, _ := strconv.Atoi(r.URL.Query().Get("points"))

	curve := h.serv.Curve(points)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCurveResponse(curve))
}
