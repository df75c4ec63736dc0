package simulation

import (
	"net/http"
	dto "oddslab_backend/internal/api/dto/simulation"
	"oddslab_backend/internal/converter"
	"oddslab_backend/internal/service"
	"oddslab_backend/pkg/req"
	"oddslab_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SimulationService
}

type Handler struct {
	serv service.SimulationService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Run Запуск серии испытаний Бернулли
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RunRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.serv.Run(converter.ToSimulationRun(payload))

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRunResponse(result))
}

// Stats Накопленная статистика по запускам
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.serv.Stats()

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(stats))
}
