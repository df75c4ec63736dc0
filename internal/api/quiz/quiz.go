package quiz

import (
	"log"
	"net/http"
	dto "oddslab_backend/internal/api/dto/quiz"
	"oddslab_backend/internal/converter"
	"oddslab_backend/internal/service"
	"oddslab_backend/pkg/req"
	"oddslab_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.QuizService
}

type Handler struct {
	serv service.QuizService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Generate Создает новый набор вопросов
// Ответы и объяснения клиенту не отдаются — они вернутся при проверке
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GenerateRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.serv.Generate(payload.SessionID, payload.Count)
	if err != nil {
		log.Println("Generate error:", err)
		http.Error(w, "generate failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGenerateResponse(session))
}

// Grade Проверяет ответы пользователя по сессии
func (h *Handler) Grade(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GradeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Grade(payload.SessionID, payload.Answers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGradeResponse(result))
}

// CheckData Сводка по сессии
func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	summary, err := h.serv.CheckData(sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCheckDataResponse(summary))
}
