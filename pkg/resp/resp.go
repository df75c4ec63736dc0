package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse Запись JSON-ответа с нужным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.Println("failed to encode response:", err)
	}
}
