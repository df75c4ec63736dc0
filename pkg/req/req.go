package req

import (
	"encoding/json"
	"io"
)

// Decode Декодирование тела запроса в структуру DTO
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	if err != nil {
		return payload, err
	}
	return payload, nil
}
