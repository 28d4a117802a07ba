package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
)

// maxBodySize ограничивает размер тела запроса (1 MB)
const maxBodySize = 1 << 20

// ErrEmptyBody возвращается при пустом теле запроса
var ErrEmptyBody = errors.New("empty request body")

// DecodeJSON декодирует тело запроса в dst.
// Неизвестные поля отклоняются, размер тела ограничен.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return err
	}

	return nil
}
