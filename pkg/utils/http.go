package utils

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
)

const maxBodySize = 1 << 20

// Response é o envelope das respostas de sucesso
type Response struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Message    string             `json:"message,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao escrever resposta")
	}
}

func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Response{Success: true, Data: data})
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{Success: true, Message: message})
}

// WritePage responde uma listagem com o bloco de paginação
func WritePage[T any](w http.ResponseWriter, page domain.Page[T]) {
	items := page.Items
	if items == nil {
		items = []T{}
	}

	WriteJSON(w, http.StatusOK, Response{
		Success:    true,
		Data:       items,
		Pagination: &page.Pagination,
	})
}

// DecodeJSON lê o corpo da requisição limitado a 1MB
func DecodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return io.EOF
	}
	return json.Unmarshal(body, v)
}
