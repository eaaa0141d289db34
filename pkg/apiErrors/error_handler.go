package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe
	ErrRevokedToken          = "AUTH_010" // Token revogado (logout)

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrValidationFailed    = "VAL_004" // Campos com valores inválidos
	ErrInvalidReference    = "VAL_005" // Referência a registro inexistente
	ErrDuplicateRecord     = "VAL_006" // Registro duplicado

	// Erros de recurso
	ErrResourceNotFound = "RES_001"

	// Erros de limite
	ErrRateLimited = "RATE_001"

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo (IA)
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrServiceDisabled   = "SRV_005" // Funcionalidade não configurada
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrRevokedToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusConflict,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrValidationFailed:      http.StatusBadRequest,
	ErrInvalidReference:      http.StatusBadRequest,
	ErrDuplicateRecord:       http.StatusConflict,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrRateLimited:           http.StatusTooManyRequests,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
	ErrServiceDisabled:       http.StatusServiceUnavailable,
}

// requestIDHeader é preenchido pelo middleware de log antes do handler
const requestIDHeader = "X-Request-ID"

// APIError é o corpo de toda resposta de erro
type APIError struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`
	Message   string `json:"message,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusFor retorna o status HTTP do código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsServerError indica códigos cuja mensagem original não deve chegar ao cliente
func IsServerError(code string) bool {
	return StatusFor(code) >= http.StatusInternalServerError
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	body := APIError{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: w.Header().Get(requestIDHeader),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).WithField("code", code).Error("Erro ao escrever resposta de erro")
	}
}
