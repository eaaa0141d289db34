package assisting

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

var (
	ErrEmptyMessage      = errors.New("mensagem não informada")
	ErrMissingRecipient  = errors.New("destinatário não informado")
	ErrUnsupportedEntity = errors.New("tipo de registro não suportado")
	ErrDatabaseOperation = errors.New("erro ao carregar dados para a IA")
)

// FallbackScore é usado quando a IA não consegue pontuar o contato
const (
	FallbackScore     = 50
	FallbackReasoning = "Unable to generate AI score, using default value"
)

// AIError carrega o código da API para falhas das funcionalidades de IA
type AIError struct {
	Err     error
	Code    string
	Entity  domain.EntityType
	ID      string
	Details string
}

func (e *AIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AIError) Unwrap() error {
	return e.Err
}

func NewAIError(err error, code string, details string) *AIError {
	return &AIError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func notFound(entity domain.EntityType, id string) *AIError {
	return &AIError{Err: domain.ErrNotFound, Code: apiErrors.ErrResourceNotFound, Entity: entity, ID: id}
}

func databaseError(err error) *AIError {
	return NewAIError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
}

// upstream traduz as falhas do integrador
func upstream(err error) error {
	if errors.Is(err, domain.ErrAIDisabled) {
		return NewAIError(domain.ErrAIDisabled, apiErrors.ErrServiceDisabled, "")
	}
	return NewAIError(domain.ErrUpstream, apiErrors.ErrExternalService, err.Error())
}
