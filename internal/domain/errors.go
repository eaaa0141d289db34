package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("registro não encontrado")
	ErrInvalidReference = errors.New("referência a registro inexistente")
	ErrDuplicate        = errors.New("registro duplicado")
	ErrInvalidInput     = errors.New("dados inválidos")
	ErrUpstream         = errors.New("falha no serviço de IA")
	ErrAIDisabled       = errors.New("serviço de IA não configurado")
)

// RecordError carrega o contexto do registro envolvido na falha
type RecordError struct {
	Err     error
	Entity  EntityType
	ID      string
	Details string
}

func (e *RecordError) Error() string {
	msg := e.Err.Error()
	if e.Entity != "" {
		msg = fmt.Sprintf("%s (%s", msg, e.Entity)
		if e.ID != "" {
			msg += " " + e.ID
		}
		msg += ")"
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(entity EntityType, id string) *RecordError {
	return &RecordError{Err: ErrNotFound, Entity: entity, ID: id}
}

func NewRecordError(baseErr error, entity EntityType, details string) *RecordError {
	return &RecordError{Err: baseErr, Entity: entity, Details: details}
}
