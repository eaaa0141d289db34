package managing

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

var (
	ErrInvalidDateRange  = errors.New("data final anterior à data inicial")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrInvalidImport     = errors.New("arquivo de importação inválido")
)

// CRMError é um erro com o código da API e o registro envolvido
type CRMError struct {
	Err     error
	Code    string
	Entity  domain.EntityType
	ID      string
	Details string
}

func (e *CRMError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CRMError) Unwrap() error {
	return e.Err
}

func NewCRMError(err error, code string, details string) *CRMError {
	return &CRMError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func notFound(entity domain.EntityType, id string) *CRMError {
	return &CRMError{
		Err:    domain.ErrNotFound,
		Code:   apiErrors.ErrResourceNotFound,
		Entity: entity,
		ID:     id,
	}
}

// classify traduz os erros do repositório para o código da API
func classify(err error, entity domain.EntityType) error {
	if err == nil {
		return nil
	}

	var crmErr *CRMError
	if errors.As(err, &crmErr) {
		return err
	}

	details := ""
	var recordErr *domain.RecordError
	if errors.As(err, &recordErr) {
		details = recordErr.Details
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return &CRMError{Err: domain.ErrNotFound, Code: apiErrors.ErrResourceNotFound, Entity: entity, Details: details}
	case errors.Is(err, domain.ErrInvalidReference):
		return &CRMError{Err: domain.ErrInvalidReference, Code: apiErrors.ErrInvalidReference, Entity: entity, Details: details}
	case errors.Is(err, domain.ErrDuplicate):
		return &CRMError{Err: domain.ErrDuplicate, Code: apiErrors.ErrDuplicateRecord, Entity: entity, Details: details}
	case errors.Is(err, domain.ErrInvalidInput):
		return &CRMError{Err: domain.ErrInvalidInput, Code: apiErrors.ErrValidationFailed, Entity: entity, Details: details}
	}

	return &CRMError{Err: ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation, Entity: entity, Details: err.Error()}
}
